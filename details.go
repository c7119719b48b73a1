package ipinfo

// Details is a normalized response for one IP address from the core
// API. Fields past the free tier stay nil or empty unless the token is
// entitled to them. The country_name, isEU, country_flag,
// country_flag_url, country_currency, continent, latitude, and
// longitude fields are computed locally from the reference tables, not
// returned by the API.
type Details struct {
	IP       string `json:"ip"`
	Hostname string `json:"hostname,omitempty"`
	Bogon    bool   `json:"bogon,omitempty"`
	Anycast  bool   `json:"anycast,omitempty"`
	City     string `json:"city,omitempty"`
	Region   string `json:"region,omitempty"`
	Country  string `json:"country,omitempty"`
	Loc      string `json:"loc,omitempty"`
	Org      string `json:"org,omitempty"`
	Postal   string `json:"postal,omitempty"`
	Timezone string `json:"timezone,omitempty"`

	CountryName     string           `json:"country_name,omitempty"`
	IsEU            bool             `json:"isEU"`
	CountryFlag     *CountryFlag     `json:"country_flag,omitempty"`
	CountryFlagURL  string           `json:"country_flag_url,omitempty"`
	CountryCurrency *CountryCurrency `json:"country_currency,omitempty"`
	Continent       *Continent       `json:"continent,omitempty"`
	Latitude        string           `json:"latitude,omitempty"`
	Longitude       string           `json:"longitude,omitempty"`

	ASN     *ASN     `json:"asn,omitempty"`
	Company *Company `json:"company,omitempty"`
	Carrier *Carrier `json:"carrier,omitempty"`
	Privacy *Privacy `json:"privacy,omitempty"`
	Abuse   *Abuse   `json:"abuse,omitempty"`
	Domains *Domains `json:"domains,omitempty"`
}

// ASN is the autonomous system block of a paid-tier response.
type ASN struct {
	ASN    string `json:"asn"`
	Name   string `json:"name"`
	Domain string `json:"domain"`
	Route  string `json:"route"`
	Type   string `json:"type"`
}

// Company describes the organization an address is allocated to.
type Company struct {
	Name   string `json:"name"`
	Domain string `json:"domain"`
	Type   string `json:"type"`
}

// Carrier identifies the mobile network an address belongs to.
type Carrier struct {
	Name string `json:"name"`
	MCC  string `json:"mcc"`
	MNC  string `json:"mnc"`
}

// Privacy reports anonymization services detected on an address.
type Privacy struct {
	VPN     bool   `json:"vpn"`
	Proxy   bool   `json:"proxy"`
	Tor     bool   `json:"tor"`
	Relay   bool   `json:"relay"`
	Hosting bool   `json:"hosting"`
	Service string `json:"service"`
}

// Abuse is the abuse contact block of a paid-tier response.
type Abuse struct {
	Address string `json:"address"`
	Country string `json:"country"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Network string `json:"network"`
	Phone   string `json:"phone"`
}

// Domains lists hostnames seen resolving to an address.
type Domains struct {
	Total   int      `json:"total"`
	Domains []string `json:"domains"`
}

// CountryFlag pairs the emoji flag with its code points, e.g. "🇺🇸"
// and "U+1F1FA U+1F1F8".
type CountryFlag struct {
	Emoji   string `json:"emoji"`
	Unicode string `json:"unicode"`
}

// CountryCurrency is the national currency of the country an address
// geolocates to.
type CountryCurrency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
}

// Continent is the continent of the country an address geolocates to.
type Continent struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// LiteDetails is a response from the free Lite API, which carries
// country and AS data only. The API reports the country name and
// continent directly; the country_name, isEU, flag, and currency
// fields are still computed locally so Lite responses line up with
// core ones.
type LiteDetails struct {
	IP            string `json:"ip"`
	Bogon         bool   `json:"bogon,omitempty"`
	ASN           string `json:"asn,omitempty"`
	ASName        string `json:"as_name,omitempty"`
	ASDomain      string `json:"as_domain,omitempty"`
	Country       string `json:"country,omitempty"`
	CountryCode   string `json:"country_code,omitempty"`
	ContinentName string `json:"continent,omitempty"`
	ContinentCode string `json:"continent_code,omitempty"`

	CountryName     string           `json:"country_name,omitempty"`
	IsEU            bool             `json:"isEU"`
	CountryFlag     *CountryFlag     `json:"country_flag,omitempty"`
	CountryFlagURL  string           `json:"country_flag_url,omitempty"`
	CountryCurrency *CountryCurrency `json:"country_currency,omitempty"`
}

// PlusDetails is a response from the Plus API, which nests geography
// under geo and reports network blocks at the top level.
type PlusDetails struct {
	IP        string `json:"ip"`
	Bogon     bool   `json:"bogon,omitempty"`
	Hostname  string `json:"hostname,omitempty"`
	Anycast   bool   `json:"anycast,omitempty"`
	Mobile    bool   `json:"is_mobile,omitempty"`
	Satellite bool   `json:"is_satellite,omitempty"`

	Geo     *PlusGeo `json:"geo,omitempty"`
	ASN     *ASN     `json:"asn,omitempty"`
	Company *Company `json:"company,omitempty"`
	Carrier *Carrier `json:"carrier,omitempty"`
	Privacy *Privacy `json:"privacy,omitempty"`
	Abuse   *Abuse   `json:"abuse,omitempty"`

	// Some tiers repeat the country code at the top level; when
	// present it is enriched the same way as the geo block.
	CountryCode     string           `json:"country_code,omitempty"`
	CountryName     string           `json:"country_name,omitempty"`
	IsEU            bool             `json:"isEU"`
	CountryFlag     *CountryFlag     `json:"country_flag,omitempty"`
	CountryFlagURL  string           `json:"country_flag_url,omitempty"`
	CountryCurrency *CountryCurrency `json:"country_currency,omitempty"`
	Continent       *Continent       `json:"continent,omitempty"`
}

// PlusGeo is the geography block of a Plus response.
type PlusGeo struct {
	City          string  `json:"city,omitempty"`
	Region        string  `json:"region,omitempty"`
	RegionCode    string  `json:"region_code,omitempty"`
	Country       string  `json:"country,omitempty"`
	CountryCode   string  `json:"country_code,omitempty"`
	ContinentName string  `json:"continent,omitempty"`
	ContinentCode string  `json:"continent_code,omitempty"`
	PostalCode    string  `json:"postal_code,omitempty"`
	Latitude      float64 `json:"latitude,omitempty"`
	Longitude     float64 `json:"longitude,omitempty"`
	Timezone      string  `json:"timezone,omitempty"`

	CountryName     string           `json:"country_name,omitempty"`
	IsEU            bool             `json:"isEU"`
	CountryFlag     *CountryFlag     `json:"country_flag,omitempty"`
	CountryFlagURL  string           `json:"country_flag_url,omitempty"`
	CountryCurrency *CountryCurrency `json:"country_currency,omitempty"`
}
