package ipinfo

import (
	"strings"

	"ipinfo/refdata"
)

// countryFlagURLBase is the CDN location of the SVG country flags.
const countryFlagURLBase = "https://cdn.ipinfo.io/static/images/countries-flags/"

func flagURL(code string) string {
	return countryFlagURLBase + code + ".svg"
}

// enrichDetails fills the computed fields on d from the reference
// tables and splits loc into its coordinate halves.
func enrichDetails(d *Details, tables *refdata.Tables) {
	d.Latitude, d.Longitude = splitLoc(d.Loc)
	code := d.Country
	if code == "" {
		return
	}
	d.CountryName = countryName(code, tables)
	d.IsEU = tables.EU[code]
	d.CountryFlag = lookupFlag(code, tables)
	d.CountryFlagURL = flagURL(code)
	d.CountryCurrency = lookupCurrency(code, tables)
	d.Continent = lookupContinent(code, tables)
}

// enrichLiteDetails mirrors enrichDetails for Lite responses, which
// key their country data on country_code.
func enrichLiteDetails(d *LiteDetails, tables *refdata.Tables) {
	code := d.CountryCode
	if code == "" {
		return
	}
	d.CountryName = countryName(code, tables)
	d.IsEU = tables.EU[code]
	d.CountryFlag = lookupFlag(code, tables)
	d.CountryFlagURL = flagURL(code)
	d.CountryCurrency = lookupCurrency(code, tables)
}

// enrichPlusDetails fills the computed fields on the geo block and,
// when the tier repeats a top-level country code, on the response root.
func enrichPlusDetails(d *PlusDetails, tables *refdata.Tables) {
	if g := d.Geo; g != nil && g.CountryCode != "" {
		code := g.CountryCode
		g.CountryName = countryName(code, tables)
		g.IsEU = tables.EU[code]
		g.CountryFlag = lookupFlag(code, tables)
		g.CountryFlagURL = flagURL(code)
		g.CountryCurrency = lookupCurrency(code, tables)
	}
	code := d.CountryCode
	if code == "" {
		return
	}
	d.CountryName = countryName(code, tables)
	d.IsEU = tables.EU[code]
	d.CountryFlag = lookupFlag(code, tables)
	d.CountryFlagURL = flagURL(code)
	d.CountryCurrency = lookupCurrency(code, tables)
	d.Continent = lookupContinent(code, tables)
}

// countryName resolves a country code to its readable name. Codes the
// tables lag behind on pass through unchanged rather than vanishing.
func countryName(code string, tables *refdata.Tables) string {
	if name, ok := tables.Countries[code]; ok {
		return name
	}
	return code
}

func lookupFlag(code string, tables *refdata.Tables) *CountryFlag {
	f, ok := tables.Flags[code]
	if !ok {
		return nil
	}
	return &CountryFlag{Emoji: f.Emoji, Unicode: f.Unicode}
}

func lookupCurrency(code string, tables *refdata.Tables) *CountryCurrency {
	c, ok := tables.Currencies[code]
	if !ok {
		return nil
	}
	return &CountryCurrency{Code: c.Code, Symbol: c.Symbol}
}

func lookupContinent(code string, tables *refdata.Tables) *Continent {
	c, ok := tables.Continents[code]
	if !ok {
		return nil
	}
	return &Continent{Code: c.Code, Name: c.Name}
}

// splitLoc splits a "lat,lon" pair. Both halves are returned or
// neither, so a malformed pair never yields a lone coordinate.
func splitLoc(loc string) (lat, lon string) {
	before, after, ok := strings.Cut(loc, ",")
	if !ok || before == "" || after == "" {
		return "", ""
	}
	return before, after
}
