package refdata

// ISO 3166-1 alpha-2 country names, plus XK for Kosovo.
var countryNames = map[string]string{
	"AD": "Andorra",
	"AE": "United Arab Emirates",
	"AF": "Afghanistan",
	"AG": "Antigua and Barbuda",
	"AI": "Anguilla",
	"AL": "Albania",
	"AM": "Armenia",
	"AO": "Angola",
	"AQ": "Antarctica",
	"AR": "Argentina",
	"AS": "American Samoa",
	"AT": "Austria",
	"AU": "Australia",
	"AW": "Aruba",
	"AX": "Åland",
	"AZ": "Azerbaijan",
	"BA": "Bosnia and Herzegovina",
	"BB": "Barbados",
	"BD": "Bangladesh",
	"BE": "Belgium",
	"BF": "Burkina Faso",
	"BG": "Bulgaria",
	"BH": "Bahrain",
	"BI": "Burundi",
	"BJ": "Benin",
	"BL": "Saint Barthélemy",
	"BM": "Bermuda",
	"BN": "Brunei",
	"BO": "Bolivia",
	"BQ": "Caribbean Netherlands",
	"BR": "Brazil",
	"BS": "Bahamas",
	"BT": "Bhutan",
	"BV": "Bouvet Island",
	"BW": "Botswana",
	"BY": "Belarus",
	"BZ": "Belize",
	"CA": "Canada",
	"CC": "Cocos (Keeling) Islands",
	"CD": "DR Congo",
	"CF": "Central African Republic",
	"CG": "Republic of the Congo",
	"CH": "Switzerland",
	"CI": "Côte d'Ivoire",
	"CK": "Cook Islands",
	"CL": "Chile",
	"CM": "Cameroon",
	"CN": "China",
	"CO": "Colombia",
	"CR": "Costa Rica",
	"CU": "Cuba",
	"CV": "Cape Verde",
	"CW": "Curaçao",
	"CX": "Christmas Island",
	"CY": "Cyprus",
	"CZ": "Czechia",
	"DE": "Germany",
	"DJ": "Djibouti",
	"DK": "Denmark",
	"DM": "Dominica",
	"DO": "Dominican Republic",
	"DZ": "Algeria",
	"EC": "Ecuador",
	"EE": "Estonia",
	"EG": "Egypt",
	"EH": "Western Sahara",
	"ER": "Eritrea",
	"ES": "Spain",
	"ET": "Ethiopia",
	"FI": "Finland",
	"FJ": "Fiji",
	"FK": "Falkland Islands",
	"FM": "Micronesia",
	"FO": "Faroe Islands",
	"FR": "France",
	"GA": "Gabon",
	"GB": "United Kingdom",
	"GD": "Grenada",
	"GE": "Georgia",
	"GF": "French Guiana",
	"GG": "Guernsey",
	"GH": "Ghana",
	"GI": "Gibraltar",
	"GL": "Greenland",
	"GM": "Gambia",
	"GN": "Guinea",
	"GP": "Guadeloupe",
	"GQ": "Equatorial Guinea",
	"GR": "Greece",
	"GS": "South Georgia and the South Sandwich Islands",
	"GT": "Guatemala",
	"GU": "Guam",
	"GW": "Guinea-Bissau",
	"GY": "Guyana",
	"HK": "Hong Kong",
	"HM": "Heard Island and McDonald Islands",
	"HN": "Honduras",
	"HR": "Croatia",
	"HT": "Haiti",
	"HU": "Hungary",
	"ID": "Indonesia",
	"IE": "Ireland",
	"IL": "Israel",
	"IM": "Isle of Man",
	"IN": "India",
	"IO": "British Indian Ocean Territory",
	"IQ": "Iraq",
	"IR": "Iran",
	"IS": "Iceland",
	"IT": "Italy",
	"JE": "Jersey",
	"JM": "Jamaica",
	"JO": "Jordan",
	"JP": "Japan",
	"KE": "Kenya",
	"KG": "Kyrgyzstan",
	"KH": "Cambodia",
	"KI": "Kiribati",
	"KM": "Comoros",
	"KN": "Saint Kitts and Nevis",
	"KP": "North Korea",
	"KR": "South Korea",
	"KW": "Kuwait",
	"KY": "Cayman Islands",
	"KZ": "Kazakhstan",
	"LA": "Laos",
	"LB": "Lebanon",
	"LC": "Saint Lucia",
	"LI": "Liechtenstein",
	"LK": "Sri Lanka",
	"LR": "Liberia",
	"LS": "Lesotho",
	"LT": "Lithuania",
	"LU": "Luxembourg",
	"LV": "Latvia",
	"LY": "Libya",
	"MA": "Morocco",
	"MC": "Monaco",
	"MD": "Moldova",
	"ME": "Montenegro",
	"MF": "Saint Martin",
	"MG": "Madagascar",
	"MH": "Marshall Islands",
	"MK": "North Macedonia",
	"ML": "Mali",
	"MM": "Myanmar",
	"MN": "Mongolia",
	"MO": "Macao",
	"MP": "Northern Mariana Islands",
	"MQ": "Martinique",
	"MR": "Mauritania",
	"MS": "Montserrat",
	"MT": "Malta",
	"MU": "Mauritius",
	"MV": "Maldives",
	"MW": "Malawi",
	"MX": "Mexico",
	"MY": "Malaysia",
	"MZ": "Mozambique",
	"NA": "Namibia",
	"NC": "New Caledonia",
	"NE": "Niger",
	"NF": "Norfolk Island",
	"NG": "Nigeria",
	"NI": "Nicaragua",
	"NL": "Netherlands",
	"NO": "Norway",
	"NP": "Nepal",
	"NR": "Nauru",
	"NU": "Niue",
	"NZ": "New Zealand",
	"OM": "Oman",
	"PA": "Panama",
	"PE": "Peru",
	"PF": "French Polynesia",
	"PG": "Papua New Guinea",
	"PH": "Philippines",
	"PK": "Pakistan",
	"PL": "Poland",
	"PM": "Saint Pierre and Miquelon",
	"PN": "Pitcairn Islands",
	"PR": "Puerto Rico",
	"PS": "Palestine",
	"PT": "Portugal",
	"PW": "Palau",
	"PY": "Paraguay",
	"QA": "Qatar",
	"RE": "Réunion",
	"RO": "Romania",
	"RS": "Serbia",
	"RU": "Russia",
	"RW": "Rwanda",
	"SA": "Saudi Arabia",
	"SB": "Solomon Islands",
	"SC": "Seychelles",
	"SD": "Sudan",
	"SE": "Sweden",
	"SG": "Singapore",
	"SH": "Saint Helena",
	"SI": "Slovenia",
	"SJ": "Svalbard and Jan Mayen",
	"SK": "Slovakia",
	"SL": "Sierra Leone",
	"SM": "San Marino",
	"SN": "Senegal",
	"SO": "Somalia",
	"SR": "Suriname",
	"SS": "South Sudan",
	"ST": "São Tomé and Príncipe",
	"SV": "El Salvador",
	"SX": "Sint Maarten",
	"SY": "Syria",
	"SZ": "Eswatini",
	"TC": "Turks and Caicos Islands",
	"TD": "Chad",
	"TF": "French Southern Territories",
	"TG": "Togo",
	"TH": "Thailand",
	"TJ": "Tajikistan",
	"TK": "Tokelau",
	"TL": "Timor-Leste",
	"TM": "Turkmenistan",
	"TN": "Tunisia",
	"TO": "Tonga",
	"TR": "Turkey",
	"TT": "Trinidad and Tobago",
	"TV": "Tuvalu",
	"TW": "Taiwan",
	"TZ": "Tanzania",
	"UA": "Ukraine",
	"UG": "Uganda",
	"UM": "U.S. Minor Outlying Islands",
	"US": "United States",
	"UY": "Uruguay",
	"UZ": "Uzbekistan",
	"VA": "Vatican City",
	"VC": "Saint Vincent and the Grenadines",
	"VE": "Venezuela",
	"VG": "British Virgin Islands",
	"VI": "U.S. Virgin Islands",
	"VN": "Vietnam",
	"VU": "Vanuatu",
	"WF": "Wallis and Futuna",
	"WS": "Samoa",
	"XK": "Kosovo",
	"YE": "Yemen",
	"YT": "Mayotte",
	"ZA": "South Africa",
	"ZM": "Zambia",
	"ZW": "Zimbabwe",
}

// The 27 EU member states.
var euCountries = []string{
	"AT", "BE", "BG", "CY", "CZ", "DE", "DK", "EE", "ES", "FI",
	"FR", "GR", "HR", "HU", "IE", "IT", "LT", "LU", "LV", "MT",
	"NL", "PL", "PT", "RO", "SE", "SI", "SK",
}

// National currencies by country. Antarctica has none.
var countryCurrencies = map[string]Currency{
	"AD": {Code: "EUR", Symbol: "€"},
	"AE": {Code: "AED", Symbol: "د.إ"},
	"AF": {Code: "AFN", Symbol: "؋"},
	"AG": {Code: "XCD", Symbol: "$"},
	"AI": {Code: "XCD", Symbol: "$"},
	"AL": {Code: "ALL", Symbol: "L"},
	"AM": {Code: "AMD", Symbol: "֏"},
	"AO": {Code: "AOA", Symbol: "Kz"},
	"AR": {Code: "ARS", Symbol: "$"},
	"AS": {Code: "USD", Symbol: "$"},
	"AT": {Code: "EUR", Symbol: "€"},
	"AU": {Code: "AUD", Symbol: "$"},
	"AW": {Code: "AWG", Symbol: "ƒ"},
	"AX": {Code: "EUR", Symbol: "€"},
	"AZ": {Code: "AZN", Symbol: "₼"},
	"BA": {Code: "BAM", Symbol: "KM"},
	"BB": {Code: "BBD", Symbol: "$"},
	"BD": {Code: "BDT", Symbol: "৳"},
	"BE": {Code: "EUR", Symbol: "€"},
	"BF": {Code: "XOF", Symbol: "Fr"},
	"BG": {Code: "BGN", Symbol: "лв"},
	"BH": {Code: "BHD", Symbol: ".د.ب"},
	"BI": {Code: "BIF", Symbol: "Fr"},
	"BJ": {Code: "XOF", Symbol: "Fr"},
	"BL": {Code: "EUR", Symbol: "€"},
	"BM": {Code: "BMD", Symbol: "$"},
	"BN": {Code: "BND", Symbol: "$"},
	"BO": {Code: "BOB", Symbol: "Bs."},
	"BQ": {Code: "USD", Symbol: "$"},
	"BR": {Code: "BRL", Symbol: "R$"},
	"BS": {Code: "BSD", Symbol: "$"},
	"BT": {Code: "BTN", Symbol: "Nu."},
	"BV": {Code: "NOK", Symbol: "kr"},
	"BW": {Code: "BWP", Symbol: "P"},
	"BY": {Code: "BYN", Symbol: "Br"},
	"BZ": {Code: "BZD", Symbol: "$"},
	"CA": {Code: "CAD", Symbol: "$"},
	"CC": {Code: "AUD", Symbol: "$"},
	"CD": {Code: "CDF", Symbol: "Fr"},
	"CF": {Code: "XAF", Symbol: "Fr"},
	"CG": {Code: "XAF", Symbol: "Fr"},
	"CH": {Code: "CHF", Symbol: "Fr"},
	"CI": {Code: "XOF", Symbol: "Fr"},
	"CK": {Code: "NZD", Symbol: "$"},
	"CL": {Code: "CLP", Symbol: "$"},
	"CM": {Code: "XAF", Symbol: "Fr"},
	"CN": {Code: "CNY", Symbol: "¥"},
	"CO": {Code: "COP", Symbol: "$"},
	"CR": {Code: "CRC", Symbol: "₡"},
	"CU": {Code: "CUP", Symbol: "$"},
	"CV": {Code: "CVE", Symbol: "Esc"},
	"CW": {Code: "ANG", Symbol: "ƒ"},
	"CX": {Code: "AUD", Symbol: "$"},
	"CY": {Code: "EUR", Symbol: "€"},
	"CZ": {Code: "CZK", Symbol: "Kč"},
	"DE": {Code: "EUR", Symbol: "€"},
	"DJ": {Code: "DJF", Symbol: "Fr"},
	"DK": {Code: "DKK", Symbol: "kr"},
	"DM": {Code: "XCD", Symbol: "$"},
	"DO": {Code: "DOP", Symbol: "$"},
	"DZ": {Code: "DZD", Symbol: "د.ج"},
	"EC": {Code: "USD", Symbol: "$"},
	"EE": {Code: "EUR", Symbol: "€"},
	"EG": {Code: "EGP", Symbol: "£"},
	"EH": {Code: "MAD", Symbol: "د.م."},
	"ER": {Code: "ERN", Symbol: "Nfk"},
	"ES": {Code: "EUR", Symbol: "€"},
	"ET": {Code: "ETB", Symbol: "Br"},
	"FI": {Code: "EUR", Symbol: "€"},
	"FJ": {Code: "FJD", Symbol: "$"},
	"FK": {Code: "FKP", Symbol: "£"},
	"FM": {Code: "USD", Symbol: "$"},
	"FO": {Code: "DKK", Symbol: "kr"},
	"FR": {Code: "EUR", Symbol: "€"},
	"GA": {Code: "XAF", Symbol: "Fr"},
	"GB": {Code: "GBP", Symbol: "£"},
	"GD": {Code: "XCD", Symbol: "$"},
	"GE": {Code: "GEL", Symbol: "₾"},
	"GF": {Code: "EUR", Symbol: "€"},
	"GG": {Code: "GBP", Symbol: "£"},
	"GH": {Code: "GHS", Symbol: "₵"},
	"GI": {Code: "GIP", Symbol: "£"},
	"GL": {Code: "DKK", Symbol: "kr"},
	"GM": {Code: "GMD", Symbol: "D"},
	"GN": {Code: "GNF", Symbol: "Fr"},
	"GP": {Code: "EUR", Symbol: "€"},
	"GQ": {Code: "XAF", Symbol: "Fr"},
	"GR": {Code: "EUR", Symbol: "€"},
	"GS": {Code: "GBP", Symbol: "£"},
	"GT": {Code: "GTQ", Symbol: "Q"},
	"GU": {Code: "USD", Symbol: "$"},
	"GW": {Code: "XOF", Symbol: "Fr"},
	"GY": {Code: "GYD", Symbol: "$"},
	"HK": {Code: "HKD", Symbol: "$"},
	"HM": {Code: "AUD", Symbol: "$"},
	"HN": {Code: "HNL", Symbol: "L"},
	"HR": {Code: "EUR", Symbol: "€"},
	"HT": {Code: "HTG", Symbol: "G"},
	"HU": {Code: "HUF", Symbol: "Ft"},
	"ID": {Code: "IDR", Symbol: "Rp"},
	"IE": {Code: "EUR", Symbol: "€"},
	"IL": {Code: "ILS", Symbol: "₪"},
	"IM": {Code: "GBP", Symbol: "£"},
	"IN": {Code: "INR", Symbol: "₹"},
	"IO": {Code: "USD", Symbol: "$"},
	"IQ": {Code: "IQD", Symbol: "ع.د"},
	"IR": {Code: "IRR", Symbol: "﷼"},
	"IS": {Code: "ISK", Symbol: "kr"},
	"IT": {Code: "EUR", Symbol: "€"},
	"JE": {Code: "GBP", Symbol: "£"},
	"JM": {Code: "JMD", Symbol: "$"},
	"JO": {Code: "JOD", Symbol: "د.ا"},
	"JP": {Code: "JPY", Symbol: "¥"},
	"KE": {Code: "KES", Symbol: "Sh"},
	"KG": {Code: "KGS", Symbol: "лв"},
	"KH": {Code: "KHR", Symbol: "៛"},
	"KI": {Code: "AUD", Symbol: "$"},
	"KM": {Code: "KMF", Symbol: "Fr"},
	"KN": {Code: "XCD", Symbol: "$"},
	"KP": {Code: "KPW", Symbol: "₩"},
	"KR": {Code: "KRW", Symbol: "₩"},
	"KW": {Code: "KWD", Symbol: "د.ك"},
	"KY": {Code: "KYD", Symbol: "$"},
	"KZ": {Code: "KZT", Symbol: "₸"},
	"LA": {Code: "LAK", Symbol: "₭"},
	"LB": {Code: "LBP", Symbol: "ل.ل"},
	"LC": {Code: "XCD", Symbol: "$"},
	"LI": {Code: "CHF", Symbol: "Fr"},
	"LK": {Code: "LKR", Symbol: "Rs"},
	"LR": {Code: "LRD", Symbol: "$"},
	"LS": {Code: "LSL", Symbol: "L"},
	"LT": {Code: "EUR", Symbol: "€"},
	"LU": {Code: "EUR", Symbol: "€"},
	"LV": {Code: "EUR", Symbol: "€"},
	"LY": {Code: "LYD", Symbol: "ل.د"},
	"MA": {Code: "MAD", Symbol: "د.م."},
	"MC": {Code: "EUR", Symbol: "€"},
	"MD": {Code: "MDL", Symbol: "L"},
	"ME": {Code: "EUR", Symbol: "€"},
	"MF": {Code: "EUR", Symbol: "€"},
	"MG": {Code: "MGA", Symbol: "Ar"},
	"MH": {Code: "USD", Symbol: "$"},
	"MK": {Code: "MKD", Symbol: "ден"},
	"ML": {Code: "XOF", Symbol: "Fr"},
	"MM": {Code: "MMK", Symbol: "K"},
	"MN": {Code: "MNT", Symbol: "₮"},
	"MO": {Code: "MOP", Symbol: "P"},
	"MP": {Code: "USD", Symbol: "$"},
	"MQ": {Code: "EUR", Symbol: "€"},
	"MR": {Code: "MRU", Symbol: "UM"},
	"MS": {Code: "XCD", Symbol: "$"},
	"MT": {Code: "EUR", Symbol: "€"},
	"MU": {Code: "MUR", Symbol: "₨"},
	"MV": {Code: "MVR", Symbol: ".ރ"},
	"MW": {Code: "MWK", Symbol: "MK"},
	"MX": {Code: "MXN", Symbol: "$"},
	"MY": {Code: "MYR", Symbol: "RM"},
	"MZ": {Code: "MZN", Symbol: "MT"},
	"NA": {Code: "NAD", Symbol: "$"},
	"NC": {Code: "XPF", Symbol: "Fr"},
	"NE": {Code: "XOF", Symbol: "Fr"},
	"NF": {Code: "AUD", Symbol: "$"},
	"NG": {Code: "NGN", Symbol: "₦"},
	"NI": {Code: "NIO", Symbol: "C$"},
	"NL": {Code: "EUR", Symbol: "€"},
	"NO": {Code: "NOK", Symbol: "kr"},
	"NP": {Code: "NPR", Symbol: "₨"},
	"NR": {Code: "AUD", Symbol: "$"},
	"NU": {Code: "NZD", Symbol: "$"},
	"NZ": {Code: "NZD", Symbol: "$"},
	"OM": {Code: "OMR", Symbol: "ر.ع."},
	"PA": {Code: "PAB", Symbol: "B/."},
	"PE": {Code: "PEN", Symbol: "S/."},
	"PF": {Code: "XPF", Symbol: "Fr"},
	"PG": {Code: "PGK", Symbol: "K"},
	"PH": {Code: "PHP", Symbol: "₱"},
	"PK": {Code: "PKR", Symbol: "₨"},
	"PL": {Code: "PLN", Symbol: "zł"},
	"PM": {Code: "EUR", Symbol: "€"},
	"PN": {Code: "NZD", Symbol: "$"},
	"PR": {Code: "USD", Symbol: "$"},
	"PS": {Code: "ILS", Symbol: "₪"},
	"PT": {Code: "EUR", Symbol: "€"},
	"PW": {Code: "USD", Symbol: "$"},
	"PY": {Code: "PYG", Symbol: "₲"},
	"QA": {Code: "QAR", Symbol: "ر.ق"},
	"RE": {Code: "EUR", Symbol: "€"},
	"RO": {Code: "RON", Symbol: "lei"},
	"RS": {Code: "RSD", Symbol: "дин."},
	"RU": {Code: "RUB", Symbol: "₽"},
	"RW": {Code: "RWF", Symbol: "Fr"},
	"SA": {Code: "SAR", Symbol: "ر.س"},
	"SB": {Code: "SBD", Symbol: "$"},
	"SC": {Code: "SCR", Symbol: "₨"},
	"SD": {Code: "SDG", Symbol: "ج.س."},
	"SE": {Code: "SEK", Symbol: "kr"},
	"SG": {Code: "SGD", Symbol: "$"},
	"SH": {Code: "SHP", Symbol: "£"},
	"SI": {Code: "EUR", Symbol: "€"},
	"SJ": {Code: "NOK", Symbol: "kr"},
	"SK": {Code: "EUR", Symbol: "€"},
	"SL": {Code: "SLL", Symbol: "Le"},
	"SM": {Code: "EUR", Symbol: "€"},
	"SN": {Code: "XOF", Symbol: "Fr"},
	"SO": {Code: "SOS", Symbol: "Sh"},
	"SR": {Code: "SRD", Symbol: "$"},
	"SS": {Code: "SSP", Symbol: "£"},
	"ST": {Code: "STN", Symbol: "Db"},
	"SV": {Code: "USD", Symbol: "$"},
	"SX": {Code: "ANG", Symbol: "ƒ"},
	"SY": {Code: "SYP", Symbol: "£"},
	"SZ": {Code: "SZL", Symbol: "L"},
	"TC": {Code: "USD", Symbol: "$"},
	"TD": {Code: "XAF", Symbol: "Fr"},
	"TF": {Code: "EUR", Symbol: "€"},
	"TG": {Code: "XOF", Symbol: "Fr"},
	"TH": {Code: "THB", Symbol: "฿"},
	"TJ": {Code: "TJS", Symbol: "ЅМ"},
	"TK": {Code: "NZD", Symbol: "$"},
	"TL": {Code: "USD", Symbol: "$"},
	"TM": {Code: "TMT", Symbol: "m"},
	"TN": {Code: "TND", Symbol: "د.ت"},
	"TO": {Code: "TOP", Symbol: "T$"},
	"TR": {Code: "TRY", Symbol: "₺"},
	"TT": {Code: "TTD", Symbol: "$"},
	"TV": {Code: "AUD", Symbol: "$"},
	"TW": {Code: "TWD", Symbol: "NT$"},
	"TZ": {Code: "TZS", Symbol: "Sh"},
	"UA": {Code: "UAH", Symbol: "₴"},
	"UG": {Code: "UGX", Symbol: "Sh"},
	"UM": {Code: "USD", Symbol: "$"},
	"US": {Code: "USD", Symbol: "$"},
	"UY": {Code: "UYU", Symbol: "$"},
	"UZ": {Code: "UZS", Symbol: "лв"},
	"VA": {Code: "EUR", Symbol: "€"},
	"VC": {Code: "XCD", Symbol: "$"},
	"VE": {Code: "VES", Symbol: "Bs."},
	"VG": {Code: "USD", Symbol: "$"},
	"VI": {Code: "USD", Symbol: "$"},
	"VN": {Code: "VND", Symbol: "₫"},
	"VU": {Code: "VUV", Symbol: "Vt"},
	"WF": {Code: "XPF", Symbol: "Fr"},
	"WS": {Code: "WST", Symbol: "T"},
	"XK": {Code: "EUR", Symbol: "€"},
	"YE": {Code: "YER", Symbol: "﷼"},
	"YT": {Code: "EUR", Symbol: "€"},
	"ZA": {Code: "ZAR", Symbol: "R"},
	"ZM": {Code: "ZMW", Symbol: "ZK"},
	"ZW": {Code: "ZWL", Symbol: "$"},
}

// Continent assignment by country.
var countryContinents = map[string]Continent{
	"AD": {Code: "EU", Name: "Europe"},
	"AE": {Code: "AS", Name: "Asia"},
	"AF": {Code: "AS", Name: "Asia"},
	"AG": {Code: "NA", Name: "North America"},
	"AI": {Code: "NA", Name: "North America"},
	"AL": {Code: "EU", Name: "Europe"},
	"AM": {Code: "AS", Name: "Asia"},
	"AO": {Code: "AF", Name: "Africa"},
	"AQ": {Code: "AN", Name: "Antarctica"},
	"AR": {Code: "SA", Name: "South America"},
	"AS": {Code: "OC", Name: "Oceania"},
	"AT": {Code: "EU", Name: "Europe"},
	"AU": {Code: "OC", Name: "Oceania"},
	"AW": {Code: "NA", Name: "North America"},
	"AX": {Code: "EU", Name: "Europe"},
	"AZ": {Code: "AS", Name: "Asia"},
	"BA": {Code: "EU", Name: "Europe"},
	"BB": {Code: "NA", Name: "North America"},
	"BD": {Code: "AS", Name: "Asia"},
	"BE": {Code: "EU", Name: "Europe"},
	"BF": {Code: "AF", Name: "Africa"},
	"BG": {Code: "EU", Name: "Europe"},
	"BH": {Code: "AS", Name: "Asia"},
	"BI": {Code: "AF", Name: "Africa"},
	"BJ": {Code: "AF", Name: "Africa"},
	"BL": {Code: "NA", Name: "North America"},
	"BM": {Code: "NA", Name: "North America"},
	"BN": {Code: "AS", Name: "Asia"},
	"BO": {Code: "SA", Name: "South America"},
	"BQ": {Code: "NA", Name: "North America"},
	"BR": {Code: "SA", Name: "South America"},
	"BS": {Code: "NA", Name: "North America"},
	"BT": {Code: "AS", Name: "Asia"},
	"BV": {Code: "AN", Name: "Antarctica"},
	"BW": {Code: "AF", Name: "Africa"},
	"BY": {Code: "EU", Name: "Europe"},
	"BZ": {Code: "NA", Name: "North America"},
	"CA": {Code: "NA", Name: "North America"},
	"CC": {Code: "OC", Name: "Oceania"},
	"CD": {Code: "AF", Name: "Africa"},
	"CF": {Code: "AF", Name: "Africa"},
	"CG": {Code: "AF", Name: "Africa"},
	"CH": {Code: "EU", Name: "Europe"},
	"CI": {Code: "AF", Name: "Africa"},
	"CK": {Code: "OC", Name: "Oceania"},
	"CL": {Code: "SA", Name: "South America"},
	"CM": {Code: "AF", Name: "Africa"},
	"CN": {Code: "AS", Name: "Asia"},
	"CO": {Code: "SA", Name: "South America"},
	"CR": {Code: "NA", Name: "North America"},
	"CU": {Code: "NA", Name: "North America"},
	"CV": {Code: "AF", Name: "Africa"},
	"CW": {Code: "NA", Name: "North America"},
	"CX": {Code: "OC", Name: "Oceania"},
	"CY": {Code: "EU", Name: "Europe"},
	"CZ": {Code: "EU", Name: "Europe"},
	"DE": {Code: "EU", Name: "Europe"},
	"DJ": {Code: "AF", Name: "Africa"},
	"DK": {Code: "EU", Name: "Europe"},
	"DM": {Code: "NA", Name: "North America"},
	"DO": {Code: "NA", Name: "North America"},
	"DZ": {Code: "AF", Name: "Africa"},
	"EC": {Code: "SA", Name: "South America"},
	"EE": {Code: "EU", Name: "Europe"},
	"EG": {Code: "AF", Name: "Africa"},
	"EH": {Code: "AF", Name: "Africa"},
	"ER": {Code: "AF", Name: "Africa"},
	"ES": {Code: "EU", Name: "Europe"},
	"ET": {Code: "AF", Name: "Africa"},
	"FI": {Code: "EU", Name: "Europe"},
	"FJ": {Code: "OC", Name: "Oceania"},
	"FK": {Code: "SA", Name: "South America"},
	"FM": {Code: "OC", Name: "Oceania"},
	"FO": {Code: "EU", Name: "Europe"},
	"FR": {Code: "EU", Name: "Europe"},
	"GA": {Code: "AF", Name: "Africa"},
	"GB": {Code: "EU", Name: "Europe"},
	"GD": {Code: "NA", Name: "North America"},
	"GE": {Code: "AS", Name: "Asia"},
	"GF": {Code: "SA", Name: "South America"},
	"GG": {Code: "EU", Name: "Europe"},
	"GH": {Code: "AF", Name: "Africa"},
	"GI": {Code: "EU", Name: "Europe"},
	"GL": {Code: "NA", Name: "North America"},
	"GM": {Code: "AF", Name: "Africa"},
	"GN": {Code: "AF", Name: "Africa"},
	"GP": {Code: "NA", Name: "North America"},
	"GQ": {Code: "AF", Name: "Africa"},
	"GR": {Code: "EU", Name: "Europe"},
	"GS": {Code: "AN", Name: "Antarctica"},
	"GT": {Code: "NA", Name: "North America"},
	"GU": {Code: "OC", Name: "Oceania"},
	"GW": {Code: "AF", Name: "Africa"},
	"GY": {Code: "SA", Name: "South America"},
	"HK": {Code: "AS", Name: "Asia"},
	"HM": {Code: "AN", Name: "Antarctica"},
	"HN": {Code: "NA", Name: "North America"},
	"HR": {Code: "EU", Name: "Europe"},
	"HT": {Code: "NA", Name: "North America"},
	"HU": {Code: "EU", Name: "Europe"},
	"ID": {Code: "AS", Name: "Asia"},
	"IE": {Code: "EU", Name: "Europe"},
	"IL": {Code: "AS", Name: "Asia"},
	"IM": {Code: "EU", Name: "Europe"},
	"IN": {Code: "AS", Name: "Asia"},
	"IO": {Code: "AS", Name: "Asia"},
	"IQ": {Code: "AS", Name: "Asia"},
	"IR": {Code: "AS", Name: "Asia"},
	"IS": {Code: "EU", Name: "Europe"},
	"IT": {Code: "EU", Name: "Europe"},
	"JE": {Code: "EU", Name: "Europe"},
	"JM": {Code: "NA", Name: "North America"},
	"JO": {Code: "AS", Name: "Asia"},
	"JP": {Code: "AS", Name: "Asia"},
	"KE": {Code: "AF", Name: "Africa"},
	"KG": {Code: "AS", Name: "Asia"},
	"KH": {Code: "AS", Name: "Asia"},
	"KI": {Code: "OC", Name: "Oceania"},
	"KM": {Code: "AF", Name: "Africa"},
	"KN": {Code: "NA", Name: "North America"},
	"KP": {Code: "AS", Name: "Asia"},
	"KR": {Code: "AS", Name: "Asia"},
	"KW": {Code: "AS", Name: "Asia"},
	"KY": {Code: "NA", Name: "North America"},
	"KZ": {Code: "AS", Name: "Asia"},
	"LA": {Code: "AS", Name: "Asia"},
	"LB": {Code: "AS", Name: "Asia"},
	"LC": {Code: "NA", Name: "North America"},
	"LI": {Code: "EU", Name: "Europe"},
	"LK": {Code: "AS", Name: "Asia"},
	"LR": {Code: "AF", Name: "Africa"},
	"LS": {Code: "AF", Name: "Africa"},
	"LT": {Code: "EU", Name: "Europe"},
	"LU": {Code: "EU", Name: "Europe"},
	"LV": {Code: "EU", Name: "Europe"},
	"LY": {Code: "AF", Name: "Africa"},
	"MA": {Code: "AF", Name: "Africa"},
	"MC": {Code: "EU", Name: "Europe"},
	"MD": {Code: "EU", Name: "Europe"},
	"ME": {Code: "EU", Name: "Europe"},
	"MF": {Code: "NA", Name: "North America"},
	"MG": {Code: "AF", Name: "Africa"},
	"MH": {Code: "OC", Name: "Oceania"},
	"MK": {Code: "EU", Name: "Europe"},
	"ML": {Code: "AF", Name: "Africa"},
	"MM": {Code: "AS", Name: "Asia"},
	"MN": {Code: "AS", Name: "Asia"},
	"MO": {Code: "AS", Name: "Asia"},
	"MP": {Code: "OC", Name: "Oceania"},
	"MQ": {Code: "NA", Name: "North America"},
	"MR": {Code: "AF", Name: "Africa"},
	"MS": {Code: "NA", Name: "North America"},
	"MT": {Code: "EU", Name: "Europe"},
	"MU": {Code: "AF", Name: "Africa"},
	"MV": {Code: "AS", Name: "Asia"},
	"MW": {Code: "AF", Name: "Africa"},
	"MX": {Code: "NA", Name: "North America"},
	"MY": {Code: "AS", Name: "Asia"},
	"MZ": {Code: "AF", Name: "Africa"},
	"NA": {Code: "AF", Name: "Africa"},
	"NC": {Code: "OC", Name: "Oceania"},
	"NE": {Code: "AF", Name: "Africa"},
	"NF": {Code: "OC", Name: "Oceania"},
	"NG": {Code: "AF", Name: "Africa"},
	"NI": {Code: "NA", Name: "North America"},
	"NL": {Code: "EU", Name: "Europe"},
	"NO": {Code: "EU", Name: "Europe"},
	"NP": {Code: "AS", Name: "Asia"},
	"NR": {Code: "OC", Name: "Oceania"},
	"NU": {Code: "OC", Name: "Oceania"},
	"NZ": {Code: "OC", Name: "Oceania"},
	"OM": {Code: "AS", Name: "Asia"},
	"PA": {Code: "NA", Name: "North America"},
	"PE": {Code: "SA", Name: "South America"},
	"PF": {Code: "OC", Name: "Oceania"},
	"PG": {Code: "OC", Name: "Oceania"},
	"PH": {Code: "AS", Name: "Asia"},
	"PK": {Code: "AS", Name: "Asia"},
	"PL": {Code: "EU", Name: "Europe"},
	"PM": {Code: "NA", Name: "North America"},
	"PN": {Code: "OC", Name: "Oceania"},
	"PR": {Code: "NA", Name: "North America"},
	"PS": {Code: "AS", Name: "Asia"},
	"PT": {Code: "EU", Name: "Europe"},
	"PW": {Code: "OC", Name: "Oceania"},
	"PY": {Code: "SA", Name: "South America"},
	"QA": {Code: "AS", Name: "Asia"},
	"RE": {Code: "AF", Name: "Africa"},
	"RO": {Code: "EU", Name: "Europe"},
	"RS": {Code: "EU", Name: "Europe"},
	"RU": {Code: "EU", Name: "Europe"},
	"RW": {Code: "AF", Name: "Africa"},
	"SA": {Code: "AS", Name: "Asia"},
	"SB": {Code: "OC", Name: "Oceania"},
	"SC": {Code: "AF", Name: "Africa"},
	"SD": {Code: "AF", Name: "Africa"},
	"SE": {Code: "EU", Name: "Europe"},
	"SG": {Code: "AS", Name: "Asia"},
	"SH": {Code: "AF", Name: "Africa"},
	"SI": {Code: "EU", Name: "Europe"},
	"SJ": {Code: "EU", Name: "Europe"},
	"SK": {Code: "EU", Name: "Europe"},
	"SL": {Code: "AF", Name: "Africa"},
	"SM": {Code: "EU", Name: "Europe"},
	"SN": {Code: "AF", Name: "Africa"},
	"SO": {Code: "AF", Name: "Africa"},
	"SR": {Code: "SA", Name: "South America"},
	"SS": {Code: "AF", Name: "Africa"},
	"ST": {Code: "AF", Name: "Africa"},
	"SV": {Code: "NA", Name: "North America"},
	"SX": {Code: "NA", Name: "North America"},
	"SY": {Code: "AS", Name: "Asia"},
	"SZ": {Code: "AF", Name: "Africa"},
	"TC": {Code: "NA", Name: "North America"},
	"TD": {Code: "AF", Name: "Africa"},
	"TF": {Code: "AN", Name: "Antarctica"},
	"TG": {Code: "AF", Name: "Africa"},
	"TH": {Code: "AS", Name: "Asia"},
	"TJ": {Code: "AS", Name: "Asia"},
	"TK": {Code: "OC", Name: "Oceania"},
	"TL": {Code: "AS", Name: "Asia"},
	"TM": {Code: "AS", Name: "Asia"},
	"TN": {Code: "AF", Name: "Africa"},
	"TO": {Code: "OC", Name: "Oceania"},
	"TR": {Code: "AS", Name: "Asia"},
	"TT": {Code: "NA", Name: "North America"},
	"TV": {Code: "OC", Name: "Oceania"},
	"TW": {Code: "AS", Name: "Asia"},
	"TZ": {Code: "AF", Name: "Africa"},
	"UA": {Code: "EU", Name: "Europe"},
	"UG": {Code: "AF", Name: "Africa"},
	"UM": {Code: "OC", Name: "Oceania"},
	"US": {Code: "NA", Name: "North America"},
	"UY": {Code: "SA", Name: "South America"},
	"UZ": {Code: "AS", Name: "Asia"},
	"VA": {Code: "EU", Name: "Europe"},
	"VC": {Code: "NA", Name: "North America"},
	"VE": {Code: "SA", Name: "South America"},
	"VG": {Code: "NA", Name: "North America"},
	"VI": {Code: "NA", Name: "North America"},
	"VN": {Code: "AS", Name: "Asia"},
	"VU": {Code: "OC", Name: "Oceania"},
	"WF": {Code: "OC", Name: "Oceania"},
	"WS": {Code: "OC", Name: "Oceania"},
	"XK": {Code: "EU", Name: "Europe"},
	"YE": {Code: "AS", Name: "Asia"},
	"YT": {Code: "AF", Name: "Africa"},
	"ZA": {Code: "AF", Name: "Africa"},
	"ZM": {Code: "AF", Name: "Africa"},
	"ZW": {Code: "AF", Name: "Africa"},
}
