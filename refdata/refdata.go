// Package refdata carries the country reference tables used to enrich
// lookup responses: ISO 3166 names, EU membership, emoji flags, national
// currencies, and continents, all keyed by two-letter country code.
//
// Default returns the built-in tables. Callers can swap out individual
// tables through Resolve, or load replacements from a YAML, JSON, or
// property-list file with LoadFile.
package refdata

import (
	"fmt"
	"sync"
)

// Flag is a country flag as an emoji plus its code-point spelling,
// e.g. "🇺🇸" and "U+1F1FA U+1F1F8".
type Flag struct {
	Emoji   string `json:"emoji" yaml:"emoji" plist:"emoji"`
	Unicode string `json:"unicode" yaml:"unicode" plist:"unicode"`
}

// Currency is a national currency code and symbol, e.g. "USD" and "$".
type Currency struct {
	Code   string `json:"code" yaml:"code" plist:"code"`
	Symbol string `json:"symbol" yaml:"symbol" plist:"symbol"`
}

// Continent is a continent code and English name, e.g. "NA" and
// "North America".
type Continent struct {
	Code string `json:"code" yaml:"code" plist:"code"`
	Name string `json:"name" yaml:"name" plist:"name"`
}

// Tables bundles the reference tables, keyed by upper-case ISO 3166-1
// alpha-2 country code. A nil table means "use the built-in one"; see
// Resolve.
type Tables struct {
	Countries  map[string]string
	EU         map[string]bool
	Flags      map[string]Flag
	Currencies map[string]Currency
	Continents map[string]Continent
}

var (
	defaultOnce   sync.Once
	defaultTables *Tables
)

// Default returns the built-in tables. The result is shared across
// callers and must not be modified.
func Default() *Tables {
	defaultOnce.Do(func() {
		eu := make(map[string]bool, len(euCountries))
		for _, code := range euCountries {
			eu[code] = true
		}
		flags := make(map[string]Flag, len(countryNames))
		for code := range countryNames {
			if f, ok := FlagFor(code); ok {
				flags[code] = f
			}
		}
		defaultTables = &Tables{
			Countries:  countryNames,
			EU:         eu,
			Flags:      flags,
			Currencies: countryCurrencies,
			Continents: countryContinents,
		}
	})
	return defaultTables
}

// Resolve fills any nil table in overrides from the built-in defaults
// and returns the result. A nil overrides yields the defaults
// themselves. The input is not modified.
func Resolve(overrides *Tables) *Tables {
	base := Default()
	if overrides == nil {
		return base
	}
	merged := *overrides
	if merged.Countries == nil {
		merged.Countries = base.Countries
	}
	if merged.EU == nil {
		merged.EU = base.EU
	}
	if merged.Flags == nil {
		merged.Flags = base.Flags
	}
	if merged.Currencies == nil {
		merged.Currencies = base.Currencies
	}
	if merged.Continents == nil {
		merged.Continents = base.Continents
	}
	return &merged
}

// FlagFor derives the emoji flag for a two-letter upper-case country
// code from the Unicode regional indicator symbols, spelling the code
// points out in the Unicode field ("U+1F1FA U+1F1F8" for US). It
// reports false for anything that is not two ASCII capitals.
func FlagFor(code string) (Flag, bool) {
	if len(code) != 2 {
		return Flag{}, false
	}
	runes := make([]rune, 2)
	for i := 0; i < 2; i++ {
		c := code[i]
		if c < 'A' || c > 'Z' {
			return Flag{}, false
		}
		runes[i] = 0x1F1E6 + rune(c-'A')
	}
	return Flag{
		Emoji:   string(runes),
		Unicode: fmt.Sprintf("U+%X U+%X", runes[0], runes[1]),
	}, true
}
