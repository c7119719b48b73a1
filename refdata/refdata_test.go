package refdata

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTables(t *testing.T) {
	tables := Default()

	if got := tables.Countries["US"]; got != "United States" {
		t.Errorf("Countries[US] = %q, want %q", got, "United States")
	}
	if got := tables.Countries["DE"]; got != "Germany" {
		t.Errorf("Countries[DE] = %q, want %q", got, "Germany")
	}
	if !tables.EU["DE"] {
		t.Error("EU[DE] = false, want true")
	}
	if tables.EU["US"] {
		t.Error("EU[US] = true, want false")
	}
	if got := tables.Currencies["US"]; got != (Currency{Code: "USD", Symbol: "$"}) {
		t.Errorf("Currencies[US] = %+v", got)
	}
	if got := tables.Continents["US"]; got != (Continent{Code: "NA", Name: "North America"}) {
		t.Errorf("Continents[US] = %+v", got)
	}
	if got := tables.Flags["US"]; got.Emoji != "🇺🇸" || got.Unicode != "U+1F1FA U+1F1F8" {
		t.Errorf("Flags[US] = %+v", got)
	}
}

func TestDefaultTablesCoverEveryCountry(t *testing.T) {
	tables := Default()

	for code := range tables.Countries {
		if _, ok := tables.Continents[code]; !ok {
			t.Errorf("no continent for %s", code)
		}
		if _, ok := tables.Flags[code]; !ok {
			t.Errorf("no flag for %s", code)
		}
		// Antarctica is the one country without a currency.
		if _, ok := tables.Currencies[code]; !ok && code != "AQ" {
			t.Errorf("no currency for %s", code)
		}
	}
	for code := range tables.EU {
		if _, ok := tables.Countries[code]; !ok {
			t.Errorf("EU member %s missing from country table", code)
		}
	}
}

func TestFlagFor(t *testing.T) {
	flag, ok := FlagFor("PK")
	if !ok {
		t.Fatal("FlagFor(PK) not ok")
	}
	if flag.Emoji != "🇵🇰" {
		t.Errorf("emoji = %q, want 🇵🇰", flag.Emoji)
	}
	if flag.Unicode != "U+1F1F5 U+1F1F0" {
		t.Errorf("unicode = %q, want U+1F1F5 U+1F1F0", flag.Unicode)
	}

	for _, bad := range []string{"", "U", "USA", "us", "U1"} {
		if _, ok := FlagFor(bad); ok {
			t.Errorf("FlagFor(%q) ok, want false", bad)
		}
	}
}

func TestResolveFillsNilTables(t *testing.T) {
	if got := Resolve(nil); got != Default() {
		t.Error("Resolve(nil) should return the defaults")
	}

	custom := &Tables{Countries: map[string]string{"US": "Estados Unidos"}}
	merged := Resolve(custom)
	if got := merged.Countries["US"]; got != "Estados Unidos" {
		t.Errorf("Countries[US] = %q, want override", got)
	}
	if got := merged.Continents["US"]; got.Name != "North America" {
		t.Errorf("Continents[US] = %+v, want default", got)
	}
	if !merged.EU["FR"] {
		t.Error("EU[FR] = false, want default membership")
	}
	if custom.Continents != nil {
		t.Error("Resolve modified its input")
	}
}

func TestLoadFileYAML(t *testing.T) {
	content := `countries:
  "ZZ": "Testland"
eu:
  - "ZZ"
currencies:
  "ZZ":
    code: "ZZD"
    symbol: "z"
`
	path := filepath.Join(t.TempDir(), "tables.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write tables.yaml: %v", err)
	}

	tables, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got := tables.Countries["ZZ"]; got != "Testland" {
		t.Errorf("Countries[ZZ] = %q", got)
	}
	if !tables.EU["ZZ"] {
		t.Error("EU[ZZ] = false, want true")
	}
	if got := tables.Currencies["ZZ"]; got != (Currency{Code: "ZZD", Symbol: "z"}) {
		t.Errorf("Currencies[ZZ] = %+v", got)
	}
	if tables.Continents != nil {
		t.Error("Continents should stay nil when absent from the file")
	}

	merged := Resolve(tables)
	if got := merged.Continents["US"]; got.Code != "NA" {
		t.Errorf("merged Continents[US] = %+v, want default", got)
	}
}

func TestLoadFileJSON(t *testing.T) {
	content := `{
  "countries": {"ZZ": "Testland"},
  "flags": {"ZZ": {"emoji": "🏴", "unicode": "U+1F3F4"}}
}`
	path := filepath.Join(t.TempDir(), "tables.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write tables.json: %v", err)
	}

	tables, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got := tables.Countries["ZZ"]; got != "Testland" {
		t.Errorf("Countries[ZZ] = %q", got)
	}
	if got := tables.Flags["ZZ"]; got.Emoji != "🏴" {
		t.Errorf("Flags[ZZ] = %+v", got)
	}
}

func TestLoadFilePlist(t *testing.T) {
	content := `<?xml version="1.0" encoding="UTF-8"?>
<plist version="1.0">
<dict>
	<key>countries</key>
	<dict>
		<key>ZZ</key>
		<string>Testland</string>
	</dict>
	<key>eu</key>
	<array>
		<string>zz</string>
	</array>
</dict>
</plist>`
	path := filepath.Join(t.TempDir(), "tables.plist")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write tables.plist: %v", err)
	}

	tables, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got := tables.Countries["ZZ"]; got != "Testland" {
		t.Errorf("Countries[ZZ] = %q", got)
	}
	if !tables.EU["ZZ"] {
		t.Error("EU[ZZ] = false, want true (codes are upper-cased)")
	}
}

func TestLoadFileUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.toml")
	if err := os.WriteFile(path, []byte("x = 1"), 0o644); err != nil {
		t.Fatalf("write tables.toml: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatal("LoadFile should reject unknown extensions")
	}
}
