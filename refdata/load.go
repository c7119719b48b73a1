package refdata

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
	"howett.net/plist"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// tablesFile is the on-disk override layout. Every section is optional;
// EU membership is written as a list of codes rather than a set.
type tablesFile struct {
	Countries  map[string]string    `json:"countries" yaml:"countries" plist:"countries"`
	EU         []string             `json:"eu" yaml:"eu" plist:"eu"`
	Flags      map[string]Flag      `json:"flags" yaml:"flags" plist:"flags"`
	Currencies map[string]Currency  `json:"currencies" yaml:"currencies" plist:"currencies"`
	Continents map[string]Continent `json:"continents" yaml:"continents" plist:"continents"`
}

// LoadFile reads table overrides from path, picking the format by file
// extension: .yaml/.yml, .json, or .plist. Sections absent from the
// file stay nil, so passing the result through Resolve fills them from
// the defaults.
func LoadFile(path string) (*Tables, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tables file: %w", err)
	}
	var tf tablesFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &tf); err != nil {
			return nil, fmt.Errorf("decode yaml tables: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(raw, &tf); err != nil {
			return nil, fmt.Errorf("decode json tables: %w", err)
		}
	case ".plist":
		if err := plist.NewDecoder(bytes.NewReader(raw)).Decode(&tf); err != nil {
			return nil, fmt.Errorf("decode plist tables: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported tables file %q (want .yaml, .json, or .plist)", filepath.Base(path))
	}
	t := &Tables{
		Countries:  tf.Countries,
		Flags:      tf.Flags,
		Currencies: tf.Currencies,
		Continents: tf.Continents,
	}
	if tf.EU != nil {
		t.EU = make(map[string]bool, len(tf.EU))
		for _, code := range tf.EU {
			t.EU[strings.ToUpper(strings.TrimSpace(code))] = true
		}
	}
	return t, nil
}
