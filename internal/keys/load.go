package keys

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Dictionary names in dictionaries.yaml.
const (
	Settings           = "settings"
	SoilProfile        = "soil_profile"
	SoilLayer          = "soil_layer"
	Pile               = "pile"
	HorizontalLoadCase = "horizontal_load_case"
	HorizontalLoad     = "horizontal_load"
	PileResult         = "pile_result"
	SoilProfileResult  = "soil_profile_result"
	SoilLayerResult    = "soil_layer_result"
	HorizontalResult   = "horizontal_result"
	UserInfo           = "user_info"
	CustomerInfo       = "customer_info"
)

//go:embed dictionaries.yaml
var dictionariesYAML []byte

var dictionaries = mustParse(dictionariesYAML)

// Parse reads dictionaries from YAML: a mapping of dictionary names to
// mappings of project keys to wire keys. Key order is kept.
func Parse(b []byte) (map[string]*Dictionary, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(b, &root); err != nil {
		return nil, fmt.Errorf("parse dictionaries: %w", err)
	}
	if len(root.Content) == 0 {
		return map[string]*Dictionary{}, nil
	}
	top := root.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parse dictionaries: line %d: expected a mapping", top.Line)
	}

	out := make(map[string]*Dictionary, len(top.Content)/2)
	for i := 0; i+1 < len(top.Content); i += 2 {
		name, body := top.Content[i].Value, top.Content[i+1]
		if body.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("parse dictionaries: %s (line %d): expected a mapping", name, body.Line)
		}
		pairs := make([]Pair, 0, len(body.Content)/2)
		for j := 0; j+1 < len(body.Content); j += 2 {
			pairs = append(pairs, Pair{From: body.Content[j].Value, To: body.Content[j+1].Value})
		}
		d, err := NewDictionary(name, pairs...)
		if err != nil {
			return nil, fmt.Errorf("parse dictionaries: %w", err)
		}
		out[name] = d
	}
	return out, nil
}

func mustParse(b []byte) map[string]*Dictionary {
	d, err := Parse(b)
	if err != nil {
		panic(err)
	}
	return d
}

// Get returns a built-in dictionary by name.
func Get(name string) (*Dictionary, bool) {
	d, ok := dictionaries[name]
	return d, ok
}

// MustGet returns a built-in dictionary and panics if it does not exist.
// Use with the name constants of this package.
func MustGet(name string) *Dictionary {
	d, ok := dictionaries[name]
	if !ok {
		panic(fmt.Sprintf("keys: unknown dictionary %q", name))
	}
	return d
}

// Names returns the built-in dictionary names, sorted.
func Names() []string {
	out := make([]string, 0, len(dictionaries))
	for name := range dictionaries {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
