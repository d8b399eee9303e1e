package config

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
)

// settingsParser decodes a settings file of one format into a koanf map
// whose keys are lower case at every level, so "Tree: {Verify: true}"
// lands on tree.verify.
type settingsParser struct {
	format    string
	unmarshal func([]byte, interface{}) error
	marshal   func(interface{}) ([]byte, error)
}

var (
	yamlSettings = &settingsParser{format: "yaml", unmarshal: yaml.Unmarshal, marshal: yaml.Marshal}
	jsonSettings = &settingsParser{
		format:    "json",
		unmarshal: json.Unmarshal,
		marshal: func(v interface{}) ([]byte, error) {
			return json.MarshalIndent(v, "", "  ")
		},
	}
)

// parserFor picks the parser from the file extension.
func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlSettings, nil
	case ".json":
		return jsonSettings, nil
	default:
		return nil, errors.Wrapf(ErrUnknownConfigFormat, "%q", path)
	}
}

// Unmarshal decodes b. An empty document yields an empty map.
func (p *settingsParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	var raw map[string]interface{}
	if err := p.unmarshal(b, &raw); err != nil {
		return nil, errors.Wrapf(err, "decode %s settings", p.format)
	}

	return lowerKeys(raw)
}

// Marshal encodes o in the parser's format.
func (p *settingsParser) Marshal(o map[string]interface{}) ([]byte, error) {
	return p.marshal(o)
}

// lowerKeys returns a copy of m with trimmed, lower-cased keys. Nested
// mappings decoded by yaml.v2 as map[interface{}]interface{} are converted
// with cast; two keys that differ only in case are rejected.
func lowerKeys(m map[string]interface{}) (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(m))
	for key, val := range m {
		if nested, ok := val.(map[interface{}]interface{}); ok {
			sm, err := cast.ToStringMapE(nested)
			if err != nil {
				return nil, errors.Wrapf(err, "settings key %q", key)
			}
			val = sm
		}
		if sm, ok := val.(map[string]interface{}); ok {
			lowered, err := lowerKeys(sm)
			if err != nil {
				return nil, errors.Wrapf(err, "settings key %q", key)
			}
			val = lowered
		}

		name := strings.ToLower(strings.TrimSpace(key))
		if _, dup := out[name]; dup {
			return nil, errors.Wrapf(ErrInvalidValue, "settings key %q appears twice", name)
		}
		out[name] = val
	}

	return out, nil
}
