package config

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// VerifyAgainstEmbeddedSchema checks the config against the embedded JSON schema:
// every section the schema declares must be present and scalar values must respect
// declared minimum and maximum.
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	var schema jsonschema.Schema
	if err := json.Unmarshal([]byte(embeddedSchema), &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	var configMap map[string]any
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	root := resolve(&schema, &schema)
	if root == nil || root.Properties == nil {
		return fmt.Errorf("embedded schema has no properties")
	}
	return verifyObject(&schema, root, configMap, "")
}

// verifyObject walks schema properties and compares them with the config values
func verifyObject(top, s *jsonschema.Schema, values map[string]any, prefix string) error {
	for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
		name, prop := pair.Key, resolve(top, pair.Value)
		path := prefix + name
		val, ok := values[name]
		if !ok {
			return fmt.Errorf("%s is missing", path)
		}
		if prop == nil {
			continue
		}
		if prop.Properties != nil {
			sub, ok := val.(map[string]any)
			if !ok {
				return fmt.Errorf("%s must be an object", path)
			}
			if err := verifyObject(top, prop, sub, path+"."); err != nil {
				return err
			}
			continue
		}
		num, ok := val.(float64)
		if !ok {
			continue
		}
		if prop.Minimum != "" {
			if lo, err := prop.Minimum.Float64(); err == nil && num < lo {
				return fmt.Errorf("%s must be at least %v", path, lo)
			}
		}
		if prop.Maximum != "" {
			if hi, err := prop.Maximum.Float64(); err == nil && num > hi {
				return fmt.Errorf("%s must be at most %v", path, hi)
			}
		}
	}
	return nil
}

// resolve follows local "#/$defs/..." references
func resolve(top, s *jsonschema.Schema) *jsonschema.Schema {
	for i := 0; s != nil && s.Ref != "" && i < 10; i++ {
		const prefix = "#/$defs/"
		if len(s.Ref) <= len(prefix) || s.Ref[:len(prefix)] != prefix {
			return s
		}
		s = top.Definitions[s.Ref[len(prefix):]]
	}
	return s
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() (*jsonschema.Schema, error) {
	return jsonschema.Reflect(&Config{}), nil
}
