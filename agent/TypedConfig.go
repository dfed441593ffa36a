package agent

import (
	"encoding/json"
	"reflect"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// TypedConfig implements functionality for typing a Config. In this
// way, a Config can explicitly have its type stored so that when
// deserializing the Config, we can deserialize it into its concrete
// type without knowing beforehand or declaring beforehand a variable
// of its concrete type.
//
// In YAML, a TypedConfig looks like:
//
//	type: EGreedyGTD2-Linear
//	config:
//	  alpha: 0.01
//	  feature_representation: tabular
type TypedConfig struct {
	Type
	Config
}

// NewTypedConfig types the argument Config and returns it as a
// TypedConfig which explicitly holds its Type.
func NewTypedConfig(c Config) TypedConfig {
	return TypedConfig{Type: c.Type(), Config: c}
}

// UnmarshalYAML implements the yaml.Unmarshaler interface
func (t *TypedConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Type   Type      `yaml:"type"`
		Config yaml.Node `yaml:"config"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	config, err := newConfig(raw.Type)
	if err != nil {
		return errors.Wrap(err, "unmarshalYAML")
	}

	if !raw.Config.IsZero() {
		if err := raw.Config.Decode(config); err != nil {
			return errors.Wrapf(err, "unmarshalYAML: could not decode %v "+
				"config", raw.Type)
		}
	}

	return t.set(raw.Type, config)
}

// UnmarshalJSON implements the json.Unmarshaler interface
func (t *TypedConfig) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type   Type            `json:"type"`
		Config json.RawMessage `json:"config"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	config, err := newConfig(raw.Type)
	if err != nil {
		return errors.Wrap(err, "unmarshalJSON")
	}

	if len(raw.Config) > 0 {
		if err := json.Unmarshal(raw.Config, config); err != nil {
			return errors.Wrapf(err, "unmarshalJSON: could not decode %v "+
				"config", raw.Type)
		}
	}

	return t.set(raw.Type, config)
}

// MarshalYAML implements the yaml.Marshaler interface
func (t TypedConfig) MarshalYAML() (interface{}, error) {
	return struct {
		Type   Type   `yaml:"type"`
		Config Config `yaml:"config"`
	}{t.Type, t.Config}, nil
}

// MarshalJSON implements the json.Marshaler interface
func (t TypedConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type   Type   `json:"type"`
		Config Config `json:"config"`
	}{t.Type, t.Config})
}

// set stores the concrete value pointed to by config
func (t *TypedConfig) set(agentType Type, config interface{}) error {
	concrete, ok := reflect.ValueOf(config).Elem().Interface().(Config)
	if !ok {
		return errors.Errorf("set: registered type %v is not a Config",
			agentType)
	}

	t.Type = agentType
	t.Config = concrete
	return nil
}
