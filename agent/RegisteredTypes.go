package agent

import (
	"fmt"
	"reflect"
)

// Type represents a specific type of an agent Config.
// Config's with this type can create Agents of the corresponding type.
//
// For example, if a Config has Type EGreedyGTD2Linear, then the Config
// is used to construct linear GTD2 agents using ε-greedy policies.
type Type string

const (
	// Linear methods
	EGreedyGTD2Linear Type = "EGreedyGTD2-Linear"
)

// Registered types with the package. Once a Type has been registered
// with this map, a TypedConfig with that type can be created.
//
// No Type's are registered wtih this package upon initialization.
// Each separate package is in charge of registering its Type with
// the package separately to avoid circular imports.
var registeredTypes map[Type]Config

func init() {
	registeredTypes = make(map[Type]Config)
}

// Register registers an agent's Type with a concrete Config value so
// that upon deserialization of a TypedConfig, Configs of type
// agentType are deserialized into the concrete type of the argument
// Config. Fields missing from the serialized Config keep the values
// they have in the argument Config, so defaults should be registered.
//
// Note that each package is required to register its own Config's
// with an agentType separately. This package registers no agentTypes
// with any Config's. This is to avoid circular imports.
func Register(agentType Type, defaults Config) {
	registeredTypes[agentType] = defaults
}

// newConfig returns a pointer to a copy of the default Config
// registered with agentType
func newConfig(agentType Type) (interface{}, error) {
	defaults, ok := registeredTypes[agentType]
	if !ok {
		return nil, fmt.Errorf("no agent type %v registered", agentType)
	}

	config := reflect.New(reflect.TypeOf(defaults))
	config.Elem().Set(reflect.ValueOf(defaults))
	return config.Interface(), nil
}
