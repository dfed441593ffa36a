// Package experiment implements functionality for running an experiment
package experiment

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/samuelfneumann/farl/agent"
	"github.com/samuelfneumann/farl/environment"
	"github.com/samuelfneumann/farl/environment/envconfig"
)

// Experiment outlines structs that can run experiments. The Run()
// method will run all episodes until the maximum timestep limit is
// reached. The RunEpisode() function will run a single episode.
//
// Experiments send each TimeStep to their Trackers, which determine
// which data generated during the experiment is cached. Save() then
// saves all cached data to disk. This is usually performed after an
// experiment has been run.
type Experiment interface {
	Run() (Stats, error)
	RunEpisode() (bool, error) // Returns whether the budget was reached
	Save() error
}

// DefaultLogInterval is the number of episodes between training
// summaries if a Config does not set one
const DefaultLogInterval = 100

// Config represents a configuration of an experiment.
type Config struct {
	TotalTimesteps int               `yaml:"total_timesteps"`
	LogInterval    int               `yaml:"log_interval"`
	LogPath        string            `yaml:"log_path"`
	Environment    envconfig.Config  `yaml:"environment"`
	Agent          agent.TypedConfig `yaml:"agent"`
}

// LoadConfig reads a YAML experiment Config from a file
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "loadConfig")
	}

	c := Config{
		LogInterval: DefaultLogInterval,
		Environment: envconfig.Default(),
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, errors.Wrapf(err, "loadConfig: could not decode %v",
			path)
	}
	return c, nil
}

// Validate returns an error describing whether or not the Config is
// valid
func (c Config) Validate() error {
	if c.TotalTimesteps <= 0 {
		return fmt.Errorf("validate: total timesteps must be positive")
	}
	if c.LogInterval <= 0 {
		return fmt.Errorf("validate: log interval must be positive")
	}
	if c.Agent.Config == nil {
		return fmt.Errorf("validate: no agent configured")
	}
	if err := c.Agent.Validate(); err != nil {
		return errors.Wrap(err, "validate: invalid agent")
	}
	return nil
}

// Create creates the environment and agent described by the Config
func (c Config) Create(seed uint64) (environment.Environment, agent.Agent,
	error) {
	if err := c.Validate(); err != nil {
		return nil, nil, errors.Wrap(err, "create")
	}

	env, err := c.Environment.Create(seed)
	if err != nil {
		return nil, nil, errors.Wrap(err, "create: could not create "+
			"environment")
	}

	a, err := c.Agent.CreateAgent(env, seed)
	if err != nil {
		return nil, nil, errors.Wrap(err, "create: could not create agent")
	}
	return env, a, nil
}
