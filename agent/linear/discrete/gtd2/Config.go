package gtd2

import (
	"fmt"

	"github.com/samuelfneumann/farl/agent"
	"github.com/samuelfneumann/farl/environment"
	"github.com/samuelfneumann/farl/schedule"
	"github.com/samuelfneumann/farl/utils/matutils/encoder"
)

func init() {
	// Register the Config type so that it can be typed using
	// agent.TypedConfig to help with serialization/deserialization.
	agent.Register(agent.EGreedyGTD2Linear, DefaultConfig())
}

// Config represents a configuration for the GTD2 agent
type Config struct {
	// Exploration schedule parameters. For the TwoPhase schedule,
	// FinalEpsilon is the midpoint value and ExplorationFraction the
	// length of the exploration phase.
	InitialEpsilon      float64       `yaml:"exploration_initial_eps" json:"exploration_initial_eps"`
	FinalEpsilon        float64       `yaml:"exploration_final_eps" json:"exploration_final_eps"`
	ExplorationFraction float64       `yaml:"exploration_fraction" json:"exploration_fraction"`
	Schedule            schedule.Type `yaml:"exploration_schedule" json:"exploration_schedule"`

	Gamma float64 `yaml:"gamma" json:"gamma"`
	Alpha float64 `yaml:"alpha" json:"alpha"`

	// Beta is the secondary step size. If nil, Alpha / 100 is used.
	Beta *float64 `yaml:"beta,omitempty" json:"beta,omitempty"`

	Verbose               bool                   `yaml:"verbose" json:"verbose"`
	FeatureRepresentation encoder.Representation `yaml:"feature_representation" json:"feature_representation"`
}

// DefaultConfig returns the default Config
func DefaultConfig() Config {
	return Config{
		InitialEpsilon:        1.0,
		FinalEpsilon:          0.05,
		ExplorationFraction:   0.1,
		Schedule:              schedule.LinearType,
		Gamma:                 0.9,
		Alpha:                 1e-5,
		Verbose:               false,
		FeatureRepresentation: encoder.FixedSparse,
	}
}

// SecondaryStepSize returns the step size of the secondary weights
func (c Config) SecondaryStepSize() float64 {
	if c.Beta == nil {
		return c.Alpha / 100
	}
	return *c.Beta
}

// scheduleType returns the type of exploration schedule, defaulting to
// a linear schedule
func (c Config) scheduleType() schedule.Type {
	if c.Schedule == "" {
		return schedule.LinearType
	}
	return c.Schedule
}

// CreateAgent creates the agent from the Config. Agent weights are
// initialized uniformly at random with the bias weight set to zero.
func (c Config) CreateAgent(env environment.Environment,
	seed uint64) (agent.Agent, error) {
	return New(env, c, nil, seed)
}

// ValidAgent returns whether the argument agent is a valid agent for
// construction with the Config
func (c Config) ValidAgent(a agent.Agent) bool {
	_, ok := a.(*GTD2)
	return ok
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if c.ExplorationFraction <= 0 || c.ExplorationFraction > 1 {
		return fmt.Errorf("exploration fraction must be in (0, 1]")
	}
	if c.Gamma < 0 || c.Gamma > 1 {
		return fmt.Errorf("gamma must be in [0, 1]")
	}
	if c.Alpha <= 0 {
		return fmt.Errorf("alpha must be positive")
	}
	if c.SecondaryStepSize() <= 0 {
		return fmt.Errorf("beta must be positive")
	}
	if _, err := schedule.New(c.scheduleType(), 0, 0, 1); err != nil {
		return err
	}

	switch c.FeatureRepresentation {
	case encoder.FixedSparse, encoder.Tabular:
	default:
		return fmt.Errorf("unknown feature representation %v",
			c.FeatureRepresentation)
	}
	return nil
}

// Type returns the type of the agent constructed by the Config
func (c Config) Type() agent.Type {
	return agent.EGreedyGTD2Linear
}
