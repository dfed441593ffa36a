// Package environment outlines the interfaces and sturcts needed to implement
// concrete environments
package environment

import (
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/farl/timestep"
)

// Starter implements a distribution of starting states and samples starting
// states for environments
type Starter interface {
	Start() mat.Vector
}

// Ender determines when episodes end. If End returns true, it will
// have changed the argument TimeStep to be Last, with the appropriate
// EndType.
type Ender interface {
	End(*timestep.TimeStep) bool
}

// Task implements the reward scheme for taking actions in some environment
type Task interface {
	Starter
	Ender
	GetReward(state mat.Vector, action int, nextState mat.Vector) float64
	AtGoal(state mat.Vector) bool
}

// Environment implements a simualted environment with discrete actions.
//
// Actions are enumerated (0, 1, 2, ... N-1). Reset must be called to
// start each episode. Step returns the next TimeStep, which is Last if
// the episode terminated or was truncated. Any error returned by an
// Environment is fatal to the episode.
type Environment interface {
	Reset() (timestep.TimeStep, error)
	Step(action int) (timestep.TimeStep, error)
	CurrentTimeStep() timestep.TimeStep
	ObservationSpec() Spec
	ActionSpec() Spec
}
