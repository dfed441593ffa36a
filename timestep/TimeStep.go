// Package timestep implements timesteps of the agent-environment interaction
package timestep

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// StepType denotes the type of step that a TimeStep can be, either  first
// environmental step, a middle step, or a last step
type StepType int

const (
	First StepType = iota
	Mid
	Last
)

func (s StepType) String() string {
	switch s {
	case First:
		return "First"
	case Last:
		return "Last"
	default:
		return "Mid"
	}
}

// EndType describes the way in which an episode ended
type EndType int

const (
	// TerminalStateReached means the environment entered a terminal
	// state. No bootstrapping happens past such a step.
	TerminalStateReached EndType = iota

	// Timeout means the episode was cut off, e.g. by a step limit.
	Timeout

	// Nil is the EndType of any step which is not Last
	Nil
)

func (e EndType) String() string {
	switch e {
	case TerminalStateReached:
		return "TerminalStateReached"
	case Timeout:
		return "Timeout"
	default:
		return "Nil"
	}
}

// TimeStep packages together a single timestep in an environment
type TimeStep struct {
	StepType
	Reward      float64
	Observation mat.Vector
	Number      int
	endType     EndType
}

// New returns a new TimeStep. A Last TimeStep created this way ends in
// a terminal state until SetEnd says otherwise.
func New(t StepType, r float64, o mat.Vector, n int) TimeStep {
	end := Nil
	if t == Last {
		end = TerminalStateReached
	}
	return TimeStep{StepType: t, Reward: r, Observation: o, Number: n,
		endType: end}
}

// First returns whether a TimeStep is the first in an environment
func (t *TimeStep) First() bool {
	return t.StepType == First
}

// Mid returns whether a TimeStep is a middle step in an environment
func (t *TimeStep) Mid() bool {
	return t.StepType == Mid
}

// Last returns whether a TimeStep is the last step in an episode,
// whether by termination or truncation
func (t *TimeStep) Last() bool {
	return t.StepType == Last
}

// SetEnd sets the way in which the episode ended. It has no effect
// on TimeSteps which are not Last.
func (t *TimeStep) SetEnd(e EndType) {
	if t.Last() {
		t.endType = e
	}
}

// EndType returns the way in which the episode ended, or Nil if the
// TimeStep is not Last. Last steps without an explicit end are
// considered terminal.
func (t *TimeStep) EndType() EndType {
	if !t.Last() {
		return Nil
	}
	if t.endType == Nil {
		return TerminalStateReached
	}
	return t.endType
}

// Terminated returns whether the episode ended in a terminal state
func (t *TimeStep) Terminated() bool {
	return t.EndType() == TerminalStateReached
}

// Truncated returns whether the episode was cut off before reaching a
// terminal state
func (t *TimeStep) Truncated() bool {
	return t.EndType() == Timeout
}

func (t TimeStep) String() string {
	str := "TimeStep | Type: %v  |  Reward:  %.2f  |  End: %v  |  " +
		"Step Number:  %v"

	return fmt.Sprintf(str, t.StepType, t.Reward, t.EndType(), t.Number)
}

// Transition is a single (s, a, r, s') tuple. State and NextState hold
// feature vectors; Last reports whether NextState ended the episode.
type Transition struct {
	State     mat.Vector
	Action    int
	Reward    float64
	NextState mat.Vector
	Last      bool
}
