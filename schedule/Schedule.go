// Package schedule implements schedules which map the fraction of
// training remaining to a value, such as the exploration rate of an
// ε-greedy policy.
//
// Progress remaining is 1.0 at the start of training and 0.0 at the
// end. Schedules hold no state and can be rebuilt from their
// parameters at any time with New.
package schedule

import (
	"fmt"
)

// Schedule maps the fraction of training remaining to a value
type Schedule func(progressRemaining float64) float64

// Type is a kind of Schedule which can be rebuilt by New
type Type string

const (
	LinearType   Type = "Linear"
	TwoPhaseType Type = "TwoPhase"
)

// Linear returns a Schedule which interpolates linearly between start,
// when progressRemaining is 1, and end, once a fraction endFraction of
// training has elapsed. After that the Schedule stays at end.
//
// No guard is placed on endFraction. If endFraction is 0, the Schedule
// returns NaN at the start of training.
func Linear(start, end, endFraction float64) Schedule {
	return func(progressRemaining float64) float64 {
		elapsed := 1 - progressRemaining
		if elapsed > endFraction {
			return end
		}
		return start + elapsed*(end-start)/endFraction
	}
}

// TwoPhase returns a Schedule with an exploration phase and a decay
// phase. During the first midFraction of training, values ramp
// linearly from start to 2*mid. Over the rest of training, values
// decay linearly from 2*mid towards 1e-6.
func TwoPhase(start, mid, midFraction float64) Schedule {
	explore := Linear(start, 2*mid, midFraction)
	decay := Linear(2*mid, 1e-6, 1-midFraction)

	return func(progressRemaining float64) float64 {
		if 1-progressRemaining > midFraction {
			return decay(progressRemaining + midFraction)
		}
		return explore(progressRemaining)
	}
}

// New returns a new Schedule of type t. For Linear schedules, end is
// the final value and fraction the fraction of training over which
// values are annealed. For TwoPhase schedules, end is the midpoint
// value and fraction the length of the exploration phase.
func New(t Type, start, end, fraction float64) (Schedule, error) {
	switch t {
	case LinearType:
		return Linear(start, end, fraction), nil

	case TwoPhaseType:
		return TwoPhase(start, end, fraction), nil
	}

	return nil, fmt.Errorf("new: no such schedule type %v", t)
}
