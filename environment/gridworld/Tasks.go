package gridworld

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/farl/environment"
	"github.com/samuelfneumann/farl/timestep"
)

// Goal represents the task of reaching goal states in a GridWorld.
// Episodes terminate when a goal is reached, and are truncated after
// a cutoff number of steps.
type Goal struct {
	environment.Starter
	environment.Ender
	goals          [][2]int // (x, y) coordinates of goal states
	timeStepReward float64
	goalReward     float64
}

// NewGoal creates and returns a new goal task with goals at positions
// (x[i], y[i]), given that the gridworld has r rows and c columns.
// Transitions into a goal are rewarded with gr, and all other
// transitions with tr. If cutoff is positive, episodes are truncated
// after cutoff steps.
func NewGoal(s environment.Starter, x, y []int, r, c, cutoff int, tr,
	gr float64) (*Goal, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("newGoal: x length (%d) != y length (%d)",
			len(x), len(y))
	}
	if len(x) == 0 {
		return nil, fmt.Errorf("newGoal: no goals given")
	}

	goals := make([][2]int, len(x))
	for i := range x {
		// Ensure that the goal is within the proper bounds
		if x[i] < 0 || x[i] >= c {
			return nil, fmt.Errorf("newGoal: x[%d] = %d outside [0, %d)",
				i, x[i], c)
		} else if y[i] < 0 || y[i] >= r {
			return nil, fmt.Errorf("newGoal: y[%d] = %d outside [0, %d)",
				i, y[i], r)
		}
		goals[i] = [2]int{x[i], y[i]}
	}

	g := &Goal{
		Starter:        s,
		goals:          goals,
		timeStepReward: tr,
		goalReward:     gr,
	}
	g.Ender = environment.Enders{
		environment.NewFunctionEnder(g.AtGoal,
			timestep.TerminalStateReached),
		environment.NewStepLimit(cutoff),
	}
	return g, nil
}

// GetReward returns the reward for a transition
func (g *Goal) GetReward(state mat.Vector, action int,
	nextState mat.Vector) float64 {
	if g.AtGoal(nextState) {
		return g.goalReward
	}
	return g.timeStepReward
}

// AtGoal represents if the goal state has been reached or not
func (g *Goal) AtGoal(state mat.Vector) bool {
	return g.isGoal(int(state.AtVec(0)), int(state.AtVec(1)))
}

// isGoal returns whether (x, y) is a goal
func (g *Goal) isGoal(x, y int) bool {
	for _, goal := range g.goals {
		if goal[0] == x && goal[1] == y {
			return true
		}
	}
	return false
}

// String returns the Goal as a string
func (g *Goal) String() string {
	goals := make([]string, len(g.goals))
	for i, goal := range g.goals {
		goals[i] = fmt.Sprintf("(%d, %d)", goal[0], goal[1])
	}
	return strings.Join(goals, " ")
}

// Min returns the minimum reward attainable in the Task
func (g *Goal) Min() float64 {
	rewards := []float64{g.timeStepReward, g.goalReward}
	return floats.Min(rewards)
}

// Max returns the maximum reward attainable in the Task
func (g *Goal) Max() float64 {
	rewards := []float64{g.timeStepReward, g.goalReward}
	return floats.Max(rewards)
}
