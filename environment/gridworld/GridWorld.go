// Package gridworld implements 2D gridworld environments
//
// Observations are the (x, y) coordinates of the agent, so the
// observation space is multi-dimensional discrete with cols values of
// x and rows values of y. There are four actions: Left, Right, Up and
// Down. Moves into a wall leave the agent in place.
package gridworld

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/farl/environment"
	"github.com/samuelfneumann/farl/timestep"
	"github.com/samuelfneumann/farl/utils/intutils"
)

// Actions in a GridWorld
const (
	Left int = iota
	Right
	Up
	Down
	NumActions
)

// GridWorld represents a gridworld environment. Position (0, 0) is the
// bottom-left cell.
type GridWorld struct {
	environment.Task
	rows, cols  int
	x, y        int // current position
	currentStep timestep.TimeStep
}

// New creates a new gridworld with r rows and c columns and task t.
// The first timestep of the environment is also returned.
func New(r, c int, t environment.Task) (*GridWorld, timestep.TimeStep,
	error) {
	if r < 1 || c < 1 {
		return nil, timestep.TimeStep{}, fmt.Errorf("new: gridworld must "+
			"have at least one row and column, have (%d, %d)", r, c)
	}

	g := &GridWorld{Task: t, rows: r, cols: c}
	step, err := g.Reset()
	if err != nil {
		return nil, timestep.TimeStep{}, fmt.Errorf("new: %v", err)
	}
	return g, step, nil
}

// Dims gets the rows and columns of the GridWorld
func (g *GridWorld) Dims() (r, c int) {
	return g.rows, g.cols
}

// Coordinates returns the current (x, y) position of the agent
func (g *GridWorld) Coordinates() (int, int) {
	return g.x, g.y
}

// Reset resets the environment to a starting state drawn from the
// Task's Starter and returns the first timestep of the new episode
func (g *GridWorld) Reset() (timestep.TimeStep, error) {
	start := g.Start()
	if start.Len() != 2 {
		return timestep.TimeStep{}, fmt.Errorf("reset: starting states "+
			"must be (x, y) coordinates, have %v values", start.Len())
	}

	x, y := int(start.AtVec(0)), int(start.AtVec(1))
	if !g.inBounds(x, y) {
		return timestep.TimeStep{}, fmt.Errorf("reset: starting state "+
			"(%d, %d) outside of (%d, %d) grid", x, y, g.cols, g.rows)
	}
	g.x, g.y = x, y

	g.currentStep = timestep.New(timestep.First, 0, g.observation(), 0)
	return g.currentStep, nil
}

// Step takes an action in the environment and returns the next
// timestep. An error is returned if the action is not legal or if the
// episode has already ended.
func (g *GridWorld) Step(action int) (timestep.TimeStep, error) {
	if action < 0 || action >= NumActions {
		return timestep.TimeStep{}, fmt.Errorf("step: illegal action %d",
			action)
	}
	if g.currentStep.Last() {
		return timestep.TimeStep{}, fmt.Errorf("step: episode has ended, " +
			"call Reset() to start a new episode")
	}

	state := g.observation()
	g.x, g.y = g.move(g.x, g.y, action)
	nextState := g.observation()

	reward := g.GetReward(state, action, nextState)
	number := g.currentStep.Number + 1
	step := timestep.New(timestep.Mid, reward, nextState, number)

	// Check if this transition ends the episode
	g.End(&step)

	g.currentStep = step
	return step, nil
}

// CurrentTimeStep returns the last timestep of the environment
func (g *GridWorld) CurrentTimeStep() timestep.TimeStep {
	return g.currentStep
}

// ObservationSpec returns the observation specification of the
// environment, the (x, y) position of the agent
func (g *GridWorld) ObservationSpec() environment.Spec {
	return environment.NewMultiDiscreteSpec([]int{g.cols, g.rows},
		environment.Observation)
}

// ActionSpec returns the action specification of the environment
func (g *GridWorld) ActionSpec() environment.Spec {
	return environment.NewDiscreteSpec(NumActions, environment.Action)
}

// String returns a string representation of the GridWorld
func (g *GridWorld) String() string {
	str := "GridWorld | At: (%d, %d)  |  Goal: %v  |  Bounds: (%d, %d)"
	return fmt.Sprintf(str, g.x, g.y, g.Task, g.cols, g.rows)
}

// move returns the position reached by taking action at (x, y)
func (g *GridWorld) move(x, y, action int) (int, int) {
	switch action {
	case Left:
		x--
	case Right:
		x++
	case Up:
		y++
	case Down:
		y--
	}
	return intutils.Clip(x, 0, g.cols-1), intutils.Clip(y, 0, g.rows-1)
}

func (g *GridWorld) inBounds(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

func (g *GridWorld) observation() *mat.VecDense {
	return mat.NewVecDense(2, []float64{float64(g.x), float64(g.y)})
}
