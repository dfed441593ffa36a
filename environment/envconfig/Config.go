// Package envconfig provides configuration structs for configuring
// environments with default parameters and tasks. Environment
// configurations in this package are YAML and JSON serializable.
package envconfig

import (
	"fmt"

	env "github.com/samuelfneumann/farl/environment"
	"github.com/samuelfneumann/farl/environment/gridworld"
)

// EnvName stores the name of environments that can be configured with
// this package
type EnvName string

// Environments available for configuration
const (
	GridWorld EnvName = "GridWorld"
)

// TaskName stores the tasks that can be configured with this package.
// Note that not all tasks can be used with all environments. The tasks
// that can be used with each environment are as follows:
//
//	Environment			Task
//	GridWorld			Goal
type TaskName string

// Tasks available for configuration
const (
	Goal TaskName = "Goal"
)

// Config implements a specific configuration of a specific environment
// and specific task. Not all environments can have all tasks.
type Config struct {
	Environment   EnvName  `yaml:"name" json:"name"`
	Task          TaskName `yaml:"task" json:"task"`
	Rows          int      `yaml:"rows" json:"rows"`
	Cols          int      `yaml:"cols" json:"cols"`
	EpisodeCutoff int      `yaml:"episode_cutoff" json:"episode_cutoff"`

	// Start is the (x, y) starting position. If empty, episodes start
	// uniformly at random.
	Start []int `yaml:"start,omitempty" json:"start,omitempty"`

	// GoalX and GoalY are the coordinates of each goal. If empty, the
	// top-right cell is the goal.
	GoalX []int `yaml:"goal_x,omitempty" json:"goal_x,omitempty"`
	GoalY []int `yaml:"goal_y,omitempty" json:"goal_y,omitempty"`

	StepReward float64 `yaml:"step_reward" json:"step_reward"`
	GoalReward float64 `yaml:"goal_reward" json:"goal_reward"`
}

// Default returns the default environment Config, a 5 x 5 GridWorld
// starting in the bottom-left cell with a goal in the top-right cell
func Default() Config {
	return Config{
		Environment:   GridWorld,
		Task:          Goal,
		Rows:          5,
		Cols:          5,
		EpisodeCutoff: 100,
		Start:         []int{0, 0},
		StepReward:    -1,
		GoalReward:    0,
	}
}

// Create returns the environment described by the Config
func (c Config) Create(seed uint64) (env.Environment, error) {
	switch c.Environment {
	case GridWorld:
		return CreateGridWorld(c, seed)
	}

	return nil, fmt.Errorf("create: cannot create environment %v, no such "+
		"environment", c.Environment)
}

// CreateGridWorld is a factory for creating the GridWorld environment
// from a Config
func CreateGridWorld(c Config, seed uint64) (env.Environment, error) {
	var s env.Starter
	switch len(c.Start) {
	case 0:
		s = gridworld.NewRandomStart(c.Rows, c.Cols, seed)

	case 2:
		var err error
		s, err = gridworld.NewSingleStart(c.Start[0], c.Start[1], c.Rows,
			c.Cols)
		if err != nil {
			return nil, fmt.Errorf("createGridWorld: %v", err)
		}

	default:
		return nil, fmt.Errorf("createGridWorld: start must be (x, y) "+
			"coordinates, have %v", c.Start)
	}

	goalX, goalY := c.GoalX, c.GoalY
	if len(goalX) == 0 && len(goalY) == 0 {
		goalX, goalY = []int{c.Cols - 1}, []int{c.Rows - 1}
	}

	var task env.Task
	switch c.Task {
	case Goal:
		var err error
		task, err = gridworld.NewGoal(s, goalX, goalY, c.Rows, c.Cols,
			c.EpisodeCutoff, c.StepReward, c.GoalReward)
		if err != nil {
			return nil, fmt.Errorf("createGridWorld: %v", err)
		}

	default:
		return nil, fmt.Errorf("createGridWorld: GridWorld environment "+
			"has no task %v", c.Task)
	}

	g, _, err := gridworld.New(c.Rows, c.Cols, task)
	if err != nil {
		return nil, fmt.Errorf("createGridWorld: %v", err)
	}
	return g, nil
}
