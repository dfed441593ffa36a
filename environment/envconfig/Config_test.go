package envconfig

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestCreateDefault(t *testing.T) {
	e, err := Default().Create(1)
	if err != nil {
		t.Fatal(err)
	}

	nvec, err := e.ObservationSpec().NVec()
	if err != nil || len(nvec) != 2 || nvec[0] != 5 || nvec[1] != 5 {
		t.Errorf("observation nvec: want [5 5], have %v (%v)", nvec, err)
	}

	step := e.CurrentTimeStep()
	if !step.First() || step.Observation.AtVec(0) != 0 ||
		step.Observation.AtVec(1) != 0 {
		t.Errorf("first step should start at (0, 0), have %v", step)
	}
}

func TestCreateFromYAML(t *testing.T) {
	data := []byte(`
name: GridWorld
task: Goal
rows: 2
cols: 3
episode_cutoff: 10
goal_x: [0]
goal_y: [1]
step_reward: -1
goal_reward: 5
`)

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		t.Fatal(err)
	}
	if len(c.Start) != 0 {
		t.Fatalf("start should be empty, have %v", c.Start)
	}

	e, err := c.Create(7)
	if err != nil {
		t.Fatal(err)
	}
	nvec, _ := e.ObservationSpec().NVec()
	if nvec[0] != 3 || nvec[1] != 2 {
		t.Errorf("observation nvec: want [3 2], have %v", nvec)
	}
}

func TestCreateErrors(t *testing.T) {
	c := Default()
	c.Environment = "MountainCar"
	if _, err := c.Create(1); err == nil {
		t.Error("expected error for unknown environment")
	}

	c = Default()
	c.Task = "SwingUp"
	if _, err := c.Create(1); err == nil {
		t.Error("expected error for unknown task")
	}

	c = Default()
	c.Start = []int{1}
	if _, err := c.Create(1); err == nil {
		t.Error("expected error for malformed start")
	}
}
