package gtd2

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/farl/environment"
)

// State is the persisted state of a GTD2 agent. The environment and
// the exploration schedule are not part of the State: the environment
// is supplied again on Load, and the schedule is rebuilt from the
// Config.
type State struct {
	W, H     []float64
	Features int
	Actions  int
	NVec     []int
	Config   Config
	Epsilon  float64 // current exploration rate
	Seed     uint64
}

// State returns the current State of the agent. The returned State
// shares no memory with the agent.
func (g *GTD2) State() State {
	w, h := g.Weights()
	nvec := make([]int, len(g.nvec))
	copy(nvec, g.nvec)

	return State{
		W:        w.RawVector().Data,
		H:        h.RawVector().Data,
		Features: g.features,
		Actions:  g.Actions(),
		NVec:     nvec,
		Config:   g.config,
		Epsilon:  g.Epsilon(),
		Seed:     g.seed,
	}
}

// GobEncode implements the gob.GobEncoder interface
func (g *GTD2) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(g.State()); err != nil {
		return nil, errors.Wrap(err, "gobEncode")
	}
	return buf.Bytes(), nil
}

// GobDecode implements the gob.GobDecoder interface. The agent must
// have been constructed with New for an environment of the same shape
// as the one the encoded agent was trained on.
func (g *GTD2) GobDecode(data []byte) error {
	var state State
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&state); err != nil {
		return errors.Wrap(err, "gobDecode")
	}
	return g.restore(state)
}

// Save saves the agent to a file at path
func (g *GTD2) Save(path string) error {
	data, err := g.GobEncode()
	if err != nil {
		return errors.Wrap(err, "save")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "save")
	}
	return nil
}

// Load loads an agent saved at path, attaching it to env. The agent is
// first constructed for env with the saved Config, and then its
// weights and exploration rate are overwritten with the saved values.
// An error is returned if env does not have the observation and action
// spaces the agent was saved with.
func Load(path string, env environment.Environment) (*GTD2, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "load")
	}

	var state State
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&state); err != nil {
		return nil, errors.Wrapf(err, "load: could not decode %v", path)
	}

	g := &GTD2{env: env}
	if err := g.restore(state); err != nil {
		return nil, errors.Wrap(err, "load")
	}
	return g, nil
}

// restore rebuilds the agent for its environment from the Config in
// state, then overwrites the new weights and exploration rate with
// those of state.
func (g *GTD2) restore(state State) error {
	restored, err := New(g.env, state.Config, nil, state.Seed)
	if err != nil {
		return err
	}

	if !equalInts(state.NVec, restored.nvec) {
		return fmt.Errorf("restore: observation space mismatch"+
			"\n\twant(%v)\n\thave(%v)", state.NVec, restored.nvec)
	}
	if state.Actions != restored.Actions() ||
		state.Features != restored.features {
		return fmt.Errorf("restore: environment has %d features and %d "+
			"actions but state has %d features and %d actions",
			restored.features, restored.Actions(), state.Features,
			state.Actions)
	}

	n := restored.weights.Len()
	if len(state.W) != n || len(state.H) != n {
		return fmt.Errorf("restore: incorrect number of weights"+
			"\n\twant(%v)\n\thave(%v, %v)", n, len(state.W), len(state.H))
	}

	restored.weights.CopyVec(mat.NewVecDense(n, state.W))
	restored.auxWeights.CopyVec(mat.NewVecDense(n, state.H))
	restored.SetEpsilon(state.Epsilon)
	if g.EGreedy != nil && g.IsEval() {
		restored.Eval()
	}

	*g = *restored
	return nil
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
