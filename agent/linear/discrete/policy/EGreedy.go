// Package policy implements ε-greedy policies using linear function
// approximation over discrete actions
package policy

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/farl/timestep"
	"github.com/samuelfneumann/farl/utils/matutils"
	"github.com/samuelfneumann/farl/utils/matutils/encoder"
)

// EGreedy implements an ε-greedy policy using linear function
// approximation. Observations are encoded into features, and each
// action has its own block of weights plus a shared bias weight.
type EGreedy struct {
	weights *mat.VecDense
	encoder encoder.Encoder
	actions int
	epsilon float64
	seed    rand.Source // Seed for random number generation
	eval    bool
}

// NewEGreedy constructs a new EGreedy policy, where e=epislon is the
// probability with which a random action is selected. The weights
// must have length enc.VecLength()*actions+1 and are shared, not
// copied, so that a Learner can update them.
func NewEGreedy(e float64, weights *mat.VecDense, enc encoder.Encoder,
	actions int, seed uint64) (*EGreedy, error) {
	if actions < 1 {
		return nil, fmt.Errorf("newEGreedy: must have at least one action")
	}
	if want := enc.VecLength()*actions + 1; weights.Len() != want {
		return nil, fmt.Errorf("newEGreedy: incorrect number of weights"+
			"\n\twant(%v)\n\thave(%v)", want, weights.Len())
	}

	source := rand.NewSource(seed)
	return &EGreedy{
		weights: weights,
		encoder: enc,
		actions: actions,
		epsilon: e,
		seed:    source,
	}, nil
}

// SetEpsilon sets the probability with which a random action is
// selected
func (p *EGreedy) SetEpsilon(e float64) {
	p.epsilon = e
}

// Epsilon returns the probability with which a random action is
// selected
func (p *EGreedy) Epsilon() float64 {
	return p.epsilon
}

// Actions returns the number of actions
func (p *EGreedy) Actions() int {
	return p.actions
}

// ActionValues returns the value of each action in the state with
// observation obs
func (p *EGreedy) ActionValues(obs mat.Vector) *mat.VecDense {
	return ActionValues(p.weights, p.encoder.Encode(obs), p.actions)
}

// Greedy returns the first action of highest value in the state with
// observation obs
func (p *EGreedy) Greedy(obs mat.Vector) int {
	return matutils.MaxVec(p.ActionValues(obs))
}

// Sample samples an action from the ε-greedy distribution in the
// state with observation obs
func (p *EGreedy) Sample(obs mat.Vector) int {
	probs := Probabilities(p.ActionValues(obs), p.epsilon)

	// Construct a categorical distribution over actions using action
	// probabilities
	dist := distuv.NewCategorical(probs, p.seed)
	return int(dist.Rand())
}

// SelectAction selects an action from the policy. In evaluation mode,
// the greedy action is always selected.
func (p *EGreedy) SelectAction(t timestep.TimeStep) int {
	if p.eval {
		return p.Greedy(t.Observation)
	}
	return p.Sample(t.Observation)
}

// Eval sets the policy to evaluation mode
func (p *EGreedy) Eval() {
	p.eval = true
}

// Train sets the policy to training mode
func (p *EGreedy) Train() {
	p.eval = false
}

// IsEval returns whether the policy is in evaluation mode
func (p *EGreedy) IsEval() bool {
	return p.eval
}
