package gtd2

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/farl/agent/linear/discrete/policy"
	"github.com/samuelfneumann/farl/timestep"
	"github.com/samuelfneumann/farl/utils/matutils"
	"github.com/samuelfneumann/farl/utils/matutils/encoder"
)

// GTD2Learner implements the update target and weight updates for the
// linear GTD2 Q-learning algorithm.
//
// The learner keeps two weight vectors. The primary weights estimate
// action values and are shared with the agent's policy. The secondary
// weights estimate the expected TD error of each state-action pair and
// correct the primary update for off-policy learning.
type GTD2Learner struct {
	weights    *mat.VecDense // primary weights
	auxWeights *mat.VecDense // secondary weights
	encoder    encoder.Encoder
	actions    int

	alpha float64 // primary step size
	beta  float64 // secondary step size
	gamma float64 // discount

	step     timestep.TimeStep
	action   int
	nextStep timestep.TimeStep
}

// NewGTD2Learner creates a new GTD2Learner. The learner updates
// weights and auxWeights in place; both must have length
// enc.VecLength()*actions+1.
func NewGTD2Learner(weights, auxWeights *mat.VecDense, enc encoder.Encoder,
	actions int, alpha, beta, gamma float64) (*GTD2Learner, error) {
	want := enc.VecLength()*actions + 1
	if weights.Len() != want {
		return nil, fmt.Errorf("newGTD2Learner: incorrect number of weights"+
			"\n\twant(%v)\n\thave(%v)", want, weights.Len())
	}
	if auxWeights.Len() != want {
		return nil, fmt.Errorf("newGTD2Learner: incorrect number of "+
			"secondary weights\n\twant(%v)\n\thave(%v)", want,
			auxWeights.Len())
	}

	return &GTD2Learner{
		weights:    weights,
		auxWeights: auxWeights,
		encoder:    enc,
		actions:    actions,
		alpha:      alpha,
		beta:       beta,
		gamma:      gamma,
	}, nil
}

// ObserveFirst observes and records the first episodic timestep
func (g *GTD2Learner) ObserveFirst(t timestep.TimeStep) error {
	if !t.First() {
		log.Warnf("ObserveFirst() should only be called on the first "+
			"timestep (current timestep = %d)", t.Number)
	}
	g.step = timestep.TimeStep{}
	g.nextStep = t
	return nil
}

// Observe observes and records any timestep other than the first timestep
func (g *GTD2Learner) Observe(action int, nextStep timestep.TimeStep) error {
	if action < 0 || action >= g.actions {
		return fmt.Errorf("observe: illegal action %d, actions are "+
			"enumerated (0, 1, ... %d)", action, g.actions-1)
	}

	g.step = g.nextStep
	g.action = action
	g.nextStep = nextStep
	return nil
}

// Step updates the weights using the last observed transition. The
// transition ends the episode if the next timestep is Last, whether
// the episode was terminated or truncated.
func (g *GTD2Learner) Step() error {
	if g.step.Observation == nil || g.nextStep.Observation == nil {
		return fmt.Errorf("step: no transition observed")
	}

	g.Update(timestep.Transition{
		State:     g.encoder.Encode(g.step.Observation),
		Action:    g.action,
		Reward:    g.nextStep.Reward,
		NextState: g.encoder.Encode(g.nextStep.Observation),
		Last:      g.nextStep.Last(),
	})
	return nil
}

// EndEpisode performs cleanup at the end of an episode
func (g *GTD2Learner) EndEpisode() {
	g.step = timestep.TimeStep{}
	g.nextStep = timestep.TimeStep{}
}

// tdError returns the TD error of a transition of encoded features,
// together with the state-action features of the transition and the
// greedy state-action features of the next state. The greedy features
// are nil if the transition ended the episode.
func (g *GTD2Learner) tdError(t timestep.Transition) (float64, *mat.VecDense,
	*mat.VecDense) {
	x := policy.ActionFeatures(t.State, t.Action, g.actions)
	currentEstimate := mat.Dot(x, g.weights)

	if t.Last {
		return t.Reward - currentEstimate, x, nil
	}

	nextValues := policy.ActionValues(g.weights, t.NextState, g.actions)
	maxAction := matutils.MaxVec(nextValues)
	maxXp := policy.ActionFeatures(t.NextState, maxAction, g.actions)

	target := t.Reward + g.gamma*mat.Dot(maxXp, g.weights)
	return target - currentEstimate, x, maxXp
}

// TdError returns the TD error on a transition of encoded features
// without updating any weights
func (g *GTD2Learner) TdError(t timestep.Transition) float64 {
	delta, _, _ := g.tdError(t)
	return delta
}

// Update applies the GTD2 update to both weight vectors using a
// transition of encoded features and returns the TD error of the
// transition before the update.
//
// If the transition did not end the episode:
//
//	w ← w + α(δx - γ(x⋅h)x')
//
// otherwise:
//
//	w ← w + αδx
//
// and in both cases:
//
//	h ← h + β(δ - x⋅h)x
//
// where x' are the state-action features of the greedy action in the
// next state.
func (g *GTD2Learner) Update(t timestep.Transition) float64 {
	delta, x, maxXp := g.tdError(t)
	auxEstimate := mat.Dot(x, g.auxWeights)

	if t.Last {
		g.weights.AddScaledVec(g.weights, g.alpha*delta, x)
	} else {
		direction := mat.NewVecDense(x.Len(), nil)
		direction.ScaleVec(delta, x)
		direction.AddScaledVec(direction, -g.gamma*auxEstimate, maxXp)
		g.weights.AddScaledVec(g.weights, g.alpha, direction)
	}

	g.auxWeights.AddScaledVec(g.auxWeights, g.beta*(delta-auxEstimate), x)
	return delta
}
