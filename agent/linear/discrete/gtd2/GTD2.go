// Package gtd2 implements linear Q-learning with the GTD2 update and
// an annealed ε-greedy behaviour policy.
//
// Observations must be multi-dimensional discrete vectors, which are
// encoded with either a fixed sparse or a tabular representation.
// Each action has its own block of weights, and all actions share a
// single bias weight.
package gtd2

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/farl/agent"
	"github.com/samuelfneumann/farl/agent/linear/discrete/policy"
	"github.com/samuelfneumann/farl/environment"
	"github.com/samuelfneumann/farl/experiment"
	"github.com/samuelfneumann/farl/schedule"
	"github.com/samuelfneumann/farl/utils/matutils/encoder"
	"github.com/samuelfneumann/farl/utils/matutils/initializers/weights"
)

// GTD2 implements the online linear GTD2 Q-learning algorithm. Actions
// selected by this algorithm will always be enumerated as
// (0, 1, 2, ... N-1) where N is the number of actions.
type GTD2 struct {
	*GTD2Learner
	*policy.EGreedy // Behaviour

	env      environment.Environment
	config   Config
	schedule schedule.Schedule
	nvec     []int
	features int
	seed     uint64
}

// New creates a new GTD2 agent for an environment with
// multi-dimensional discrete observations and a single discrete
// action dimension.
//
// Both weight vectors are initialized using init, after which the bias
// weight is set to zero. If init is nil, weights are drawn uniformly
// from [-1/sqrt(n), 1/sqrt(n)] where n is the number of weights.
//
// A *agent.ConfigError is returned if the environment's observation or
// action space cannot be used, or if the feature representation or
// exploration schedule is unknown.
func New(env environment.Environment, c Config, init weights.Initializer,
	seed uint64) (*GTD2, error) {
	nvec, err := env.ObservationSpec().NVec()
	if err != nil {
		return nil, agent.NewConfigError("new",
			errors.Wrap(err, "observations must be multi-discrete"))
	}

	actions, err := env.ActionSpec().N()
	if err != nil {
		return nil, agent.NewConfigError("new",
			errors.Wrap(err, "actions must be single discrete"))
	}

	enc, err := encoder.New(c.FeatureRepresentation, nvec)
	if err != nil {
		return nil, agent.NewConfigError("new", err)
	}

	eps, err := schedule.New(c.scheduleType(), c.InitialEpsilon,
		c.FinalEpsilon, c.ExplorationFraction)
	if err != nil {
		return nil, agent.NewConfigError("new", err)
	}

	// Create the weights, with the bias in the last position
	features := enc.VecLength()
	n := features*actions + 1
	if init == nil {
		init = weights.NewFanIn(n, seed)
	}
	w := mat.NewVecDense(n, nil)
	h := mat.NewVecDense(n, nil)
	init.Initialize(w)
	init.Initialize(h)
	w.SetVec(n-1, 0.0)
	h.SetVec(n-1, 0.0)

	// The behaviour policy draws from its own stream, not the one
	// that initialized the weights
	behaviour, err := policy.NewEGreedy(eps(1.0), w, enc, actions,
		policySeed(seed))
	if err != nil {
		return nil, fmt.Errorf("new: could not create policy: %v", err)
	}

	learner, err := NewGTD2Learner(w, h, enc, actions, c.Alpha,
		c.SecondaryStepSize(), c.Gamma)
	if err != nil {
		return nil, fmt.Errorf("new: could not create learner: %v", err)
	}

	return &GTD2{
		GTD2Learner: learner,
		EGreedy:     behaviour,
		env:         env,
		config:      c,
		schedule:    eps,
		nvec:        nvec,
		features:    features,
		seed:        seed,
	}, nil
}

// policySeed returns the seed of the behaviour policy of an agent
// created with seed
func policySeed(seed uint64) uint64 {
	return seed + 1
}

// Config returns the agent's configuration
func (g *GTD2) Config() Config {
	return g.config
}

// Features returns the length of encoded observations
func (g *GTD2) Features() int {
	return g.features
}

// Weights returns copies of the primary and secondary weights
func (g *GTD2) Weights() (w, h *mat.VecDense) {
	return mat.VecDenseCopyOf(g.weights), mat.VecDenseCopyOf(g.auxWeights)
}

// Anneal sets the exploration rate from the exploration schedule,
// given the fraction of training remaining
func (g *GTD2) Anneal(progressRemaining float64) {
	g.SetEpsilon(g.schedule(progressRemaining))
}

// Predict returns an action for an observation. If deterministic is
// true, the first action of highest value is returned. Otherwise an
// action is sampled from the ε-greedy policy at the current
// exploration rate. Predict never changes the weights.
func (g *GTD2) Predict(obs mat.Vector, deterministic bool) int {
	if deterministic {
		return g.Greedy(obs)
	}
	return g.Sample(obs)
}

// Learn trains the agent on its environment for at least
// totalTimesteps timesteps. Episodes are never cut short, so training
// may overrun the budget by up to one episode.
//
// If the agent is verbose, a summary of the last logInterval episodes
// is logged to stdout every logInterval episodes, and appended to the
// file at logPath if logPath is not empty.
func (g *GTD2) Learn(totalTimesteps, logInterval int, logPath string,
	opts ...experiment.Option) (experiment.Stats, error) {
	if totalTimesteps <= 0 {
		return experiment.Stats{}, fmt.Errorf("learn: total timesteps must " +
			"be positive")
	}
	if logInterval <= 0 {
		return experiment.Stats{}, fmt.Errorf("learn: log interval must be " +
			"positive")
	}

	if g.config.Verbose {
		var out io.Writer = os.Stdout
		if logPath != "" {
			file, err := os.OpenFile(logPath,
				os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
			if err != nil {
				return experiment.Stats{}, errors.Wrap(err, "learn")
			}
			defer file.Close()
			out = io.MultiWriter(os.Stdout, file)
		}

		logger := logrus.New()
		logger.SetOutput(out)
		logger.SetFormatter(&logrus.TextFormatter{
			DisableColors:    true,
			DisableTimestamp: true,
		})
		opts = append([]experiment.Option{
			experiment.WithLogger(logger, logInterval),
		}, opts...)
	}

	g.Train()
	exp := experiment.NewOnline(g.env, g, totalTimesteps, opts...)
	return exp.Run()
}
