package experiment

import (
	"math"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/samuelfneumann/farl/agent"
	"github.com/samuelfneumann/farl/environment"
	"github.com/samuelfneumann/farl/experiment/checkpointer"
	"github.com/samuelfneumann/farl/experiment/trackers"
	ts "github.com/samuelfneumann/farl/timestep"
	"github.com/samuelfneumann/farl/utils/progressbar"
)

// Online is an Experiment that runs an agent online only. No offline
// evaluation is performed.
//
// Episodes are always run to completion, whether they terminate or
// are truncated. The timestep budget is only checked between episodes,
// so the experiment may overrun it by up to one episode.
type Online struct {
	environment.Environment
	agent.Agent
	maxSteps     int
	currentSteps int

	stats         Stats
	trackers      []trackers.Tracker
	checkpointers []checkpointer.Checkpointer
	logger        logrus.FieldLogger
	logInterval   int
	progress      *progressbar.ManualProgressBar
}

// NewOnline creates and returns a new online experiment on a given
// environment with a given agent. The steps parameter determines how
// many timesteps the experiment is run for.
func NewOnline(e environment.Environment, a agent.Agent, steps int,
	opts ...Option) *Online {
	o := &Online{
		Environment: e,
		Agent:       a,
		maxSteps:    steps,
	}

	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Register registers a Tracker with an Experiment so that data
// generated during the experiment can be tracked and saved
func (o *Online) Register(t trackers.Tracker) {
	o.trackers = append(o.trackers, t)
}

// RunEpisode runs a single episode of the experiment and returns
// whether or not the timestep budget has been reached. At the start
// of the episode, an agent.Annealer is annealed with the fraction of
// the budget remaining.
func (o *Online) RunEpisode() (bool, error) {
	if a, ok := o.Agent.(agent.Annealer); ok {
		a.Anneal(1 - float64(o.currentSteps)/float64(o.maxSteps))
	}

	step, err := o.Environment.Reset()
	if err != nil {
		return false, errors.Wrap(err, "runEpisode: could not reset")
	}
	if step.Last() {
		return false, errors.Errorf("runEpisode: reset returned a last "+
			"timestep (step %d)", step.Number)
	}
	if err := o.Agent.ObserveFirst(step); err != nil {
		return false, errors.Wrap(err, "runEpisode")
	}
	o.track(step)

	var episodeReturn float64
	var length int
	for !step.Last() {
		// Select action, step in environment
		action := o.Agent.SelectAction(step)
		step, err = o.Environment.Step(action)
		if err != nil {
			return false, errors.Wrapf(err, "runEpisode: could not step "+
				"with action %d", action)
		}

		episodeReturn += step.Reward
		length++
		o.track(step)

		// Observe the timestep and step the agent
		if err := o.Agent.Observe(action, step); err != nil {
			return false, errors.Wrap(err, "runEpisode")
		}
		if err := o.Agent.Step(); err != nil {
			return false, errors.Wrap(err, "runEpisode")
		}
	}
	o.Agent.EndEpisode()

	o.currentSteps += length
	o.stats.add(episodeReturn, length)

	if err := o.checkpoint(o.stats.Episodes()); err != nil {
		return false, err
	}
	if o.progress != nil {
		o.progress.Set(o.currentSteps)
		o.progress.Display()
	}
	o.log()

	// Return whether or not the max timestep limit has been reached
	return o.currentSteps >= o.maxSteps, nil
}

// Run runs episodes until the timestep budget is reached and returns
// the statistics of all episodes run. If an error occurs, the
// statistics of the episodes finished so far are returned with it.
func (o *Online) Run() (Stats, error) {
	for o.currentSteps < o.maxSteps {
		if _, err := o.RunEpisode(); err != nil {
			return o.stats, err
		}
	}
	return o.stats, nil
}

// Stats returns the statistics of all episodes run so far
func (o *Online) Stats() Stats {
	return o.stats
}

// Save saves all the data cached by the Trackers to disk
func (o *Online) Save() error {
	for _, tracker := range o.trackers {
		if err := tracker.Save(); err != nil {
			return errors.Wrap(err, "save")
		}
	}
	return nil
}

// track tracks the current timestep by caching its data in each Tracker
func (o *Online) track(t ts.TimeStep) {
	for _, tracker := range o.trackers {
		tracker.Track(t)
	}
}

// checkpoint calls each Checkpointer after an episode
func (o *Online) checkpoint(episode int) error {
	for _, c := range o.checkpointers {
		if err := c.Checkpoint(episode); err != nil {
			return errors.Wrapf(err, "checkpoint: episode %d", episode)
		}
	}
	return nil
}

// log logs a summary of the last logInterval episodes every
// logInterval episodes
func (o *Online) log() {
	episodes := o.stats.Episodes()
	if o.logger == nil || o.logInterval <= 0 || episodes%o.logInterval != 0 {
		return
	}

	from := episodes - o.logInterval
	fields := logrus.Fields{
		"episode":         episodes,
		"total_timesteps": o.currentSteps,
		"avg_reward":      o.stats.MeanReward(from, episodes),
		"avg_length":      o.stats.MeanLength(from, episodes),
	}
	if a, ok := o.Agent.(agent.Annealer); ok {
		fields["eps"] = math.Round(a.Epsilon()*1e4) / 1e4
	}
	o.logger.WithFields(fields).Info("training")
}
