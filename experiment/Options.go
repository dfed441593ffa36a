package experiment

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/samuelfneumann/farl/experiment/checkpointer"
	"github.com/samuelfneumann/farl/experiment/trackers"
	"github.com/samuelfneumann/farl/utils/progressbar"
)

// Option configures an Online experiment
type Option func(*Online)

// WithLogger logs a summary of the last interval episodes every
// interval episodes
func WithLogger(logger logrus.FieldLogger, interval int) Option {
	return func(o *Online) {
		o.logger = logger
		o.logInterval = interval
	}
}

// WithTrackers sends every TimeStep of the experiment to each Tracker
func WithTrackers(t ...trackers.Tracker) Option {
	return func(o *Online) {
		o.trackers = append(o.trackers, t...)
	}
}

// WithCheckpointers calls each Checkpointer at the end of every
// episode
func WithCheckpointers(c ...checkpointer.Checkpointer) Option {
	return func(o *Online) {
		o.checkpointers = append(o.checkpointers, c...)
	}
}

// WithProgressBar displays a progress bar of width characters over
// the experiment's timesteps, updated at the end of each episode
func WithProgressBar(out io.Writer, width int) Option {
	return func(o *Online) {
		o.progress = progressbar.NewManualProgressBar(out, width,
			o.maxSteps)
	}
}
