// Package checkpointer implements functionality for saving objects,
// such as agents, periodically during an experiment
package checkpointer

// Serializable is an object that can be saved to a file
type Serializable interface {
	Save(filename string) error
}

// Checkpointer checkpoints/saves serializable objects at the end of
// episodes. Episodes are numbered from 1.
type Checkpointer interface {
	Checkpoint(episode int) error
}
