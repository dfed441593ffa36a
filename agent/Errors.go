package agent

import "github.com/pkg/errors"

// ConfigError reports that an agent could not be constructed from its
// configuration, or that the agent cannot be used with an
// environment.
type ConfigError struct {
	Op  string
	Err error
}

// Error satisifes the error interface
func (e *ConfigError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying error
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError returns a new ConfigError for operation op
func NewConfigError(op string, err error) error {
	return &ConfigError{Op: op, Err: err}
}

// IsConfigError returns whether or not an error, or any error it
// wraps, is a ConfigError
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}
