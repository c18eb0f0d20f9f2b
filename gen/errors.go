package gen

import (
	"errors"
	"fmt"
)

// ErrInvalidMask marks a mask template referencing an unknown placeholder.
// It is always wrapped in a *ConfigError.
var ErrInvalidMask = errors.New("invalid mask")

// ConfigError is any configuration problem detected before generation
// starts. Nothing has been emitted when one of these is returned.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func configErrorf(field, format string, args ...any) *ConfigError {
	return &ConfigError{Field: field, Err: fmt.Errorf(format, args...)}
}

// WorkerError wraps an unexpected failure inside one worker's shard. The
// coordinator cancels the remaining workers and returns it.
type WorkerError struct {
	Worker int
	Err    error
}

func (e *WorkerError) Error() string {
	return fmt.Sprintf("worker %d: %s", e.Worker, e.Err)
}

func (e *WorkerError) Unwrap() error {
	return e.Err
}
