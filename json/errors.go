package json

import (
	"errors"
	"fmt"
)

// Sentinel errors for codec build failures.
// Use errors.Is() to check for these error types.
var (
	// ErrUnknownPolicy indicates an unrecognized naming policy.
	ErrUnknownPolicy = errors.New("unknown naming policy")

	// ErrNilAdapter indicates a type adapter registration without an adapter.
	ErrNilAdapter = errors.New("nil adapter")

	// ErrNilTarget indicates a type adapter registration without a target type.
	ErrNilTarget = errors.New("nil adapter target")

	// ErrNilStrategy indicates a nil exclusion strategy.
	ErrNilStrategy = errors.New("nil exclusion strategy")
)

// ConfigError represents a codec build error.
// It wraps a sentinel error with detail about the offending option.
type ConfigError struct {
	Err    error  // Underlying sentinel error
	Detail string // Offending option detail (policy name, target type)
}

func (e *ConfigError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Detail)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// newConfigError creates a ConfigError for build failures.
func newConfigError(sentinel error, detail string) error {
	return &ConfigError{Err: sentinel, Detail: detail}
}
