package bufchr

import (
	"errors"
	"fmt"

	"github.com/coregx/bufchr/simd"
)

var (
	// ErrInvalidConfig indicates invalid configuration was provided.
	ErrInvalidConfig = errors.New("invalid bufchr configuration")

	// ErrUnknownBackend indicates a backend name or value that is not recognized.
	ErrUnknownBackend = simd.ErrUnknownBackend
)

// ConfigError reports which Config field failed validation.
type ConfigError struct {
	Field string
	Err   error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrInvalidConfig, e.Field, e.Err)
}

// Unwrap returns the underlying error
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrInvalidConfig, so both the generic and the
// specific cause match with errors.Is.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}
