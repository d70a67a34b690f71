package bufchr

import "github.com/coregx/bufchr/simd"

// Backend identifies the byte-scanning implementation bound to a cursor.
type Backend = simd.Backend

// Backends accepted in Config.
const (
	BackendAuto   = simd.Auto
	BackendScalar = simd.Scalar
	BackendNarrow = simd.Narrow
	BackendWide   = simd.Wide
)

// Config controls cursor construction.
//
// Example:
//
//	config := bufchr.DefaultConfig()
//	config.Backend = bufchr.BackendScalar // compare against the reference path
//	bf, err := bufchr.NewWithConfig(data, config, ',')
type Config struct {
	// Backend forces a scan backend. BackendAuto detects the best one from
	// the host CPU.
	//
	// Forcing a vector backend on a host without the matching instruction
	// set is allowed: the result is identical, only the speed differs.
	// Default: BackendAuto
	Backend Backend
}

// DefaultConfig returns a configuration that auto-detects the backend.
func DefaultConfig() Config {
	return Config{Backend: BackendAuto}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if !c.Backend.Valid() {
		return &ConfigError{Field: "Backend", Err: ErrUnknownBackend}
	}
	return nil
}

// ParseBackend returns the backend with the given name
// ("auto", "scalar", "narrow" or "wide").
func ParseBackend(name string) (Backend, error) {
	return simd.ParseBackend(name)
}
