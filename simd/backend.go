package simd

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownBackend is returned when a backend name or value is not recognized.
var ErrUnknownBackend = errors.New("unknown scan backend")

// Backend identifies a byte-scanning implementation.
//
// The zero value is Auto, which resolves to the most capable backend the host
// supports (see Detect).
type Backend uint8

const (
	// Auto selects a backend from the host CPU features.
	Auto Backend = iota

	// Scalar compares one byte at a time. Always available.
	Scalar

	// Narrow compares 16-byte lanes, four lanes per 64-byte batch.
	// Selected on SSE2 (x86-64) and ASIMD (arm64) hosts.
	Narrow

	// Wide compares 32-byte lanes, two lanes per 64-byte batch.
	// Selected on AVX2 hosts.
	Wide
)

var backendNames = [...]string{
	Auto:   "auto",
	Scalar: "scalar",
	Narrow: "narrow",
	Wide:   "wide",
}

// String returns the lower-case name of the backend.
func (b Backend) String() string {
	if b.Valid() {
		return backendNames[b]
	}
	return fmt.Sprintf("Backend(%d)", uint8(b))
}

// Valid reports whether b is one of the declared backends.
func (b Backend) Valid() bool {
	return int(b) < len(backendNames)
}

// ParseBackend returns the backend with the given name. Matching is
// case-insensitive and ignores surrounding whitespace.
func ParseBackend(name string) (Backend, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range backendNames {
		if n == name {
			return Backend(i), nil
		}
	}
	return Auto, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
}

// MarshalText implements encoding.TextMarshaler.
func (b Backend) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownBackend, uint8(b))
	}
	return []byte(backendNames[b]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Backend) UnmarshalText(text []byte) error {
	parsed, err := ParseBackend(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
