//go:build amd64 && !purego

package simd

import "golang.org/x/sys/cpu"

// CPU feature flags read once at package initialization.
var (
	// hasAVX2 selects the 32-byte lane backend.
	hasAVX2 = cpu.X86.HasAVX2

	// hasSSE2 selects the 16-byte lane backend. Part of the x86-64 baseline,
	// so in practice always true.
	hasSSE2 = cpu.X86.HasSSE2
)

func detect() Backend {
	switch {
	case hasAVX2:
		return Wide
	case hasSSE2:
		return Narrow
	}
	return Scalar
}
