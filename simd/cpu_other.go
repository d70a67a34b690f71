//go:build (!amd64 && !arm64) || purego

package simd

// detect reports Scalar on platforms without a detected vector unit, and
// everywhere when built with the purego tag.
func detect() Backend {
	return Scalar
}
