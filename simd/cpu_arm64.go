//go:build arm64 && !purego

package simd

import "golang.org/x/sys/cpu"

var hasASIMD = cpu.ARM64.HasASIMD

func detect() Backend {
	if hasASIMD {
		return Narrow
	}
	return Scalar
}
