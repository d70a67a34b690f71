//go:build goexperiment.simd && amd64 && !purego

package simd

import "simd/archsimd"

// Instruction sets the lane compares are emitted for. A forced backend on a
// host without them compares words instead.
var (
	useWideLanes   = archsimd.X86.AVX() && archsimd.X86.AVX2()
	useNarrowLanes = archsimd.X86.AVX()
)

// vectors is the per-scan compare state of a tier. width is the lane width
// compared with vector instructions, or 0 when words are used.
type vectors struct {
	words  words
	width  int
	wide   [3]archsimd.Uint8x32
	narrow [3]archsimd.Uint8x16
}

func newVectors(t tier, a, b, c byte) vectors {
	v := vectors{words: newWords(a, b, c)}
	switch {
	case t.width == 32 && useWideLanes:
		v.width = 32
		v.wide = [3]archsimd.Uint8x32{
			archsimd.BroadcastUint8x32(a),
			archsimd.BroadcastUint8x32(b),
			archsimd.BroadcastUint8x32(c),
		}
	case t.width == 16 && useNarrowLanes:
		v.width = 16
		v.narrow = [3]archsimd.Uint8x16{
			archsimd.BroadcastUint8x16(a),
			archsimd.BroadcastUint8x16(b),
			archsimd.BroadcastUint8x16(c),
		}
	}
	return v
}

// batchMask returns one bit per byte of batch, set where the byte equals a
// needle. len(batch) must equal t.size().
func (v *vectors) batchMask(t tier, batch []byte) uint64 {
	var mask uint64
	switch v.width {
	case 32:
		for off := 0; off < t.size(); off += 32 {
			lane := archsimd.LoadUint8x32Slice(batch[off:])
			bits := lane.Equal(v.wide[0]).ToBits() |
				lane.Equal(v.wide[1]).ToBits() |
				lane.Equal(v.wide[2]).ToBits()
			mask |= uint64(bits) << uint(off)
		}
	case 16:
		for off := 0; off < t.size(); off += 16 {
			lane := archsimd.LoadUint8x16Slice(batch[off:])
			bits := lane.Equal(v.narrow[0]).ToBits() |
				lane.Equal(v.narrow[1]).ToBits() |
				lane.Equal(v.narrow[2]).ToBits()
			mask |= uint64(bits) << uint(off)
		}
	default:
		mask = swarBatchMask(t, batch, v.words)
	}
	return mask
}

// done clears the upper halves of the YMM registers after a 256-bit scan.
func (v *vectors) done() {
	if v.width == 32 {
		archsimd.ClearAVXUpperBits()
	}
}
