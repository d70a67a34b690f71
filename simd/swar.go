package simd

import "encoding/binary"

const (
	lo8 = 0x0101010101010101
	lo7 = 0x7f7f7f7f7f7f7f7f

	// movemaskMul moves bit 8k of a word to bit 56+k of the product.
	movemaskMul = 0x0102040810204080
)

// broadcast replicates b into every byte of a word.
func broadcast(b byte) uint64 {
	return uint64(b) * lo8
}

// zeroBytes returns a word with 0x80 set in exactly the bytes of x that are
// zero and every other bit clear.
//
// Unlike the (x - lo8) & ^x & hi8 test used for first-match search, this form
// has no borrow between bytes, so bytes after the first zero are exact too.
func zeroBytes(x uint64) uint64 {
	t := (x & lo7) + lo7
	return ^(t | x | lo7)
}

// movemask packs the high bit of each byte of hi into the low 8 bits of the
// result, byte 0 into bit 0. hi must have no bits set other than byte high bits.
func movemask(hi uint64) uint64 {
	return ((hi >> 7) * movemaskMul) >> 56
}

// words holds three needles broadcast into 64-bit words. Sets with fewer
// needles repeat the first one.
type words struct {
	a, b, c uint64
}

func newWords(a, b, c byte) words {
	return words{a: broadcast(a), b: broadcast(b), c: broadcast(c)}
}

// match returns 0x80 in every byte of the little-endian word that equals
// one of the needles.
func (w words) match(word uint64) uint64 {
	return zeroBytes(word^w.a) | zeroBytes(word^w.b) | zeroBytes(word^w.c)
}

// laneMask compares one lane and returns one bit per byte, bit i for lane[i].
// len(lane) must be a multiple of 8 and at most 64.
func laneMask(lane []byte, w words) uint64 {
	var mask uint64
	for i := 0; i+8 <= len(lane); i += 8 {
		word := binary.LittleEndian.Uint64(lane[i:])
		mask |= movemask(w.match(word)) << uint(i)
	}
	return mask
}

// swarBatchMask compares a whole batch a word at a time. It backs the vector
// tiers on builds without vector intrinsics and on hosts that lack the
// instructions a forced backend needs.
func swarBatchMask(t tier, batch []byte, w words) uint64 {
	var mask uint64
	for l := 0; l < t.lanes; l++ {
		off := l * t.width
		mask |= laneMask(batch[off:off+t.width], w) << uint(off)
	}
	return mask
}
