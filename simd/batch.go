package simd

import "math/bits"

// tier describes one vector width: a batch is lanes consecutive lanes of
// width bytes each, and its combined mask has one bit per batch byte.
type tier struct {
	width int
	lanes int
}

var (
	wideTier   = tier{width: 32, lanes: 2}
	narrowTier = tier{width: 16, lanes: 4}
)

// size returns the number of bytes in one batch. Always at most 64.
func (t tier) size() int {
	return t.width * t.lanes
}

// scan finds the first needle in buf and returns its offset together with the
// remaining matches of the same batch as a mask relative to the batch start.
//
// Only [0, vectorEnd) is compared a batch at a time; the bytes after it go to
// the scalar fallback.
func (t tier) scan(buf []byte, n Needles, vectorEnd int) (int, uint64, uint64) {
	size := t.size()
	if len(buf) < size || n.Len() == 0 {
		return scanScalar(buf, n, 0)
	}
	end := clampVectorEnd(len(buf), size, vectorEnd)
	a, b, c := n.padded()
	v := newVectors(t, a, b, c)
	defer v.done()
	for off := 0; off < end; off += size {
		mask := v.batchMask(t, buf[off:off+size])
		if mask != 0 {
			return off + bits.TrailingZeros64(mask), mask & (mask - 1), 0
		}
	}
	return scanTail(buf, end, n)
}

// scanCSV is the three needle variant with line feed and double quote fixed.
// Each step covers two batches: the near mask holds matches of the first
// batch and the far mask those of the second, both relative to their own
// batch start.
func (t tier) scanCSV(buf []byte, n Needles, vectorEnd int) (int, uint64, uint64) {
	half := t.size()
	size := 2 * half
	if len(buf) < size || n.Len() == 0 {
		return scanScalar(buf, n, 0)
	}
	end := clampVectorEnd(len(buf), size, vectorEnd)
	v := newVectors(t, n.At(0), '\n', '"')
	defer v.done()
	for off := 0; off < end; off += size {
		near := v.batchMask(t, buf[off:off+half])
		far := v.batchMask(t, buf[off+half:off+size])
		switch {
		case near != 0:
			return off + bits.TrailingZeros64(near), near & (near - 1), far
		case far != 0:
			return off + half + bits.TrailingZeros64(far), 0, far & (far - 1)
		}
	}
	return scanTail(buf, end, n)
}

func scanTail(buf []byte, end int, n Needles) (int, uint64, uint64) {
	if pos := IndexNeedles(buf[end:], n); pos >= 0 {
		return end + pos, 0, 0
	}
	return -1, 0, 0
}

// clampVectorEnd limits vectorEnd to whole batches inside a buffer of length n.
func clampVectorEnd(n, size, vectorEnd int) int {
	if vectorEnd <= 0 {
		return 0
	}
	vectorEnd = min(vectorEnd, n)
	return vectorEnd - vectorEnd%size
}
