package simd

import "bytes"

// IndexNeedles returns the index of the first byte in buf that equals any
// needle in n, or -1 if there is none. An empty set matches nothing.
//
// This is the scalar fallback used by every backend: for inputs shorter than
// one batch, for the tail that follows the last whole batch, and as the whole
// scan when no vector backend is available.
func IndexNeedles(buf []byte, n Needles) int {
	switch n.Len() {
	case 1:
		return bytes.IndexByte(buf, n.bytes[0])
	case 2:
		n0, n1 := n.bytes[0], n.bytes[1]
		for i, c := range buf {
			if c == n0 || c == n1 {
				return i
			}
		}
	case 3:
		n0, n1, n2 := n.bytes[0], n.bytes[1], n.bytes[2]
		for i, c := range buf {
			if c == n0 || c == n1 || c == n2 {
				return i
			}
		}
	}
	return -1
}

// scanScalar adapts IndexNeedles to the ScanFunc shape. There is nothing to
// amortize, so the cache is always empty.
func scanScalar(buf []byte, n Needles, _ int) (int, uint64, uint64) {
	return IndexNeedles(buf, n), 0, 0
}
