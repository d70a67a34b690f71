package simd

// Needles is a set of one to three needle bytes.
//
// The zero value is an empty set that matches nothing; NewNeedles builds
// every other value.
//
// Duplicate bytes are allowed; they produce the same offsets as the set
// without duplicates.
type Needles struct {
	bytes [3]byte
	n     uint8
}

// NewNeedles returns a needle set holding the given bytes.
// Panics if called with zero or more than three bytes.
func NewNeedles(b ...byte) Needles {
	if len(b) == 0 || len(b) > 3 {
		panic("simd: needle count out of range [1, 3]")
	}
	var n Needles
	copy(n.bytes[:], b)
	n.n = uint8(len(b))
	return n
}

// Len returns the number of needles in the set.
func (n Needles) Len() int {
	return int(n.n)
}

// At returns the i-th needle.
func (n Needles) At(i int) byte {
	if i >= int(n.n) {
		panic("simd: needle index out of range")
	}
	return n.bytes[i]
}

// Contains reports whether c is one of the needles.
func (n Needles) Contains(c byte) bool {
	switch n.n {
	case 1:
		return c == n.bytes[0]
	case 2:
		return c == n.bytes[0] || c == n.bytes[1]
	case 3:
		return c == n.bytes[0] || c == n.bytes[1] || c == n.bytes[2]
	}
	return false
}

// padded returns all three comparison bytes, filling unused slots with the
// first needle so a three-way compare is always valid. The set must not be
// empty.
func (n Needles) padded() (byte, byte, byte) {
	switch n.n {
	case 1:
		return n.bytes[0], n.bytes[0], n.bytes[0]
	case 2:
		return n.bytes[0], n.bytes[1], n.bytes[0]
	case 3:
		return n.bytes[0], n.bytes[1], n.bytes[2]
	}
	panic("simd: empty needle set")
}
