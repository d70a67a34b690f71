package simd

import "math/rand/v2"

// refMatches returns every index of buf holding one of the needles.
func refMatches(buf []byte, n Needles) []int {
	var out []int
	for i, c := range buf {
		if n.Contains(c) {
			out = append(out, i)
		}
	}
	return out
}

// randomText returns n bytes drawn from alphabet.
func randomText(r *rand.Rand, n int, alphabet string) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = alphabet[r.IntN(len(alphabet))]
	}
	return buf
}

// expectedMask returns the mask of matches in [from, to) relative to base.
func expectedMask(matches []int, base, from, to int) uint64 {
	var mask uint64
	for _, m := range matches {
		if m >= from && m < to {
			mask |= 1 << uint(m-base)
		}
	}
	return mask
}
