// Package simd provides the batched byte-scanning backends used by bufchr.
//
// A backend compares a batch of bytes against one to three needle bytes at
// once and reports not only the first match but every other match of the
// same batch as a bitmask, so callers that iterate over all matches can serve
// the next few from the mask instead of rescanning. Two vector tiers exist
// (Wide: 2x32-byte lanes, Narrow: 4x16-byte lanes) plus a scalar fallback;
// Detect picks one from the host CPU features.
//
// Memchr, Memchr2 and Memchr3 are single-shot first-match searches built on
// the detected backend.
package simd

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// Equivalent to bytes.IndexByte.
//
// Example:
//
//	haystack := []byte("hello world")
//	pos := simd.Memchr(haystack, 'o')
//	// pos == 4
func Memchr(haystack []byte, needle byte) int {
	return memchrNeedles(haystack, NewNeedles(needle))
}

// Memchr2 returns the index of the first instance of either needle1 or needle2
// in haystack, or -1 if neither is present.
//
// Example:
//
//	text := []byte("Hello, world!")
//	pos := simd.Memchr2(text, ',', '!')
//	// pos == 5
func Memchr2(haystack []byte, needle1, needle2 byte) int {
	return memchrNeedles(haystack, NewNeedles(needle1, needle2))
}

// Memchr3 returns the index of the first instance of needle1, needle2, or
// needle3 in haystack, or -1 if none are present.
//
// Example searching for CSV structure:
//
//	csv := []byte("name,\"age\"\n")
//	pos := simd.Memchr3(csv, ',', '"', '\n')
//	// pos == 4
func Memchr3(haystack []byte, needle1, needle2, needle3 byte) int {
	return memchrNeedles(haystack, NewNeedles(needle1, needle2, needle3))
}

func memchrNeedles(haystack []byte, n Needles) int {
	if len(haystack) == 0 {
		return -1
	}
	b := Bind(Auto, n.Len())
	pos, _, _ := b.Scan(haystack, n, b.VectorEnd(len(haystack)))
	return pos
}
