// Package bufchr finds every occurrence of one to three bytes in a buffer,
// in ascending order.
//
// bufchr is built for input where matches are dense, such as CSV and other
// delimited text where commas, quotes and line feeds repeat every few bytes.
// A plain first-match search (bytes.IndexByte, simd.Memchr3) restarts its
// vector compare after every hit; bufchr keeps the match bitmask of the last
// compared batch and serves the following matches from it, rescanning only
// when the mask is empty.
//
// Basic usage:
//
//	bf := bufchr.New3(data, ',', '"', '\n')
//	for off, ok := bf.Next(); ok; off, ok = bf.Next() {
//	    handle(data[off])
//	}
//
// Or with range-over-func:
//
//	for off := range bufchr.New(data, ',').All() {
//	    fields++
//	}
//
// The backend (wide vector, narrow vector or scalar) is chosen from the host
// CPU features; NewWithConfig and friends force one. The backend never
// changes the produced offsets.
//
// A cursor is not safe for concurrent use. Any number of cursors may scan the
// same haystack concurrently; the haystack is never written and must not be
// modified while a cursor over it is in use.
package bufchr

import (
	"iter"

	"github.com/coregx/bufchr/simd"
)

// Bufchr iterates over the offsets of a single needle byte.
type Bufchr struct {
	c cursor
}

// New returns a cursor over haystack for needle using the detected backend.
func New(haystack []byte, needle byte) *Bufchr {
	return &Bufchr{c: newCursor(haystack, simd.NewNeedles(needle), simd.Select(1))}
}

// NewWithConfig is like New but binds the backend named by config.
func NewWithConfig(haystack []byte, config Config, needle byte) (*Bufchr, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Bufchr{c: newCursor(haystack, simd.NewNeedles(needle), simd.Bind(config.Backend, 1))}, nil
}

// Next returns the offset of the next match. It returns (-1, false) once the
// haystack is exhausted and on every call after that.
func (b *Bufchr) Next() (int, bool) {
	return b.c.next()
}

// All returns an iterator over the remaining offsets. Ranging consumes the
// cursor.
func (b *Bufchr) All() iter.Seq[int] {
	return b.c.all()
}

// Backend returns the backend bound at construction.
func (b *Bufchr) Backend() Backend {
	return b.c.binding.Backend
}

// Bufchr2 iterates over the offsets of either of two needle bytes.
type Bufchr2 struct {
	c cursor
}

// New2 returns a cursor over haystack for two needles using the detected
// backend. The needles may be equal.
func New2(haystack []byte, needle0, needle1 byte) *Bufchr2 {
	return &Bufchr2{c: newCursor(haystack, simd.NewNeedles(needle0, needle1), simd.Select(2))}
}

// New2WithConfig is like New2 but binds the backend named by config.
func New2WithConfig(haystack []byte, config Config, needle0, needle1 byte) (*Bufchr2, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	n := simd.NewNeedles(needle0, needle1)
	return &Bufchr2{c: newCursor(haystack, n, simd.Bind(config.Backend, 2))}, nil
}

// Next returns the offset of the next match, or (-1, false) when exhausted.
func (b *Bufchr2) Next() (int, bool) {
	return b.c.next()
}

// All returns an iterator over the remaining offsets.
func (b *Bufchr2) All() iter.Seq[int] {
	return b.c.all()
}

// Backend returns the backend bound at construction.
func (b *Bufchr2) Backend() Backend {
	return b.c.binding.Backend
}

// Bufchr3 iterates over the offsets of any of three needle bytes.
type Bufchr3 struct {
	c cursor
}

// New3 returns a cursor over haystack for three needles using the detected
// backend. The needles may repeat.
func New3(haystack []byte, needle0, needle1, needle2 byte) *Bufchr3 {
	n := simd.NewNeedles(needle0, needle1, needle2)
	return &Bufchr3{c: newCursor(haystack, n, simd.Select(3))}
}

// New3WithConfig is like New3 but binds the backend named by config.
func New3WithConfig(haystack []byte, config Config, needle0, needle1, needle2 byte) (*Bufchr3, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	n := simd.NewNeedles(needle0, needle1, needle2)
	return &Bufchr3{c: newCursor(haystack, n, simd.Bind(config.Backend, 3))}, nil
}

// Next returns the offset of the next match, or (-1, false) when exhausted.
func (b *Bufchr3) Next() (int, bool) {
	return b.c.next()
}

// All returns an iterator over the remaining offsets.
func (b *Bufchr3) All() iter.Seq[int] {
	return b.c.all()
}

// Backend returns the backend bound at construction.
func (b *Bufchr3) Backend() Backend {
	return b.c.binding.Backend
}

// Fast3 iterates over the offsets of a delimiter, line feed and double quote:
// the three bytes that structure CSV-like text.
//
// Line feed and quote are compiled in, and each vector step covers two
// batches, so twice as many matches are served from the cache between scans
// as with Bufchr3. Produces the same offsets as New3(haystack, delim, '\n', '"').
type Fast3 struct {
	c cursor
}

// NewFast3 returns a Fast3 cursor over haystack using the detected backend.
func NewFast3(haystack []byte, delim byte) *Fast3 {
	return &Fast3{c: newCursor(haystack, csvNeedles(delim), simd.BindCSV(simd.Auto))}
}

// NewFast3WithConfig is like NewFast3 but binds the backend named by config.
func NewFast3WithConfig(haystack []byte, config Config, delim byte) (*Fast3, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Fast3{c: newCursor(haystack, csvNeedles(delim), simd.BindCSV(config.Backend))}, nil
}

func csvNeedles(delim byte) simd.Needles {
	return simd.NewNeedles(delim, '\n', '"')
}

// Next returns the offset of the next match, or (-1, false) when exhausted.
func (f *Fast3) Next() (int, bool) {
	return f.c.next()
}

// All returns an iterator over the remaining offsets.
func (f *Fast3) All() iter.Seq[int] {
	return f.c.all()
}

// Backend returns the backend bound at construction.
func (f *Fast3) Backend() Backend {
	return f.c.binding.Backend
}
