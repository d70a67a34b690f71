package bufchr

import (
	"iter"
	"math/bits"

	"github.com/coregx/bufchr/simd"
)

// state is the position of a cursor in its scan lifecycle.
type state uint8

const (
	// stateFresh: nothing scanned yet, position is 0.
	stateFresh state = iota

	// stateDraining: near or far holds unreported matches of the batch at
	// alignPos. No rescan happens until both are empty.
	stateDraining

	// stateScanning: the cache is empty; the next call scans from position.
	stateScanning

	// stateExhausted: a scan found nothing. Terminal.
	stateExhausted
)

// cursor is the scan state shared by all public iterator types.
type cursor struct {
	haystack  []byte
	needles   simd.Needles
	binding   simd.Binding
	vectorEnd int

	state    state
	position int // one past the last reported offset

	// Valid only in stateDraining.
	alignPos  int
	near, far uint64
}

func newCursor(haystack []byte, n simd.Needles, b simd.Binding) cursor {
	return cursor{
		haystack:  haystack,
		needles:   n,
		binding:   b,
		vectorEnd: b.VectorEnd(len(haystack)),
	}
}

func (c *cursor) next() (int, bool) {
	switch c.state {
	case stateDraining:
		return c.drain(), true
	case stateExhausted:
		return -1, false
	}
	return c.scan()
}

// drain reports the lowest cached match. Near matches precede far ones.
func (c *cursor) drain() int {
	var off int
	if c.near != 0 {
		off = c.alignPos + bits.TrailingZeros64(c.near)
		c.near &= c.near - 1
	} else {
		off = c.alignPos + c.binding.Stride + bits.TrailingZeros64(c.far)
		c.far &= c.far - 1
	}
	if c.near|c.far == 0 {
		c.state = stateScanning
	}
	c.position = off + 1
	return off
}

// windowStart returns where the next scan begins. With less than one batch
// left the remainder is scanned as is (the backend falls back to scalar);
// otherwise the start is rounded up to a batch boundary, which skips nothing
// because every match of the previous batch was in the cache.
func (c *cursor) windowStart() int {
	batch := c.binding.Batch
	if len(c.haystack)-c.position < batch {
		return c.position
	}
	return (c.position + batch - 1) / batch * batch
}

func (c *cursor) scan() (int, bool) {
	start := c.windowStart()
	pos, near, far := c.binding.Scan(c.haystack[start:], c.needles, c.vectorEnd-start)
	if pos < 0 {
		c.state = stateExhausted
		c.near, c.far = 0, 0
		return -1, false
	}
	off := start + pos
	c.position = off + 1
	if near|far == 0 {
		c.state = stateScanning
		return off, true
	}
	c.alignPos = off - pos%c.binding.Batch
	c.near, c.far = near, far
	c.state = stateDraining
	return off, true
}

func (c *cursor) all() iter.Seq[int] {
	return func(yield func(int) bool) {
		for {
			off, ok := c.next()
			if !ok || !yield(off) {
				return
			}
		}
	}
}
