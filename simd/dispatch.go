package simd

import "fmt"

// ScanFunc finds the first needle in buf.
//
// It returns the offset of the first match (or -1) and the cached matches of
// the batch that contained it: near holds the rest of the first Stride bytes
// of that batch, far the matches of the following Stride bytes when the
// backend scans two strides per step. Bit i of near is offset
// batchStart+i; bit i of far is offset batchStart+Stride+i.
//
// vectorEnd bounds the region compared a batch at a time; it is clamped to
// whole batches inside buf, so any value is memory safe.
type ScanFunc func(buf []byte, n Needles, vectorEnd int) (pos int, near, far uint64)

// Binding ties a scan function to the batch geometry it was written for.
// Bindings are immutable values and may be shared freely.
type Binding struct {
	// Backend is the resolved backend, never Auto.
	Backend Backend

	// Arity is the number of needles the binding was selected for.
	Arity int

	// Batch is the number of bytes consumed per vector step. Scan windows
	// must start at multiples of Batch for cached bit positions to map back
	// to haystack offsets.
	Batch int

	// Stride is the number of bytes covered by the near mask. Equal to Batch
	// except for the two-mask CSV binding.
	Stride int

	// Scan is the scan function.
	Scan ScanFunc
}

// VectorEnd returns the end of the whole-batch region of a haystack of
// length n. A binding without a batch size, such as the zero value, has no
// such region.
func (b Binding) VectorEnd(n int) int {
	if b.Batch <= 0 {
		return 0
	}
	return n / b.Batch * b.Batch
}

var detected = detect()

// Detect returns the most capable backend supported by the host CPU.
// CPU features are read once at package initialization.
func Detect() Backend {
	return detected
}

// Select binds the best available backend for the given needle count.
func Select(arity int) Binding {
	return Bind(Auto, arity)
}

// Bind returns the binding of backend for the given needle count.
// Auto resolves through Detect. Panics on an unknown backend or an arity
// outside [1, 3]; both are programming errors.
func Bind(backend Backend, arity int) Binding {
	if arity < 1 || arity > 3 {
		panic(fmt.Sprintf("simd: arity %d out of range [1, 3]", arity))
	}
	switch backend = resolve(backend); backend {
	case Wide:
		return tierBinding(Wide, wideTier, arity)
	case Narrow:
		return tierBinding(Narrow, narrowTier, arity)
	default:
		return Binding{Backend: Scalar, Arity: arity, Batch: 1, Stride: 1, Scan: scanScalar}
	}
}

// BindCSV returns the three needle binding whose second and third needles
// are fixed to line feed and double quote, and whose vector step covers two
// batches at once.
func BindCSV(backend Backend) Binding {
	switch backend = resolve(backend); backend {
	case Wide:
		return csvBinding(Wide, wideTier)
	case Narrow:
		return csvBinding(Narrow, narrowTier)
	default:
		return Binding{Backend: Scalar, Arity: 3, Batch: 1, Stride: 1, Scan: scanScalar}
	}
}

func tierBinding(b Backend, t tier, arity int) Binding {
	return Binding{Backend: b, Arity: arity, Batch: t.size(), Stride: t.size(), Scan: t.scan}
}

func csvBinding(b Backend, t tier) Binding {
	return Binding{Backend: b, Arity: 3, Batch: 2 * t.size(), Stride: t.size(), Scan: t.scanCSV}
}

func resolve(b Backend) Backend {
	switch b {
	case Auto:
		return Detect()
	case Scalar, Narrow, Wide:
		return b
	}
	panic(fmt.Sprintf("simd: unknown backend %d", uint8(b)))
}
