//go:build !goexperiment.simd || !amd64 || purego

package simd

// vectors is the per-scan compare state of a tier.
type vectors struct {
	words words
}

func newVectors(_ tier, a, b, c byte) vectors {
	return vectors{words: newWords(a, b, c)}
}

// batchMask returns one bit per byte of batch, set where the byte equals a
// needle. len(batch) must equal t.size().
func (v *vectors) batchMask(t tier, batch []byte) uint64 {
	return swarBatchMask(t, batch, v.words)
}

func (v *vectors) done() {}
