package simd

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tiers = map[string]tier{
	"wide":   wideTier,
	"narrow": narrowTier,
}

func TestTierGeometry(t *testing.T) {
	for name, tr := range tiers {
		assert.Equal(t, 64, tr.size(), name)
	}
}

// TestTierScan checks the first match and the cached mask of a single scan
// against a linear reference, for sizes around the batch boundaries.
func TestTierScan(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	needleSets := []Needles{
		NewNeedles(','),
		NewNeedles(',', '\n'),
		NewNeedles(',', '\n', '"'),
		NewNeedles('z', 'z', 'z'),
	}
	sizes := []int{0, 1, 15, 16, 17, 31, 32, 33, 63, 64, 65, 127, 128, 129, 200, 1000}

	for name, tr := range tiers {
		for _, n := range needleSets {
			for _, size := range sizes {
				for _, alphabet := range []string{"abcdefgh,", "a,\n\"", "abcdefghijklmnopqrstuvwxyz0123456789,"} {
					buf := randomText(r, size, alphabet)
					t.Run(fmt.Sprintf("%s/n%d/%d/%d", name, n.Len(), size, len(alphabet)), func(t *testing.T) {
						checkScan(t, tr.size(), tr.scan, buf, n)
					})
				}
			}
		}
	}
}

func checkScan(t *testing.T, batch int, scan ScanFunc, buf []byte, n Needles) {
	t.Helper()
	vectorEnd := len(buf) / batch * batch
	matches := refMatches(buf, n)
	pos, near, far := scan(buf, n, vectorEnd)
	assert.Zero(t, far)

	if len(matches) == 0 {
		assert.Equal(t, -1, pos)
		assert.Zero(t, near)
		return
	}
	require.Equal(t, matches[0], pos)
	if len(buf) < batch || pos >= vectorEnd {
		assert.Zero(t, near, "fallback path must not cache")
		return
	}
	start := pos - pos%batch
	assert.Equal(t, expectedMask(matches, start, pos+1, start+batch), near)
}

func TestTierScanFirstMatchPastFirstBatch(t *testing.T) {
	// 69 bytes, first needle at 64: the only match sits in the scalar tail.
	buf := []byte("0123456789012345678901234567890123456789012345678901234567890123,5,\"\n")
	buf = buf[:69]
	for name, tr := range tiers {
		pos, near, far := tr.scan(buf, NewNeedles(','), 64)
		assert.Equal(t, 64, pos, name)
		assert.Zero(t, near|far, name)
	}
}

func TestTierScanClampsVectorEnd(t *testing.T) {
	buf := make([]byte, 100)
	buf[99] = ','
	n := NewNeedles(',')
	for name, tr := range tiers {
		for _, ve := range []int{-64, 0, 10, 64, 99, 100, 128, 1 << 20} {
			pos, _, _ := tr.scan(buf, n, ve)
			assert.Equal(t, 99, pos, "%s vectorEnd=%d", name, ve)
		}
	}
}

func TestClampVectorEnd(t *testing.T) {
	tests := []struct {
		n, size, vectorEnd, want int
	}{
		{100, 64, 64, 64},
		{100, 64, 100, 64},
		{100, 64, 1000, 64},
		{100, 64, -1, 0},
		{100, 64, 63, 0},
		{128, 64, 128, 128},
		{255, 128, 255, 128},
	}
	for _, tt := range tests {
		got := clampVectorEnd(tt.n, tt.size, tt.vectorEnd)
		assert.Equal(t, tt.want, got, "clampVectorEnd(%d, %d, %d)", tt.n, tt.size, tt.vectorEnd)
	}
}

func TestTierScanCSV(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 8))
	sizes := []int{0, 1, 63, 64, 65, 127, 128, 129, 255, 256, 257, 1000}

	for name, tr := range tiers {
		half := tr.size()
		batch := 2 * half
		for _, delim := range []byte{',', ';', '\t'} {
			n := NewNeedles(delim, '\n', '"')
			for _, size := range sizes {
				for _, alphabet := range []string{"abcdefghijklmnop,;\t", "a,;\t\n\"", "abcdefghijklmnopqrstuvwxyz"} {
					buf := randomText(r, size, alphabet)
					vectorEnd := len(buf) / batch * batch
					matches := refMatches(buf, n)
					pos, near, far := tr.scanCSV(buf, n, vectorEnd)

					if len(matches) == 0 {
						assert.Equal(t, -1, pos)
						assert.Zero(t, near|far)
						continue
					}
					require.Equal(t, matches[0], pos, "%s size=%d", name, size)
					if len(buf) < batch || pos >= vectorEnd {
						assert.Zero(t, near|far)
						continue
					}
					start := pos - pos%batch
					assert.Equal(t, expectedMask(matches, start, pos+1, start+half), near, "%s near", name)
					assert.Equal(t, expectedMask(matches, start+half, max(pos+1, start+half), start+batch), far, "%s far", name)
				}
			}
		}
	}
}

func TestTierScanCSVFarOnly(t *testing.T) {
	buf := make([]byte, 128)
	for i := range buf {
		buf[i] = 'x'
	}
	buf[70] = ','
	buf[71] = '"'
	buf[127] = '\n'
	for name, tr := range tiers {
		pos, near, far := tr.scanCSV(buf, NewNeedles(',', '\n', '"'), 128)
		assert.Equal(t, 70, pos, name)
		assert.Zero(t, near, name)
		assert.Equal(t, uint64(1<<7|1<<63), far, name)
	}
}
