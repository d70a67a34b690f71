package bufchr

import (
	"math/rand/v2"
	"testing"

	"github.com/coregx/ahocorasick"
	"github.com/stretchr/testify/require"
)

var allBackends = []Backend{BackendAuto, BackendScalar, BackendNarrow, BackendWide}

type nexter interface {
	Next() (int, bool)
}

// reference is the trivial linear scan every cursor must agree with.
func reference(haystack []byte, needles ...byte) []int {
	var out []int
	for i, c := range haystack {
		for _, n := range needles {
			if c == n {
				out = append(out, i)
				break
			}
		}
	}
	return out
}

// oracle enumerates matches with an Aho-Corasick automaton built from the
// needle bytes, an implementation that shares no code with this package.
func oracle(t testing.TB, haystack []byte, needles ...byte) []int {
	t.Helper()
	seen := make(map[byte]bool, len(needles))
	builder := ahocorasick.NewBuilder()
	for _, n := range needles {
		if !seen[n] {
			seen[n] = true
			builder.AddPattern([]byte{n})
		}
	}
	auto, err := builder.Build()
	require.NoError(t, err)

	var out []int
	for at := 0; at < len(haystack); {
		m := auto.Find(haystack, at)
		if m == nil {
			break
		}
		out = append(out, m.Start)
		at = m.Start + 1
	}
	return out
}

// drain collects every offset of n and checks that exhaustion is permanent.
func drain(t testing.TB, n nexter) []int {
	t.Helper()
	var out []int
	for {
		off, ok := n.Next()
		if !ok {
			require.Equal(t, -1, off)
			break
		}
		out = append(out, off)
	}
	for range 3 {
		off, ok := n.Next()
		require.False(t, ok, "cursor yielded %d after exhaustion", off)
	}
	return out
}

// newCursorFor builds the cursor type matching the needle count.
func newCursorFor(t testing.TB, haystack []byte, backend Backend, needles ...byte) nexter {
	t.Helper()
	config := Config{Backend: backend}
	var (
		n   nexter
		err error
	)
	switch len(needles) {
	case 1:
		n, err = NewWithConfig(haystack, config, needles[0])
	case 2:
		n, err = New2WithConfig(haystack, config, needles[0], needles[1])
	case 3:
		n, err = New3WithConfig(haystack, config, needles[0], needles[1], needles[2])
	default:
		t.Fatalf("unsupported needle count %d", len(needles))
	}
	require.NoError(t, err)
	return n
}

func randomText(r *rand.Rand, n int, alphabet string) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = alphabet[r.IntN(len(alphabet))]
	}
	return buf
}
