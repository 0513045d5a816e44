package align_test

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/cost"
	"github.com/stretchr/testify/require"
)

// newRand returns a PCG source with a fixed seed.
func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// randomSeq returns a deterministic DNA sequence of length n.
func randomSeq(r *rand.Rand, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = cost.DNAAlphabet[r.IntN(len(cost.DNAAlphabet))]
	}
	return out
}

// seqPair is one generated input pair.
type seqPair struct {
	x, y []byte
}

// randomPairs builds count pairs with lengths in [0, maxLen] from a fixed seed,
// including the empty and single-symbol corners.
func randomPairs(seed uint64, count, maxLen int) []seqPair {
	r := newRand(seed)
	pairs := []seqPair{
		{nil, nil},
		{[]byte("A"), nil},
		{nil, []byte("G")},
		{[]byte("T"), []byte("T")},
	}
	for i := 0; i < count; i++ {
		pairs = append(pairs, seqPair{
			x: randomSeq(r, r.IntN(maxLen+1)),
			y: randomSeq(r, r.IntN(maxLen+1)),
		})
	}
	return pairs
}

// requireValid asserts every structural alignment invariant.
func requireValid(t *testing.T, x, y []byte, res align.Result) {
	t.Helper()
	require.Len(t, res.B, len(res.A), "rows must have equal length")
	require.GreaterOrEqual(t, len(res.A), max(len(x), len(y)))
	for i := range res.A {
		require.False(t, res.A[i] == cost.Gap && res.B[i] == cost.Gap, "double gap at column %d", i)
	}
	require.Equal(t, string(x), strings.ReplaceAll(string(res.A), "_", ""), "first row must spell x")
	require.Equal(t, string(y), strings.ReplaceAll(string(res.B), "_", ""), "second row must spell y")
	require.NoError(t, res.Verify(x, y, cost.DNA()))
}

// expand mirrors the self-insertion input encoding for fixtures.
func expand(base string, indices ...int) []byte {
	s := base
	for _, i := range indices {
		s = s[:i+1] + s + s[i+1:]
	}
	return []byte(s)
}
