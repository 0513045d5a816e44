package align_test

import (
	"testing"

	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/cost"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestProperties runs the alignment invariants over generated pairs:
// cross-engine agreement, structural validity and cost symmetry.
func TestProperties(t *testing.T) {
	m := cost.DNA()
	for i, p := range randomPairs(42, 200, 40) {
		q, err := align.Quadratic(p.x, p.y, m)
		require.NoError(t, err)
		h, err := align.Hirschberg(p.x, p.y, m)
		require.NoError(t, err)

		require.Equal(t, q.Cost, h.Cost, "pair %d: %s / %s", i, p.x, p.y)
		requireValid(t, p.x, p.y, q)
		requireValid(t, p.x, p.y, h)

		swapped, err := align.Hirschberg(p.y, p.x, m)
		require.NoError(t, err)
		assert.Equal(t, h.Cost, swapped.Cost, "cost must be symmetric for pair %d", i)
	}
}

// TestProperties_SelfAlignment: aligning x with itself costs 0 and has no gaps.
func TestProperties_SelfAlignment(t *testing.T) {
	r := newRand(99)
	for _, n := range []int{0, 1, 2, 3, 17, 128} {
		x := randomSeq(r, n)
		for _, method := range []align.Method{align.Basic, align.Efficient} {
			res, err := align.Align(x, x, cost.DNA(), align.WithMethod(method))
			require.NoError(t, err)
			assert.Equal(t, 0, res.Cost, "%v n=%d", method, n)
			assert.Equal(t, string(x), string(res.A), "%v n=%d", method, n)
			assert.Equal(t, string(x), string(res.B), "%v n=%d", method, n)
		}
	}
}

// TestAlign_Dispatch checks method selection and option validation.
func TestAlign_Dispatch(t *testing.T) {
	x, y := []byte("ACTGACTGACTG"), []byte("TACGTACGTACG")

	basic, err := align.Align(x, y, cost.DNA(), align.WithMethod(align.Basic))
	require.NoError(t, err)
	q, err := align.Quadratic(x, y, cost.DNA())
	require.NoError(t, err)
	assert.Equal(t, q, basic)

	eff, err := align.Align(x, y, cost.DNA())
	require.NoError(t, err)
	h, err := align.Hirschberg(x, y, cost.DNA())
	require.NoError(t, err)
	assert.Equal(t, h, eff, "Efficient is the default method")

	_, err = align.Align(x, y, cost.DNA(), align.WithMethod(align.Method(7)))
	assert.ErrorIs(t, err, align.ErrBadOption)
}

// TestParseMethod maps names to methods and back.
func TestParseMethod(t *testing.T) {
	for _, m := range []align.Method{align.Basic, align.Efficient} {
		got, err := align.ParseMethod(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	_, err := align.ParseMethod("fast")
	assert.ErrorIs(t, err, align.ErrBadOption)
}
