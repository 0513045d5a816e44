package align_test

import (
	"testing"

	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/cost"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestQuadratic_BaseCases covers empty inputs on either side.
func TestQuadratic_BaseCases(t *testing.T) {
	m := cost.DNA()

	res, err := align.Quadratic(nil, nil, m)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Cost)
	assert.Empty(t, res.A)
	assert.Empty(t, res.B)

	res, err = align.Quadratic([]byte("A"), nil, m)
	require.NoError(t, err)
	assert.Equal(t, m.Gap(), res.Cost)
	assert.Equal(t, "A", string(res.A))
	assert.Equal(t, "_", string(res.B))

	res, err = align.Quadratic(nil, []byte("CG"), m)
	require.NoError(t, err)
	assert.Equal(t, 2*m.Gap(), res.Cost)
	assert.Equal(t, "__", string(res.A))
	assert.Equal(t, "CG", string(res.B))
}

// TestQuadratic_Identical checks a zero-cost, gap-free self alignment.
func TestQuadratic_Identical(t *testing.T) {
	res, err := align.Quadratic([]byte("ACTG"), []byte("ACTG"), cost.DNA())
	require.NoError(t, err)
	assert.Equal(t, 0, res.Cost)
	assert.Equal(t, "ACTG", string(res.A))
	assert.Equal(t, "ACTG", string(res.B))
}

// TestQuadratic_TwoGapsBeatMismatch: alpha(A,C)=110 > 2·delta=60.
// With diagonal > up > left the gap in y is emitted at the right end.
func TestQuadratic_TwoGapsBeatMismatch(t *testing.T) {
	res, err := align.Quadratic([]byte("A"), []byte("C"), cost.DNA())
	require.NoError(t, err)
	assert.Equal(t, 60, res.Cost)
	assert.Equal(t, "_A", string(res.A))
	assert.Equal(t, "C_", string(res.B))
}

// TestQuadratic_Traceback pins the canonical alignments under the fixed
// predecessor priority.
func TestQuadratic_Traceback(t *testing.T) {
	tests := []struct {
		x, y         string
		cost         int
		wantA, wantB string
	}{
		{"ACTG", "TGC", 90, "ACTG_", "__TGC"},
		{"ACT", "AGT", 60, "A_CT", "AG_T"},
		{"AA", "CC", 120, "__AA", "CC__"},
		{"ACGTAC", "GTTACA", 120, "ACG_TAC_", "__GTTACA"},
	}
	for _, tc := range tests {
		t.Run(tc.x+"/"+tc.y, func(t *testing.T) {
			res, err := align.Quadratic([]byte(tc.x), []byte(tc.y), cost.DNA())
			require.NoError(t, err)
			assert.Equal(t, tc.cost, res.Cost)
			assert.Equal(t, tc.wantA, string(res.A))
			assert.Equal(t, tc.wantB, string(res.B))
			requireValid(t, []byte(tc.x), []byte(tc.y), res)
		})
	}
}

// TestQuadratic_Errors checks nil model and alphabet mismatches.
func TestQuadratic_Errors(t *testing.T) {
	_, err := align.Quadratic([]byte("A"), []byte("A"), nil)
	assert.ErrorIs(t, err, align.ErrNilModel)

	_, err = align.Quadratic([]byte("AXG"), []byte("A"), cost.DNA())
	assert.ErrorIs(t, err, cost.ErrAlphabetMismatch)

	_, err = align.Quadratic([]byte("A"), []byte("acgt"), cost.DNA())
	assert.ErrorIs(t, err, cost.ErrAlphabetMismatch)
}

// TestQuadratic_CustomModel runs a non-DNA alphabet with zero gap cost.
func TestQuadratic_CustomModel(t *testing.T) {
	m, err := cost.New("XY", [][]int{{0, 5}, {5, 0}}, 0)
	require.NoError(t, err)

	res, err := align.Quadratic([]byte("XYX"), []byte("YXY"), m)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Cost, "free gaps make every alignment cost zero")
	require.NoError(t, res.Verify([]byte("XYX"), []byte("YXY"), m))
}
