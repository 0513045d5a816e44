package align

import (
	"fmt"

	"github.com/katalvlaran/seqalign/cost"
)

// Quadratic — full-table global alignment with traceback.
//
// Algorithm Outline:
//  1. Let m = len(x), n = len(y). Allocate a flat (m+1)×(n+1) table D,
//     row-major (offset = i*(n+1) + j).
//  2. Initialize D[i][0] = i·δ and D[0][j] = j·δ.
//  3. For i = 1..m, j = 1..n:
//     D[i][j] = min(D[i-1][j-1] + α(x[i-1],y[j-1]), D[i-1][j] + δ, D[i][j-1] + δ)
//  4. cost = D[m][n].
//  5. Walk back from (m,n) to (0,0). At each cell pick the first predecessor
//     that reproduces D[i][j] in the order diagonal, up, left. Row 0 only
//     allows left, column 0 only allows up.
//
// Complexity:
//
//	Time   = O(m·n)
//	Memory = O(m·n), released when the call returns.
//
// Errors:
//   - ErrNilModel          — m is nil.
//   - cost.ErrAlphabetMismatch — x or y holds a symbol outside the alphabet.
func Quadratic(x, y []byte, m *cost.Model) (Result, error) {
	if err := checkInputs(x, y, m); err != nil {
		return Result{}, err
	}

	bl := newBuilder(len(x) + len(y))
	total := quadratic(x, y, m, bl)

	return bl.result(total), nil
}

// quadratic fills the table for x,y, appends the traceback to bl in
// left-to-right order and returns the optimal cost. Inputs are pre-checked.
func quadratic(x, y []byte, m *cost.Model, bl *builder) int {
	rows, cols := len(x)+1, len(y)+1
	delta := m.Gap()
	dp := make([]int, rows*cols)

	// Initialize first column and first row
	for i := 0; i < rows; i++ {
		dp[i*cols] = i * delta
	}
	for j := 1; j < cols; j++ {
		dp[j] = j * delta
	}

	// Fill DP
	for i := 1; i < rows; i++ {
		xi := x[i-1]
		cur, prev := i*cols, (i-1)*cols
		for j := 1; j < cols; j++ {
			dp[cur+j] = min(
				dp[prev+j-1]+m.At(xi, y[j-1]),
				dp[prev+j]+delta,
				dp[cur+j-1]+delta,
			)
		}
	}
	total := dp[rows*cols-1]

	// Backtrack: diagonal > up (gap in y) > left (gap in x).
	mark := len(bl.a)
	i, j := len(x), len(y)
	for i > 0 || j > 0 {
		switch {
		case i == 0:
			bl.push(cost.Gap, y[j-1])
			j--
		case j == 0:
			bl.push(x[i-1], cost.Gap)
			i--
		default:
			here := dp[i*cols+j]
			switch here {
			case dp[(i-1)*cols+j-1] + m.At(x[i-1], y[j-1]):
				bl.push(x[i-1], y[j-1])
				i--
				j--
			case dp[(i-1)*cols+j] + delta:
				bl.push(x[i-1], cost.Gap)
				i--
			default:
				bl.push(cost.Gap, y[j-1])
				j--
			}
		}
	}
	bl.reverseFrom(mark)

	return total
}

// checkInputs validates the model and both sequences before any DP work.
func checkInputs(x, y []byte, m *cost.Model) error {
	if m == nil {
		return ErrNilModel
	}
	if err := m.Check(x); err != nil {
		return fmt.Errorf("align: first sequence: %w", err)
	}
	if err := m.Check(y); err != nil {
		return fmt.Errorf("align: second sequence: %w", err)
	}

	return nil
}
