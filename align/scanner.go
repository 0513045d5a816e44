package align

import (
	"fmt"

	"github.com/katalvlaran/seqalign/cost"
)

// PrefixCosts returns the last row of the alignment DP for x against y,
// keeping only two rows live.
//
//   - Forward: out[j] = min cost of aligning all of x with y[0:j).
//   - Reverse: out[j] = min cost of aligning all of x with y[n-j:n),
//     i.e. the same recurrence over reversed x and reversed y. The reversal is
//     done by indexing from the end; neither input is copied.
//
// len(out) == len(y)+1 and, for Forward, out[len(y)] equals
// Quadratic(x, y, m).Cost.
//
// Complexity: O(len(x)·len(y)) time, O(len(y)) memory independent of len(x).
func PrefixCosts(x, y []byte, m *cost.Model, dir Direction) ([]int, error) {
	if dir != Forward && dir != Reverse {
		return nil, fmt.Errorf("%v: %w", dir, ErrBadOption)
	}
	if err := checkInputs(x, y, m); err != nil {
		return nil, err
	}

	prev := make([]int, len(y)+1)
	cur := make([]int, len(y)+1)

	return scan(x, y, m, dir, prev, cur), nil
}

// scan runs the rolling two-row recurrence using the caller's buffers
// (each at least len(y)+1 long) and returns the buffer holding the final row,
// trimmed to len(y)+1.
func scan(x, y []byte, m *cost.Model, dir Direction, prev, cur []int) []int {
	lx, ly := len(x), len(y)
	delta := m.Gap()
	prev, cur = prev[:ly+1], cur[:ly+1]

	for j := 0; j <= ly; j++ {
		prev[j] = j * delta
	}
	for i := 1; i <= lx; i++ {
		cur[0] = i * delta
		if dir == Forward {
			xi := x[i-1]
			for j := 1; j <= ly; j++ {
				cur[j] = min(prev[j-1]+m.At(xi, y[j-1]), prev[j]+delta, cur[j-1]+delta)
			}
		} else {
			xi := x[lx-i]
			for j := 1; j <= ly; j++ {
				cur[j] = min(prev[j-1]+m.At(xi, y[ly-j]), prev[j]+delta, cur[j-1]+delta)
			}
		}
		prev, cur = cur, prev
	}

	return prev
}
