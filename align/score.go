package align

import (
	"bytes"
	"fmt"

	"github.com/katalvlaran/seqalign/cost"
)

// Score recomputes the cost of an explicit alignment: δ for every column
// with one gap, α(a,b) otherwise.
//
// Errors:
//   - ErrNilModel       — m is nil.
//   - ErrLengthMismatch — len(a) != len(b).
//   - ErrDoubleGap      — some column is gap against gap.
//   - cost.ErrCostLookup — a symbol pair is absent from the model.
func Score(a, b []byte, m *cost.Model) (int, error) {
	if m == nil {
		return 0, ErrNilModel
	}
	if len(a) != len(b) {
		return 0, fmt.Errorf("%d vs %d: %w", len(a), len(b), ErrLengthMismatch)
	}

	total := 0
	for i := range a {
		switch {
		case a[i] == cost.Gap && b[i] == cost.Gap:
			return 0, fmt.Errorf("column %d: %w", i, ErrDoubleGap)
		case a[i] == cost.Gap || b[i] == cost.Gap:
			total += m.Gap()
		default:
			c, err := m.Cost(a[i], b[i])
			if err != nil {
				return 0, fmt.Errorf("column %d: %w", i, err)
			}
			total += c
		}
	}

	return total, nil
}

// Verify checks that r is a valid alignment of x and y under m:
//  1. equal row lengths and no gap-against-gap column;
//  2. removing gaps from A gives x and from B gives y, in order;
//  3. Score(A, B) == Cost.
//
// The first violated property is returned wrapped in ErrInvalidAlignment.
func (r Result) Verify(x, y []byte, m *cost.Model) error {
	got, err := Score(r.A, r.B, m)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAlignment, err)
	}
	if s := stripGaps(r.A); !bytes.Equal(s, x) {
		return fmt.Errorf("%w: first row spells %q, want %q", ErrInvalidAlignment, s, x)
	}
	if s := stripGaps(r.B); !bytes.Equal(s, y) {
		return fmt.Errorf("%w: second row spells %q, want %q", ErrInvalidAlignment, s, y)
	}
	if got != r.Cost {
		return fmt.Errorf("%w: reported cost %d, rescored %d", ErrInvalidAlignment, r.Cost, got)
	}

	return nil
}

// stripGaps returns row without gap markers.
func stripGaps(row []byte) []byte {
	out := make([]byte, 0, len(row))
	for _, c := range row {
		if c != cost.Gap {
			out = append(out, c)
		}
	}

	return out
}
