// SPDX-License-Identifier: MIT

package cost

import (
	"fmt"
	"strings"
)

// Gap is the marker written into aligned sequences where a symbol faces a gap.
const Gap byte = '_'

// noSymbol marks an index slot for a byte outside the alphabet.
const noSymbol = -1

// Model is an immutable substitution-cost table plus a linear gap penalty.
//   - alphabet lists the symbols in table order.
//   - index maps a byte to its row/column in table, or noSymbol.
//   - table is k×k row-major: alpha(a,b) = table[index[a]*k + index[b]].
type Model struct {
	alphabet []byte
	index    [256]int16
	table    []int
	k        int
	gap      int
}

// New builds a Model from an alphabet and a k×k table whose rows and columns
// follow the alphabet order.
//
// Implementation:
//   - Stage 1: validate the alphabet (non-empty, unique, no gap marker).
//   - Stage 2: validate the table shape and copy it into a flat buffer.
//   - Stage 3: enforce non-negativity, zero diagonal and symmetry.
//
// Complexity: O(k²) time and space.
func New(alphabet string, table [][]int, gap int) (*Model, error) {
	m, err := newModel(alphabet, gap)
	if err != nil {
		return nil, err
	}
	if len(table) != m.k {
		return nil, fmt.Errorf("%d rows for %d symbols: %w", len(table), m.k, ErrBadShape)
	}
	for i, row := range table {
		if len(row) != m.k {
			return nil, fmt.Errorf("row %q has %d columns: %w", m.alphabet[i], len(row), ErrBadShape)
		}
		copy(m.table[i*m.k:(i+1)*m.k], row)
	}
	if err = m.validate(); err != nil {
		return nil, err
	}

	return m, nil
}

// FromPairs builds a Model from a map keyed by two-symbol strings, e.g.
// {"AC": 110}. One orientation per pair is enough; when both "AC" and "CA"
// are present they must agree. Missing diagonal entries default to zero.
// An off-diagonal pair absent in both orientations yields ErrCostLookup.
func FromPairs(alphabet string, pairs map[string]int, gap int) (*Model, error) {
	m, err := newModel(alphabet, gap)
	if err != nil {
		return nil, err
	}

	seen := make([]bool, m.k*m.k)
	for key, c := range pairs {
		if len(key) != 2 {
			return nil, fmt.Errorf("pair key %q: %w", key, ErrBadShape)
		}
		i, j := m.index[key[0]], m.index[key[1]]
		if i == noSymbol || j == noSymbol {
			return nil, fmt.Errorf("pair key %q: %w", key, ErrAlphabetMismatch)
		}
		off := int(i)*m.k + int(j)
		m.table[off] = c
		seen[off] = true
	}

	// Complete missing orientations from their mirror.
	for i := 0; i < m.k; i++ {
		seen[i*m.k+i] = true
		for j := 0; j < m.k; j++ {
			ij, ji := i*m.k+j, j*m.k+i
			switch {
			case seen[ij]:
			case seen[ji]:
				m.table[ij] = m.table[ji]
				seen[ij] = true
			default:
				return nil, fmt.Errorf("pair (%c,%c): %w", m.alphabet[i], m.alphabet[j], ErrCostLookup)
			}
		}
	}
	if err = m.validate(); err != nil {
		return nil, err
	}

	return m, nil
}

// newModel validates the alphabet and gap and allocates an empty table.
func newModel(alphabet string, gap int) (*Model, error) {
	if len(alphabet) == 0 {
		return nil, ErrEmptyAlphabet
	}
	if gap < 0 {
		return nil, fmt.Errorf("gap penalty %d: %w", gap, ErrNegativeCost)
	}

	m := &Model{
		alphabet: []byte(alphabet),
		k:        len(alphabet),
		gap:      gap,
	}
	for i := range m.index {
		m.index[i] = noSymbol
	}
	for i, s := range m.alphabet {
		if s == Gap {
			return nil, ErrReservedSymbol
		}
		if m.index[s] != noSymbol {
			return nil, fmt.Errorf("symbol %q: %w", s, ErrDuplicateSymbol)
		}
		m.index[s] = int16(i)
	}
	m.table = make([]int, m.k*m.k)

	return m, nil
}

// validate enforces the table invariants in a fixed order:
// negativity -> diagonal -> symmetry.
func (m *Model) validate() error {
	for i := 0; i < m.k; i++ {
		for j := 0; j < m.k; j++ {
			if c := m.table[i*m.k+j]; c < 0 {
				return fmt.Errorf("pair (%c,%c)=%d: %w", m.alphabet[i], m.alphabet[j], c, ErrNegativeCost)
			}
		}
	}
	for i := 0; i < m.k; i++ {
		if m.table[i*m.k+i] != 0 {
			return fmt.Errorf("symbol %q: %w", m.alphabet[i], ErrNonZeroDiagonal)
		}
	}
	for i := 0; i < m.k; i++ {
		for j := i + 1; j < m.k; j++ {
			if m.table[i*m.k+j] != m.table[j*m.k+i] {
				return fmt.Errorf("pair (%c,%c): %w", m.alphabet[i], m.alphabet[j], ErrAsymmetric)
			}
		}
	}

	return nil
}

// Cost returns alpha(a,b). It fails with ErrCostLookup when either symbol is
// outside the alphabet.
func (m *Model) Cost(a, b byte) (int, error) {
	i, j := m.index[a], m.index[b]
	if i == noSymbol || j == noSymbol {
		return 0, fmt.Errorf("pair (%c,%c): %w", a, b, ErrCostLookup)
	}

	return m.table[int(i)*m.k+int(j)], nil
}

// At returns alpha(a,b) without the alphabet check. Both symbols must belong
// to the alphabet; run Check on the sequences first. Used by the DP inner loops.
func (m *Model) At(a, b byte) int {
	return m.table[int(m.index[a])*m.k+int(m.index[b])]
}

// Gap returns the linear gap penalty delta.
func (m *Model) Gap() int { return m.gap }

// Alphabet returns the model symbols in table order.
func (m *Model) Alphabet() string { return string(m.alphabet) }

// Contains reports whether s is an alphabet symbol.
func (m *Model) Contains(s byte) bool { return m.index[s] != noSymbol }

// Check verifies that every symbol of seq belongs to the alphabet.
// It reports the first offending position with ErrAlphabetMismatch.
//
// Complexity: O(len(seq)).
func (m *Model) Check(seq []byte) error {
	for pos, s := range seq {
		if m.index[s] == noSymbol {
			return fmt.Errorf("symbol %q at position %d: %w", s, pos, ErrAlphabetMismatch)
		}
	}

	return nil
}

// Pairs exports the table as a two-symbol keyed map covering every ordered
// pair. FromPairs(m.Alphabet(), m.Pairs(), m.Gap()) rebuilds an equal model.
func (m *Model) Pairs() map[string]int {
	out := make(map[string]int, m.k*m.k)
	var sb strings.Builder
	for i, a := range m.alphabet {
		for j, b := range m.alphabet {
			sb.Reset()
			sb.WriteByte(a)
			sb.WriteByte(b)
			out[sb.String()] = m.table[i*m.k+j]
		}
	}

	return out
}
