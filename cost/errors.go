// SPDX-License-Identifier: MIT

package cost

import "errors"

// Every message is prefixed with "cost: ". Callers match with errors.Is;
// context (symbols, positions) is attached with fmt.Errorf("...: %w", ErrX).
var (
	// ErrCostLookup indicates that a symbol pair has no substitution entry.
	ErrCostLookup = errors.New("cost: no substitution cost for symbol pair")

	// ErrAlphabetMismatch indicates a sequence symbol outside the model alphabet.
	ErrAlphabetMismatch = errors.New("cost: symbol not in model alphabet")

	// ErrEmptyAlphabet is returned when a model is built with no symbols.
	ErrEmptyAlphabet = errors.New("cost: alphabet is empty")

	// ErrDuplicateSymbol is returned when the alphabet lists a symbol twice.
	ErrDuplicateSymbol = errors.New("cost: duplicate alphabet symbol")

	// ErrReservedSymbol is returned when the gap marker is used as a symbol.
	ErrReservedSymbol = errors.New("cost: gap marker cannot be an alphabet symbol")

	// ErrBadShape indicates the table is not k×k for an alphabet of size k,
	// or a pair key is not exactly two symbols long.
	ErrBadShape = errors.New("cost: substitution table has invalid shape")

	// ErrNegativeCost indicates a negative substitution cost or gap penalty.
	ErrNegativeCost = errors.New("cost: costs must be non-negative")

	// ErrNonZeroDiagonal indicates alpha(a,a) != 0 for some symbol a.
	ErrNonZeroDiagonal = errors.New("cost: self-substitution cost must be zero")

	// ErrAsymmetric indicates alpha(a,b) != alpha(b,a) for some pair.
	ErrAsymmetric = errors.New("cost: substitution table is not symmetric")
)
