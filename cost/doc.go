// SPDX-License-Identifier: MIT

// Package cost defines the substitution-cost model consumed by every
// alignment engine in seqalign.
//
// A Model is an immutable pairing of:
//   - a finite alphabet of single-byte symbols (e.g. "ACGT"),
//   - a square substitution table alpha(a,b) ≥ 0 with alpha(a,a) = 0 and
//     alpha(a,b) = alpha(b,a),
//   - a single gap penalty delta ≥ 0.
//
// The table is stored as a flat row-major buffer (offset = i*k + j) behind a
// 256-entry symbol index, so a lookup is two array reads. Models are
// validated once at construction; after that they are read-only and safe to
// share across goroutines and repeated alignments.
//
// Usage:
//
//	m := cost.DNA() // CSCI-570 table, delta = 30
//	c, err := m.Cost('A', 'C') // 110, nil
//
//	custom, err := cost.FromPairs("AB", map[string]int{"AB": 3}, 2)
//
// Errors:
//   - ErrCostLookup       - a symbol pair has no entry (alphabet mismatch
//     between input and model, or an incomplete pair map).
//   - ErrAlphabetMismatch - a sequence contains a symbol outside the alphabet.
//   - ErrEmptyAlphabet, ErrDuplicateSymbol, ErrReservedSymbol, ErrBadShape,
//     ErrNegativeCost, ErrNonZeroDiagonal, ErrAsymmetric - construction-time
//     configuration defects.
package cost
