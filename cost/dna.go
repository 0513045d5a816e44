// SPDX-License-Identifier: MIT

package cost

// DNAAlphabet is the nucleotide alphabet in table order.
const DNAAlphabet = "ACGT"

// DNAGap is the gap penalty delta of the CSCI-570 project model.
const DNAGap = 30

// dnaTable holds the CSCI-570 mismatch costs in DNAAlphabet order.
var dnaTable = [][]int{
	//  A    C    G    T
	{0, 110, 48, 94},  // A
	{110, 0, 118, 48}, // C
	{48, 118, 0, 110}, // G
	{94, 48, 110, 0},  // T
}

var dna = mustNew(DNAAlphabet, dnaTable, DNAGap)

// DNA returns the shared CSCI-570 nucleotide model (delta = 30).
// The returned model is immutable and safe for concurrent use.
func DNA() *Model { return dna }

// mustNew panics on construction failure; only for package-level literals.
func mustNew(alphabet string, table [][]int, gap int) *Model {
	m, err := New(alphabet, table, gap)
	if err != nil {
		panic(err)
	}

	return m
}
