// Package seqio reads alignment problems and writes alignment results in the
// CSCI-570 project file formats.
//
// Input file (blank lines ignored, surrounding space trimmed):
//
//	ACTG        <- base string of the first sequence
//	3           <- zero or more self-insertion indices
//	6
//	TACG        <- base string of the second sequence
//	1           <- zero or more self-insertion indices
//
// Each index i splices a full copy of the current string right after
// position i, so k indices turn a base of length L into a sequence of length
// L·2^k (see Expand).
//
// Output file, five newline-terminated lines:
//
//	1296         <- alignment cost
//	_A_CA...     <- first aligned row
//	TATTA...     <- second aligned row
//	3.720        <- elapsed milliseconds
//	54880        <- memory in KB
package seqio
