// Package seqalign is a toolkit for optimal global alignment of two
// sequences under a substitution-cost table and a linear gap penalty.
//
// What is inside?
//
//	cost/         — alphabet, substitution table, gap penalty, CSCI-570 DNA model
//	align/        — quadratic DP + traceback, linear-space score scans,
//	                Hirschberg divide and conquer, re-scoring and verification
//	seqio/        — template expansion, input and five-line output files
//	measure/      — elapsed time and peak heap growth of one run
//	report/       — basic vs efficient comparison of output directories
//	cmd/seqalign/ — command line front end
//
// Both engines return the same optimal cost. The quadratic engine keeps the
// whole (m+1)×(n+1) table; Hirschberg keeps four rows of length n+1 plus the
// alignment being built, so it handles inputs whose table would not fit in
// memory.
//
// Quick start:
//
//	res, err := align.Align([]byte("ACTG"), []byte("TGC"), cost.DNA())
//	// res.Cost == 90, res.A == "ACTG_", res.B == "__TGC"
package seqalign
