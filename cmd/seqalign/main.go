// Command seqalign aligns DNA sequence pairs from CSCI-570 style input files
// with either the quadratic (basic) or the Hirschberg (efficient) engine and
// compares batches of results.
//
//	seqalign basic     input1.txt out/output1.txt
//	seqalign efficient input1.txt out/output1.txt
//	seqalign batch --method efficient inputs/ outputs/
//	seqalign expand ACTG 3 6 1
//	seqalign report basic-out/ efficient-out/
//
// Settings come from flags, SEQALIGN_* environment variables and an optional
// YAML file (--config) holding gap, alphabet and a costs map such as
// {AC: 110, AG: 48, ...}.
package main

import (
	"context"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
