package main

import (
	"context"
	"fmt"

	"cloudeng.io/logging/ctxlog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/cost"
	"github.com/katalvlaran/seqalign/measure"
	"github.com/katalvlaran/seqalign/seqio"
)

// newAlignCmd creates the "basic" or "efficient" subcommand.
func newAlignCmd(a *app, method align.Method) *cobra.Command {
	short := "Align two sequences by filling the full cost table"
	if method == align.Efficient {
		short = "Align two sequences in linear space with Hirschberg's divide and conquer"
	}

	return &cobra.Command{
		Use:   method.String() + " <input-file> <output-file>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := a.cfg.Model()
			if err != nil {
				return err
			}
			return alignFile(cmd.Context(), model, a.cfg.alignOptions(method), args[0], args[1])
		},
	}
}

// alignFile aligns the pair described by the input file at in and writes the
// result, with its time and memory figures, to out.
func alignFile(ctx context.Context, model *cost.Model, opts []align.Option, in, out string) error {
	logger := ctxlog.Logger(ctx).With("input", in)

	input, err := seqio.ReadInputFile(in)
	if err != nil {
		return err
	}
	x, y, err := input.Sequences()
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	logger.Debug("expanded", "m", len(x), "n", len(y))

	var res align.Result
	stats, err := measure.Run(func() error {
		var err error
		res, err = align.Align(x, y, model, opts...)
		return err
	})
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	if err := res.Verify(x, y, model); err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}

	logger.Info("aligned",
		"cost", res.Cost,
		"elapsed", stats.Elapsed,
		"peak_kb", stats.PeakKB,
		"output", out,
	)

	return seqio.WriteOutputFile(out, seqio.Output{
		Cost:     res.Cost,
		A:        string(res.A),
		B:        string(res.B),
		Elapsed:  stats.Elapsed,
		MemoryKB: stats.PeakKB,
	})
}
