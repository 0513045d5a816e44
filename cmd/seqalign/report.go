package main

import (
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/seqalign/report"
)

func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report <basic-dir> <efficient-dir>",
		Short: "Compare time, memory and cost of basic and efficient output directories",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var errs errors.M
			basic, err := report.Load(args[0])
			errs.Append(err)
			efficient, err := report.Load(args[1])
			errs.Append(err)

			rows := report.Compare(basic, efficient)
			logger := ctxlog.Logger(cmd.Context())
			for _, r := range rows {
				if !r.CostsAgree() {
					logger.Warn("cost mismatch", "case", r.Index, "basic", r.BasicCost, "efficient", r.EfficientCost)
				}
			}
			errs.Append(report.Render(cmd.OutOrStdout(), rows))

			return errs.Err()
		},
	}
}
