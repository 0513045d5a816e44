package main

import (
	"os"
	"path/filepath"
	"regexp"
	"runtime"

	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/sync/errgroup"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/seqalign/align"
)

// inputName matches input<N>.txt; the output keeps the same N.
var inputName = regexp.MustCompile(`^input(\d+)\.txt$`)

func newBatchCmd(a *app) *cobra.Command {
	var method string

	batchCmd := &cobra.Command{
		Use:   "batch <input-dir> <output-dir>",
		Short: "Align every input<N>.txt in a directory into output<N>.txt",
		Long: `Align every input<N>.txt in a directory into output<N>.txt.

Files are processed by --workers goroutines. Memory figures are taken from
the shared Go heap, so use --workers 1 when they matter.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := align.ParseMethod(method)
			if err != nil {
				return err
			}
			model, err := a.cfg.Model()
			if err != nil {
				return err
			}
			inDir, outDir := args[0], args[1]

			des, err := os.ReadDir(inDir)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			opts := a.cfg.alignOptions(m)
			sem := make(chan struct{}, a.cfg.Workers)
			g := &errgroup.T{}
			n := 0
			for _, de := range des {
				match := inputName.FindStringSubmatch(de.Name())
				if de.IsDir() || match == nil {
					continue
				}
				in := filepath.Join(inDir, de.Name())
				out := filepath.Join(outDir, "output"+match[1]+".txt")
				n++
				g.Go(func() error {
					sem <- struct{}{}
					defer func() { <-sem }()
					return alignFile(ctx, model, opts, in, out)
				})
			}
			err = g.Wait()
			ctxlog.Logger(ctx).Info("batch done", "method", m.String(), "files", n, "workers", a.cfg.Workers)

			return err
		},
	}

	batchCmd.Flags().StringVarP(&method, "method", "m", align.Efficient.String(), "alignment engine: basic or efficient")
	batchCmd.Flags().Int("workers", runtime.GOMAXPROCS(0), "number of files aligned concurrently")
	_ = a.v.BindPFlag("workers", batchCmd.Flags().Lookup("workers"))

	return batchCmd
}
