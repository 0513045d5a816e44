package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/seqalign/seqio"
)

func newExpandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "expand <base> [index...]",
		Short: "Print the sequence generated from a base string and insertion indices",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			indices := make([]int, 0, len(args)-1)
			for _, arg := range args[1:] {
				i, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("index %q: %w", arg, err)
				}
				indices = append(indices, i)
			}
			s, err := seqio.Expand(args[0], indices)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
			return err
		},
	}
}
