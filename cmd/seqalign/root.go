package main

import (
	"strings"

	"cloudeng.io/logging/ctxlog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/cost"
)

// app holds the state shared by every subcommand of one root command.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     Config
}

// newRootCmd builds the command tree around a fresh viper instance so that
// tests can execute independent roots.
func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "seqalign",
		Short: "Align DNA sequence pairs with the basic or the memory-efficient engine",
		Long: `Align DNA sequence pairs with the basic or the memory-efficient engine.

"seqalign basic" fills the full dynamic-programming table and traces back
through it. "seqalign efficient" uses Hirschberg's divide and conquer, which
finds the same optimal cost in linear space. Both read the input file format
of generated test cases and write cost, both aligned rows, elapsed time in
milliseconds and memory in KB.`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "path to a YAML settings file (gap, alphabet, costs, ...)")
	flags.Int("gap", cost.DNAGap, "gap penalty")
	flags.String("alphabet", cost.DNAAlphabet, "symbols of the cost table")
	flags.Int("base-case", align.DefaultBaseCase, "sequence length at which the efficient engine stops splitting")
	flags.Bool("parallel", false, "run the forward and reverse scans of each split concurrently")
	flags.Int("log-level", 0, "logging verbosity: 0=error, 1=warn, 2=info, 3=debug")
	flags.String("log-format", "text", "log output format: text or json")

	for _, name := range []string{"gap", "alphabet", "base-case", "parallel", "log-level", "log-format"} {
		_ = a.v.BindPFlag(name, flags.Lookup(name))
	}
	setDefaults(a.v)
	a.v.SetEnvPrefix("SEQALIGN")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	rootCmd.AddCommand(
		newAlignCmd(a, align.Basic),
		newAlignCmd(a, align.Efficient),
		newBatchCmd(a),
		newExpandCmd(),
		newReportCmd(),
	)

	return rootCmd
}

// setup reads the optional config file, decodes settings and installs the
// logger in the command context.
func (a *app) setup(cmd *cobra.Command) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return err
		}
	}
	cfg, err := loadConfig(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	cmd.SetContext(ctxlog.Context(cmd.Context(), logger))
	if a.cfgFile != "" {
		logger.Debug("config loaded", "path", a.v.ConfigFileUsed())
	}

	return nil
}
