package cli

import (
	"context"

	"github.com/spf13/cobra"

	"amortizer/config"
	"amortizer/logger"
)

type rootOptions struct {
	logLevel  string
	logFormat string
	tableFile string
	viewer    string
}

// Execute runs the command line against os.Args.
func Execute() error {
	return NewRootCmd().ExecuteContext(context.Background())
}

// NewRootCmd builds the command tree. Without a subcommand it starts the
// interactive menu.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	var a *app

	cmd := &cobra.Command{
		Use:   "amortizer",
		Short: "Loan amortization calculator",
		Long: `amortizer solves for the missing quantity of a fixed-rate loan.

Given three of principal, monthly payment, number of months and annual
interest rate it computes the fourth, and can write the month-by-month
amortization table to a file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			opts.apply(cmd, cfg)

			logCfg := logger.DefaultConfig()
			logCfg.Level = cfg.LogLevel
			logCfg.Format = cfg.LogFormat
			logCfg.Environment = cfg.Environment
			logCfg.Version = Version
			logger.Setup(logCfg, cmd.ErrOrStderr())

			a = newApp(cmd.Context(), cfg)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a != nil {
				a.Close()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd, a)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "log format (text, json)")
	cmd.PersistentFlags().StringVar(&opts.tableFile, "table-file", "", "file the amortization table is written to")
	cmd.PersistentFlags().StringVar(&opts.viewer, "viewer", "", "program used to open the written table")

	get := func() *app { return a }
	cmd.AddCommand(
		newMenuCmd(get),
		newPaymentCmd(get),
		newPrincipalCmd(get),
		newMonthsCmd(get),
		newRateCmd(get),
		newServeCmd(get),
		newVersionCmd(),
	)
	return cmd
}

// apply lets explicitly set flags override the environment.
func (o *rootOptions) apply(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = o.logFormat
	}
	if flags.Changed("table-file") {
		cfg.TableFile = o.tableFile
	}
	if flags.Changed("viewer") {
		cfg.TableViewer = o.viewer
	}
}
