package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/FutureQuant/Random-walk/internal/logging"
)

func newRootCmd() *cobra.Command {
	var logLevel, logFormat string

	root := &cobra.Command{
		Use:   "randomwalk",
		Short: "Simulate a geometric random walk price series and its moving average",
		Long: `randomwalk samples normally distributed daily returns, compounds them into a
price path and derives a trailing simple moving average. Both series can be
written to disk, one value per line.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupWriter(cmd.ErrOrStderr(), logLevel, logFormat)
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text or json)")

	root.AddCommand(newSimulateCmd())
	root.AddCommand(newSMACmd())
	root.AddCommand(newParamsCmd())
	root.AddCommand(newRunsCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
