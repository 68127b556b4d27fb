package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type app struct {
	verbose bool
	logger  *zap.Logger
}

func (a *app) initLogger() error {
	var err error
	if a.verbose {
		a.logger, err = zap.NewDevelopment()
	} else {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		a.logger, err = cfg.Build()
	}
	return err
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}
	rootCmd := &cobra.Command{
		Use:          "fromstr",
		Short:        "Parse name,age records",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initLogger()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newParseCmd(a))
	rootCmd.AddCommand(newFileCmd(a))
	return rootCmd
}
