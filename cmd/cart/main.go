package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

type rootCmdConfig struct {
	verbose       bool
	metadataInput string
	table         string
	labelsInput   string
	output        string
	ctx           context.Context
	cancelFunc    context.CancelFunc
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	config := &rootCmdConfig{}
	rootCmd := &cobra.Command{
		Use:   "cart",
		Short: "cart is a tool to grow binary classification trees",
		Long:  `A tool to grow binary classification trees from labelled data, score splits and evaluate predictions`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(config.verbose)
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "log debug messages to STDERR")
	rootCmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with the label column and the features of the inputs (required for named CSV, database and npy inputs)")
	rootCmd.PersistentFlags().StringVarP(&(config.table), "table", "t", defaultTable, "table or collection holding the points on database inputs")
	rootCmd.PersistentFlags().StringVarP(&(config.labelsInput), "labels", "l", "", "path to the .npy file with the labels for .npy inputs")
	rootCmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a file to which results will be written as CSV (defaults to STDOUT)")
	rootCmd.AddCommand(
		versionCmd(),
		impurityCmd(config),
		gainCmd(config),
		scoreCmd(config),
		growCmd(config),
		decideCmd(config),
		importCmd(config),
	)
	return rootCmd
}

func (rcc *rootCmdConfig) Context() context.Context {
	if rcc.ctx == nil {
		rcc.ctx, rcc.cancelFunc = context.WithCancel(context.Background())
	}
	return rcc.ctx
}
