package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile   string
	indexPath string
	timeout   time.Duration

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:              "retouch",
	Short:            "retouch - post-translation syntax tree fixup engine",
	TraverseChildren: true,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			_ = cmd.Help()
			return
		}
		// retouch [snapshot1 snapshot2 ...] => behaves like the run subcommand
		runCmd.Run(runCmd, args)
	},
}

func Execute() error {
	defer func() { _ = logger.Sync() }()
	return rootCmd.Execute()
}

func init() {
	logger = zap.Must(zap.NewProduction())

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to a settings file")
	rootCmd.PersistentFlags().StringVar(&indexPath, "index", "", "path to an importable-declaration index")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Minute, "timeout for processing")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(importsCmd)
}
