package cmd

import (
	"fmt"
	"os"

	"poc-portal/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "poc-portal",
	Short: "POC Portal Service",
	Long: `POC Portal serves proof-of-concept use cases and keeps them in sync
with a remote repository hosted on S3 or any web server.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// CLI errors are printed with the console encoder and ISO8601 timestamps
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringP("repo-url", "r", "", "use case repository location (overrides CONTENT_REPO_URL)")
}
