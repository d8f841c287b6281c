package cmd

import (
	"fmt"
	"os"

	"showroom-audit/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "showroom-audit",
	Short: "Showroom RFID stock audit service",
	Long: `Showroom Audit reconciles RFID tag reads against the master jewelry inventory.
It imports stock from CSV, object storage or the point-of-sale database,
runs scan sessions and exports missing and new item reports.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format at debug level gives ISO8601 timestamps for CLI output.
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
