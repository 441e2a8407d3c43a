package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dev-mohitbeniwal/echo-xaudit/config"
	logger "github.com/dev-mohitbeniwal/echo-xaudit/logging"
)

var rootCmd = &cobra.Command{
	Use:           "xaudit",
	Short:         "Admin service for transaction logs and access audits",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.InitConfig(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		logger.InitLogger(config.GetString("log.dir"))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
