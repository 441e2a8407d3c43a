package main

import (
	"github.com/spf13/cobra"

	"github.com/dev-mohitbeniwal/echo-xaudit/config"
	"github.com/dev-mohitbeniwal/echo-xaudit/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations to the audit database",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := db.OpenPostgres(config.GetString("postgres.url"))
		if err != nil {
			return err
		}
		defer db.ClosePostgres(database)

		return db.Migrate(database)
	},
}
