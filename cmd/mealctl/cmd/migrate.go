package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mealtrack/mealtrack-go/internal/repository"
)

func init() {
	MigrateCmd.AddCommand(migrateDownCmd)
}

var MigrateCmd = &cobra.Command{
	Use:     "migrate",
	Aliases: []string{"migrate-up"},
	Short:   "Apply pending schema migrations",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repository.MigrateUp(dsn); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date.")
		return nil
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back every schema migration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repository.MigrateDown(dsn); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "All migrations rolled back.")
		return nil
	},
}
