package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mealtrack/mealtrack-go/internal/repository"
)

var wipeConfirmed bool

func init() {
	WipeCmd.Flags().BoolVar(&wipeConfirmed, "yes", false, "Confirm deleting every row")
}

var WipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Delete all users, goals and log entries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !wipeConfirmed {
			return errors.New("refusing to wipe the database without --yes")
		}

		ctx := cmd.Context()
		db, err := openDB(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := repository.WipeAll(ctx, db); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Database wiped.")
		return nil
	},
}
