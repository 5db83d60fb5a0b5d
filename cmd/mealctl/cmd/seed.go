package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mealtrack/mealtrack-go/internal/repository"
	"github.com/mealtrack/mealtrack-go/internal/seed"
)

var (
	seedEmail string
	seedCount int
	seedWeeks int
)

func init() {
	flags := GenerateLogsCmd.Flags()
	flags.StringVar(&seedEmail, "email", seed.TestUserEmail, "Email of the user to log meals for")
	flags.IntVarP(&seedCount, "count", "n", 20, "Number of log entries to create")
	flags.IntVarP(&seedWeeks, "weeks", "w", 6, "Spread entries over this many past weeks")
}

var InstallTestUserCmd = &cobra.Command{
	Use:     "install-test-user",
	Aliases: []string{"seed"},
	Short:   "Create the test user with goals and sample meals on an empty database",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		db, err := openDB(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		seeder := seed.New(
			repository.NewUserRepository(db),
			repository.NewGoalRepository(db),
			repository.NewLogEntryRepository(db),
		)
		user, err := seeder.InstallTestUser(ctx)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Test user installed.\n  email:    %s\n  password: %s\n", user.Email, seed.TestUserPassword)
		return nil
	},
}

var GenerateLogsCmd = &cobra.Command{
	Use:   "generate-logs",
	Short: "Add random meal log entries for a user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		db, err := openDB(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		seeder := seed.New(
			repository.NewUserRepository(db),
			repository.NewGoalRepository(db),
			repository.NewLogEntryRepository(db),
		)
		if err := seeder.GenerateLogs(ctx, seedEmail, seedCount, seedWeeks); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %d log entries for %s over the past %d weeks.\n", seedCount, seedEmail, seedWeeks)
		return nil
	},
}
