package cmd

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mealtrack/mealtrack-go/internal/config"
	"github.com/mealtrack/mealtrack-go/internal/repository"
)

var dsn string

func init() {
	RootCmd.PersistentFlags().StringVar(&dsn, "dsn", "", "MySQL DSN (defaults to $DATABASE_DSN)")

	RootCmd.AddCommand(MigrateCmd, InstallTestUserCmd, GenerateLogsCmd, WipeCmd)
}

var RootCmd = &cobra.Command{
	Use:           "mealctl",
	Short:         "Administer the meal log database",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()
		if dsn == "" {
			dsn = config.DatabaseDSN()
		}
	},
}

func openDB(ctx context.Context) (*sql.DB, error) {
	db, err := repository.NewDB(dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	return db, nil
}
