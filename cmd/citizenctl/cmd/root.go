package cmd

import (
	"CitizenVoice/database/postgres"
	"CitizenVoice/pkg/log"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "citizenctl",
	Short:        "Citizen Voice operator tool",
	Long:         "Seed accounts and dry-run feedback routing against the Citizen Voice database.",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// .env is optional; plain environment variables work too
		_ = godotenv.Load()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(seedAdminCmd)
	rootCmd.AddCommand(matchCmd)
}

func openDatabase() (*sqlx.DB, *logrus.Logger, error) {
	logger := log.NewLogger()
	db, err := postgres.New()
	if err != nil {
		return nil, nil, err
	}
	return db, logger, nil
}
