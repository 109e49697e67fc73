package main

import (
	"fmt"

	migrate "github.com/rubenv/sql-migrate"
	"github.com/spf13/cobra"

	"github.com/johnquangdev/meeting-summarizer/internal/infrastructure/database"
)

var migrateSteps int

var migrateCmd = &cobra.Command{
	Use:       "migrate up|down",
	Short:     "Apply or roll back the embedded SQL migrations",
	Long:      `migrate up applies every pending migration (or --steps of them). migrate down rolls back one migration unless --steps says otherwise.`,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"up", "down"},
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, max := migrationPlan(args[0], migrateSteps)

		db, err := openDB()
		if err != nil {
			return err
		}
		defer database.CloseDB(db)

		n, err := database.Migrate(cmd.Context(), db, dir, max)
		if err != nil {
			return fmt.Errorf("applying migrations: %w", err)
		}

		verb := "Applied"
		if dir == migrate.Down {
			verb = "Rolled back"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %d migration(s)\n", verb, n)
		return nil
	},
}

// migrationPlan maps the CLI direction to sql-migrate arguments. Zero steps means
// all pending migrations going up and a single one going down.
func migrationPlan(direction string, steps int) (migrate.MigrationDirection, int) {
	if direction == "down" {
		if steps <= 0 {
			steps = 1
		}
		return migrate.Down, steps
	}
	if steps < 0 {
		steps = 0
	}
	return migrate.Up, steps
}

func init() {
	migrateCmd.Flags().IntVar(&migrateSteps, "steps", 0, "number of migrations to apply or roll back")
	rootCmd.AddCommand(migrateCmd)
}
