package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhisek/numberninja/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "numberninja",
	Short: "Arithmetic practice for kids",
	Long:  "Number Ninja Jr — practice addition, subtraction, multiplication, and division, and watch your progress fill the calendar.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Optional .env next to the binary; missing file is fine.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides NUMBERNINJA_DB env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(calendarCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then NUMBERNINJA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
