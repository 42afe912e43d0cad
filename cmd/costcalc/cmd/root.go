package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var dbPath string

// rootCmd is the base command for the standalone cost calculator.
var rootCmd = &cobra.Command{
	Use:   "costcalc",
	Short: "Kitchen cost calculator",
	Long: `costcalc resolves ingredient costs from a local database without
running the API server. Point it at a database file with --db and use
the calc subcommand to price an ad-hoc list of ingredient lines.`,
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaultDBPath(), "path to the SQLite database file")
}

func defaultDBPath() string {
	if p := os.Getenv("FOURCHEF_DB_PATH"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "fourchef.db"
	}
	return filepath.Join(home, ".fourchef", "fourchef.db")
}

func requireDB() (string, error) {
	if dbPath == "" {
		return "", fmt.Errorf("no database path: pass --db or set FOURCHEF_DB_PATH")
	}
	if _, err := os.Stat(dbPath); err != nil {
		return "", fmt.Errorf("database %s: %w", dbPath, err)
	}
	return dbPath, nil
}
