package cmd

import (
	"github.com/mizutori/kioku/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "kioku",
	Short: "Spaced-repetition trainer for language study",
	Long:  "Kioku is a terminal spaced-repetition trainer for vocabulary, cloze sentences, and kanji.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReview(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides KIOKU_DB env var)")

	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(dueCmd)
	rootCmd.AddCommand(unlockCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then KIOKU_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore resolves the DB path and opens the store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(dbPath)
}
