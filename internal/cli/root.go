package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"depthjournal/internal/config"
	"depthjournal/internal/engine"
	"depthjournal/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "depthjournal",
	Short: "A journal that ranks memories by emotional depth",
	Long:  "Depthjournal records journal entries with emotion intensities, sensory notes and a media attachment, and lists them by relevance score instead of by date.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(signinCmd)
	rootCmd.AddCommand(signoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(deleteCmd)
}

// openEngine resolves the database path from config and opens the engine
// over it. The caller must call close when done.
func openEngine() (*engine.Engine, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath, err = store.DefaultDBPath()
		if err != nil {
			return nil, nil, fmt.Errorf("resolve db path: %w", err)
		}
	}

	db, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	return engine.New(db), func() { db.Close() }, nil
}
