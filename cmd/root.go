package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"quizdrill/internal/config"
	"quizdrill/internal/scoring"
	"quizdrill/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "quizdrill",
	Short: "Spaced-repetition quiz drills in the terminal",
	Long:  "Quizdrill tracks your answer history per question and drills you on the ones you get wrong most often.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZDRILL_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: XDG config dir)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(setsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file named by --config, or the default
// location when the flag is empty.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// resolveDBPath returns the database path from the --db flag (highest
// priority), then the merged config (where the QUIZDRILL_DB env var
// overrides the file), then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DB != "" {
		return cfg.DB, store.EnsureDir(cfg.DB)
	}
	return store.DefaultDBPath()
}

// openStore opens the database with the configured scoring policy.
func openStore(cmd *cobra.Command, cfg *config.Config) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	scorer, err := scoring.FromName(cfg.Scoring.Policy, cfg.Scoring.Param)
	if err != nil {
		return nil, err
	}
	st, err := store.Open(dbPath, scorer)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
