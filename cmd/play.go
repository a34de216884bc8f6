package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"quizdrill/internal/app"
	"quizdrill/internal/config"
	"quizdrill/internal/drill"
	"quizdrill/internal/quiz"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a practice drill",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

// runPlay opens the store, loads the practice state, and launches the TUI.
func runPlay(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st, err := openStore(cmd, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	svc, err := quiz.NewService(cmd.Context(), st, rng)
	if err != nil {
		return fmt.Errorf("load questions: %w", err)
	}

	return app.Run(svc, rng, drillOptions(cfg))
}

// drillOptions converts configured defaults into drill options.
func drillOptions(cfg *config.Config) drill.Options {
	opts := drill.Options{Num: cfg.Num}
	if cfg.Method != "" {
		if m, err := quiz.ParseMethod(cfg.Method); err == nil {
			opts.Method = m
		}
	}
	return opts
}
