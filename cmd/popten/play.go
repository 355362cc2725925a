package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/popten/internal/config"
	"github.com/vovakirdan/popten/internal/game"
	"github.com/vovakirdan/popten/internal/render"
	"github.com/vovakirdan/popten/internal/scorelog"
	"github.com/vovakirdan/popten/internal/session"
	"github.com/vovakirdan/popten/internal/storage"
)

func runPlay(cmd *cobra.Command, args []string) (err error) {
	if flagCopyright {
		fmt.Println(copyrightText)
		return nil
	}

	// The session controller restores terminal mode and cursor
	// visibility while a panic unwinds; here it becomes a plain
	// error and a clean exit 1.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unexpected failure: %v", r)
		}
	}()

	setupDebugLog()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var seed game.Seed
	if len(args) == 1 {
		seed = game.ParseSeed(args[0])
	} else {
		seed = game.TimeSeed()
	}

	style := render.StyleByName(cfg.Style)
	if flagSimple {
		style = render.ASCII()
	}

	term := &session.OSTerminal{
		Fd:     int(os.Stdin.Fd()),
		Input:  os.Stdin,
		Output: os.Stdout,
	}
	ctrl := session.New(os.Stdin, os.Stdout, term, style)

	logger.Debug("round starting", "seed", seed.Text, "style", style.Name)

	outcome, err := ctrl.Run(seed)
	if err != nil {
		return err
	}
	logger.Debug("round finished",
		"score", outcome.Score, "turns_left", outcome.TurnsLeft,
		"moves", len(outcome.Moves), "exhausted", outcome.Exhausted)

	// Back in cooked mode; move past the frame before summarizing.
	fmt.Println()
	if outcome.Exhausted {
		fmt.Printf("Game over! Final score: %d (seed %s)\n", outcome.Score, outcome.Seed.Text)
		return persist(cfg, outcome)
	}
	fmt.Printf("Quit with %d turn(s) left. Score: %d\n", outcome.TurnsLeft, outcome.Score)
	return nil
}

// setupDebugLog redirects the logger to a file at debug level when
// POPTEN_DEBUG names one. Stderr is useless mid-round: the terminal is
// in raw mode and shares the screen with the board.
func setupDebugLog() {
	path := os.Getenv("POPTEN_DEBUG")
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		logger.Warn("could not open debug log", "path", path, "err", err)
		return
	}
	logger = log.New(f)
	logger.SetLevel(log.DebugLevel)
}

// loadConfig merges the config file with command-line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	if flagDBPath != "" {
		cfg.DBPath = flagDBPath
	}
	return cfg, nil
}

// persist records a turn-exhausted round: one line in the append-only
// score log, plus the high-score database. The log is the contract and
// its failure is fatal; the database is best-effort.
func persist(cfg config.Config, outcome session.Outcome) error {
	rec := scorelog.Record{
		When:  time.Now(),
		Score: outcome.Score,
		Seed:  outcome.Seed.Text,
		Moves: outcome.Moves,
	}
	if err := scorelog.Append(config.ExpandPath(cfg.DataDir), rec); err != nil {
		return err
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
		return nil
	}
	defer store.Close()

	if _, err := store.SaveScore(outcome.Score, outcome.Seed.Text); err != nil {
		logger.Warn("could not save high score", "err", err)
	}
	return nil
}
