// popten is a terminal puzzle: pop adjacent digit pairs, score
// (a+b) mod 10, zero-point pops refund the turn.
//
// Usage:
//
//	popten [SEED]        - Play a round (seed optional, time-derived if absent)
//	popten scores        - Show the high-score table
//	popten log           - Print the raw score log
//
// Flags:
//
//	-s/--simple          - ASCII box drawing instead of Unicode
//	-c/--copyright       - Print copyright and exit
//	--config <path>      - Custom config YAML
//	--data-dir <path>    - Base directory for the score log
//	--db <path>          - Path to the high-score database
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const version = "1.2.0"

const copyrightText = `popten ` + version + `
Copyright (c) 2026 popten authors
Released under the MIT license.`

var (
	// Global flags
	flagSimple    bool
	flagCopyright bool
	flagConfig    string
	flagDataDir   string
	flagDBPath    string

	logger = log.New(os.Stderr)
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "popten [SEED]",
	Short: "Pop adjacent digit pairs in your terminal",
	Long: `popten is a single-player terminal puzzle. The board holds ten
digits; popping an adjacent pair scores (a+b) mod 10 and costs one of
ten turns, except a zero-point pop, which refunds the turn.

The optional SEED argument makes a round reproducible: integer seeds
are used as-is, anything else is treated as an opaque string.

Controls:
  h/l, Left/Right  - Move the pair cursor (wraps)
  1-9              - Pop the numbered pair directly
  Space/Enter/p    - Pop the pair under the cursor
  Up/Down          - Pop the pair under the cursor
  0/^/Home         - Jump to the leftmost pair
  $/End            - Jump to the rightmost pair
  q, Ctrl+C        - Quit

Examples:
  popten
  popten 12345
  popten lucky --simple
  popten scores`,
	Args:          cobra.MaximumNArgs(1),
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Base directory for the score log")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to high-score database")

	rootCmd.Flags().BoolVarP(&flagSimple, "simple", "s", false, "ASCII box drawing instead of Unicode")
	rootCmd.Flags().BoolVarP(&flagCopyright, "copyright", "c", false, "Print copyright and exit")

	// Give cobra's version flag its short form.
	rootCmd.Flags().BoolP("version", "v", false, "Print version and exit")

	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(logCmd)
}
