package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/popten/internal/config"
	"github.com/vovakirdan/popten/internal/scorelog"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Print the raw score log",
	Long: `Print the append-only score log, one finished round per line:
UTC timestamp, final score, seed, and move indices, tab-separated.

Example:
  popten log`,
	Args: cobra.NoArgs,
	RunE: runLog,
}

func runLog(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	lines, err := scorelog.Read(config.ExpandPath(cfg.DataDir))
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		fmt.Println("No rounds recorded yet.")
		return nil
	}
	for _, line := range lines {
		fmt.Println(line)
	}
	return nil
}
