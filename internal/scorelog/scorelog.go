// Package scorelog appends one record per finished round to a plain
// text log file. The format is stable and line-oriented on purpose:
// an ISO-8601 UTC timestamp, the final score, the seed, and the move
// indices in play order, tab-separated.
package scorelog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileName is the log file created under the data directory.
const FileName = "scores.log"

// Record is one completed, turn-exhausted round.
type Record struct {
	When  time.Time
	Score int
	Seed  string
	Moves []int
}

// Line formats the record as a single log line, without the newline.
func (r Record) Line() string {
	var moves strings.Builder
	for _, m := range r.Moves {
		moves.WriteByte('0' + byte(m))
	}
	return fmt.Sprintf("%s\t%d\t%s\t%s",
		r.When.UTC().Format(time.RFC3339), r.Score, r.Seed, moves.String())
}

// Append writes the record to the log under dataDir, creating the
// directory and file as needed.
func Append(dataDir string, rec Record) error {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("scorelog: cannot create directory %s: %w", dataDir, err)
	}

	path := filepath.Join(dataDir, FileName)
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("scorelog: %s is a directory", path)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("scorelog: cannot open %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(rec.Line() + "\n"); err != nil {
		return fmt.Errorf("scorelog: cannot append to %s: %w", path, err)
	}
	return nil
}

// Read returns the raw log lines, newest last. A missing file is not
// an error; it reads as an empty log.
func Read(dataDir string) ([]string, error) {
	path := filepath.Join(dataDir, FileName)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scorelog: cannot read %s: %w", path, err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil, nil
	}
	return lines, nil
}
