// Package term owns the terminal as a scoped resource: raw input mode,
// cursor visibility, absolute positioning, and the cursor-position
// query. Raw mode is the one thing that must be restored on every exit
// path, so it is modeled as a guard with an idempotent Restore.
package term

import (
	"fmt"
	"io"

	"golang.org/x/term"
)

// Control sequences used by the renderer and the session controller.
const (
	SaveCursor    = "\x1b[s"
	RestoreCursor = "\x1b[u"
	HideCursor    = "\x1b[?25l"
	ShowCursor    = "\x1b[?25h"
	ClearToEOL    = "\x1b[K"

	Reset  = "\x1b[0m"
	Bright = "\x1b[1m"
	Dim    = "\x1b[2m"
)

// MoveTo returns the absolute positioning sequence for 1-based row/col.
func MoveTo(row, col int) string {
	return fmt.Sprintf("\x1b[%d;%dH", row, col)
}

// RawGuard holds the terminal attributes captured before entering raw
// mode. Restore may be called more than once; only the first call acts.
type RawGuard struct {
	fd    int
	state *term.State
}

// MakeRaw switches the terminal on fd into raw, no-echo mode and
// returns the guard that undoes it.
func MakeRaw(fd int) (*RawGuard, error) {
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("term: cannot enter raw mode: %w", err)
	}
	return &RawGuard{fd: fd, state: state}, nil
}

// Restore puts the terminal back into its original mode.
func (g *RawGuard) Restore() error {
	if g == nil || g.state == nil {
		return nil
	}
	state := g.state
	g.state = nil
	if err := term.Restore(g.fd, state); err != nil {
		return fmt.Errorf("term: cannot restore terminal mode: %w", err)
	}
	return nil
}

// Size returns the terminal dimensions in character cells.
func Size(fd int) (width, height int, err error) {
	width, height, err = term.GetSize(fd)
	if err != nil {
		return 0, 0, fmt.Errorf("term: cannot read terminal size: %w", err)
	}
	return width, height, nil
}

// QueryCursorPos asks the terminal where its cursor is (CSI 6n) and
// parses the `ESC [ row ; col R` report: bytes are skipped until '[',
// then digits and ';' accumulate until the terminating 'R'.
// The terminal must already be in raw mode or the report is echoed.
func QueryCursorPos(w io.Writer, r io.Reader) (row, col int, err error) {
	if _, err := io.WriteString(w, "\x1b[6n"); err != nil {
		return 0, 0, fmt.Errorf("term: cannot send cursor query: %w", err)
	}
	return readCursorReport(r)
}

func readCursorReport(r io.Reader) (row, col int, err error) {
	buf := make([]byte, 1)

	readByte := func() (byte, error) {
		if _, err := io.ReadFull(r, buf); err != nil {
			return 0, fmt.Errorf("term: truncated cursor report: %w", err)
		}
		return buf[0], nil
	}

	// Skip until the introducer.
	for {
		b, err := readByte()
		if err != nil {
			return 0, 0, err
		}
		if b == '[' {
			break
		}
	}

	cur := &row
	for {
		b, err := readByte()
		if err != nil {
			return 0, 0, err
		}
		switch {
		case b >= '0' && b <= '9':
			*cur = *cur*10 + int(b-'0')
		case b == ';':
			cur = &col
		case b == 'R':
			return row, col, nil
		default:
			return 0, 0, fmt.Errorf("term: unexpected byte %q in cursor report", b)
		}
	}
}
