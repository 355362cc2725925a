package session

import (
	"io"

	"github.com/vovakirdan/popten/internal/term"
)

// OSTerminal is the real controlling terminal, addressed by its file
// descriptor for mode changes and by reader/writer for the cursor
// position handshake.
type OSTerminal struct {
	Fd     int
	Input  io.Reader
	Output io.Writer
}

// Size implements Terminal.
func (t *OSTerminal) Size() (int, int, error) {
	return term.Size(t.Fd)
}

// MakeRaw implements Terminal.
func (t *OSTerminal) MakeRaw() (func() error, error) {
	guard, err := term.MakeRaw(t.Fd)
	if err != nil {
		return nil, err
	}
	return guard.Restore, nil
}

// CursorRow implements Terminal via the CSI 6n position query.
func (t *OSTerminal) CursorRow() (int, error) {
	row, _, err := term.QueryCursorPos(t.Output, t.Input)
	if err != nil {
		return 0, err
	}
	return row, nil
}
