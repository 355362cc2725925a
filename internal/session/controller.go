// Package session runs one game round end to end: it owns the terminal
// for the duration of the round, wires decoded key tokens to cursor
// movement and pops, and reports how the round ended.
package session

import (
	"errors"
	"fmt"
	"io"

	"github.com/vovakirdan/popten/internal/game"
	"github.com/vovakirdan/popten/internal/input"
	"github.com/vovakirdan/popten/internal/render"
	"github.com/vovakirdan/popten/internal/term"
)

// ErrTerminalTooSmall is returned when the terminal cannot fit the
// board layout. The round is never started in that case.
var ErrTerminalTooSmall = errors.New("session: terminal too small")

// Terminal abstracts the controlling terminal so the loop can be
// driven by a fake in tests. The real implementation is OSTerminal.
type Terminal interface {
	// Size returns the terminal dimensions in character cells.
	Size() (width, height int, err error)
	// MakeRaw enters raw mode and returns the restore function.
	MakeRaw() (restore func() error, err error)
	// CursorRow returns the 1-based row the terminal cursor is on.
	// Called in raw mode, before the first frame, to anchor drawing.
	CursorRow() (int, error)
}

// Outcome describes a finished round.
type Outcome struct {
	Score     int
	TurnsLeft int
	Seed      game.Seed
	Moves     []int
	Exhausted bool // True when the last turn was spent; false on quit
}

// Controller drives the Setup -> Playing -> Ended state machine.
type Controller struct {
	In   io.Reader
	Out  io.Writer
	Term Terminal

	renderer *render.Renderer
}

// New creates a controller rendering in the given style.
func New(in io.Reader, out io.Writer, t Terminal, style render.Style) *Controller {
	return &Controller{
		In:       in,
		Out:      out,
		Term:     t,
		renderer: render.New(style),
	}
}

// Run plays one round with the given seed and returns its outcome.
// The terminal's raw mode and cursor visibility are restored on every
// exit path, including errors surfaced from inside the loop.
func (c *Controller) Run(seed game.Seed) (Outcome, error) {
	width, height, err := c.Term.Size()
	if err != nil {
		return Outcome{}, err
	}
	if width < render.MinWidth || height < render.MinHeight {
		return Outcome{}, fmt.Errorf("%w: %dx%d, need at least %dx%d",
			ErrTerminalTooSmall, width, height, render.MinWidth, render.MinHeight)
	}

	restore, err := c.Term.MakeRaw()
	if err != nil {
		return Outcome{}, err
	}
	defer restore()

	io.WriteString(c.Out, term.HideCursor)
	defer io.WriteString(c.Out, term.ShowCursor)

	// Anchor the frame where the shell prompt left the cursor, clamped
	// so the whole frame fits without scrolling.
	topRow := 1
	if row, err := c.Term.CursorRow(); err == nil {
		topRow = min(row, height-render.FrameHeight+1)
		topRow = max(topRow, 1)
	}

	sess := game.NewSession(seed)
	outcome, err := c.play(sess, topRow)
	if err != nil {
		return outcome, err
	}

	// Final frame so the end state stays on screen.
	if err := c.renderer.DrawAt(c.Out, sess, topRow); err != nil {
		return outcome, err
	}
	return outcome, nil
}

// play is the Playing state: render, decode one key, dispatch, repeat.
func (c *Controller) play(sess *game.Session, topRow int) (Outcome, error) {
	dec := input.NewDecoder(c.In)

	for {
		if err := c.renderer.DrawAt(c.Out, sess, topRow); err != nil {
			return c.outcome(sess), err
		}

		tok, err := dec.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				// Input stream closed; treat like a quit.
				return c.outcome(sess), nil
			}
			return c.outcome(sess), fmt.Errorf("session: input failed: %w", err)
		}

		switch tok.Key {
		case input.KeyQuit:
			return c.outcome(sess), nil
		case input.KeyLeft:
			sess.MoveLeft()
		case input.KeyRight:
			sess.MoveRight()
		case input.KeyHome:
			sess.MoveHome()
		case input.KeyEnd:
			sess.MoveEnd()
		case input.KeyDigit:
			res, ok, err := sess.PopAt(tok.Digit - 1)
			if err != nil {
				return c.outcome(sess), err
			}
			if ok && res.Ended {
				return c.outcome(sess), nil
			}
		case input.KeyPop:
			res, err := sess.ApplyPop()
			if err != nil {
				return c.outcome(sess), err
			}
			if res.Ended {
				return c.outcome(sess), nil
			}
		}
		// Anything else is inert.
	}
}

func (c *Controller) outcome(sess *game.Session) Outcome {
	return Outcome{
		Score:     sess.Score,
		TurnsLeft: sess.TurnsLeft,
		Seed:      sess.Seed,
		Moves:     sess.Moves,
		Exhausted: sess.Exhausted(),
	}
}
