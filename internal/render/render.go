// Package render draws the game screen. Every frame is a full redraw:
// each line is placed with absolute cursor positioning and cleared to
// end of line, and the whole frame is bracketed by save/restore-cursor,
// so repeated draws overwrite in place and never scroll the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/vovakirdan/popten/internal/game"
	"github.com/vovakirdan/popten/internal/term"
)

// Board geometry. Tiles sit in fixed-width cells so every column used
// below is a linear function of the tile or pair index.
const (
	cellWidth  = 4
	innerWidth = game.BoardWidth * cellWidth
	frameWidth = innerWidth + 2 // Plus both borders

	// 1-based column of tile i is tileCol+cellWidth*i. The indicator
	// band for pair i starts at the same column and spans both tiles.
	tileCol       = 4
	indicatorSpan = cellWidth + 1

	// MinWidth and MinHeight are the smallest terminal the fixed
	// layout fits into with room to spare.
	MinWidth  = 60
	MinHeight = 16
)

// FrameHeight is the number of screen rows one frame occupies.
const FrameHeight = 13

// Renderer draws sessions in one glyph style.
type Renderer struct {
	style Style
}

// New creates a renderer with the given glyph style.
func New(style Style) *Renderer {
	return &Renderer{style: style}
}

// Draw renders the full frame starting at the top of the screen.
func (r *Renderer) Draw(w io.Writer, s *game.Session) error {
	return r.DrawAt(w, s, 1)
}

// DrawAt renders the full frame anchored at the given 1-based row.
// The terminal cursor position is saved before and restored after, so
// the caller's cursor never moves and repeated draws never scroll.
func (r *Renderer) DrawAt(w io.Writer, s *game.Session, topRow int) error {
	if topRow < 1 {
		topRow = 1
	}

	var sb strings.Builder
	sb.WriteString(term.SaveCursor)
	for i, line := range r.Lines(s) {
		sb.WriteString(term.MoveTo(topRow+i, 1))
		sb.WriteString(term.ClearToEOL)
		sb.WriteString(line)
	}
	sb.WriteString(term.RestoreCursor)

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("render: cannot write frame: %w", err)
	}
	return nil
}

// Lines produces the frame content top to bottom, without positioning.
// Line order: seed, column header, top border, padding, tiles, padding,
// bottom border, indicator, blank, score, turns, blank, help.
func (r *Renderer) Lines(s *game.Session) []string {
	st := r.style
	return []string{
		term.Dim + "seed: " + s.Seed.Text + term.Reset,
		r.headerLine(),
		r.borderLine(st.TopLeft, st.TopRight),
		r.paddingLine(),
		r.tileLine(s),
		r.paddingLine(),
		r.borderLine(st.BottomLeft, st.BottomRight),
		r.indicatorLine(s.Cursor),
		"",
		fmt.Sprintf("score: %s%d%s", term.Bright, s.Score, term.Reset),
		fmt.Sprintf("turns: %s%d%s", term.Bright, s.TurnsLeft, term.Reset),
		"",
		term.Dim + "h/l move   1-9 or space pop   0/$ home/end   q quit" + term.Reset,
	}
}

// headerLine numbers the selectable pairs 1-9, each digit centered
// over the gap between its pair's two tiles.
func (r *Renderer) headerLine() string {
	row := blankRow(frameWidth)
	for i := 0; i <= game.MaxPairIndex; i++ {
		row[pairMidCol(i)-1] = rune('1' + i)
	}
	return term.Dim + string(row) + term.Reset
}

func (r *Renderer) borderLine(left, right rune) string {
	var sb strings.Builder
	sb.WriteRune(left)
	for i := 0; i < innerWidth; i++ {
		sb.WriteRune(r.style.Horizontal)
	}
	sb.WriteRune(right)
	return sb.String()
}

func (r *Renderer) paddingLine() string {
	return string(r.style.Vertical) + strings.Repeat(" ", innerWidth) + string(r.style.Vertical)
}

// tileLine renders the board row, each tile value emphasized.
func (r *Renderer) tileLine(s *game.Session) string {
	var sb strings.Builder
	sb.WriteRune(r.style.Vertical)
	for _, v := range s.Board {
		sb.WriteString("  ")
		sb.WriteString(term.Bright)
		sb.WriteByte('0' + byte(v))
		sb.WriteString(term.Reset)
		sb.WriteString(" ")
	}
	sb.WriteRune(r.style.Vertical)
	return sb.String()
}

// indicatorLine draws the marker band under the highlighted pair.
func (r *Renderer) indicatorLine(cursor int) string {
	row := blankRow(frameWidth)
	start := TileColumn(cursor) - 1
	for i := 0; i < indicatorSpan; i++ {
		row[start+i] = r.style.Indicator
	}
	return string(row)
}

// TileColumn returns the 1-based screen column of tile i's glyph.
func TileColumn(i int) int {
	return tileCol + cellWidth*i
}

// pairMidCol returns the 1-based column midway between pair i's tiles.
func pairMidCol(i int) int {
	return (TileColumn(i) + TileColumn(i+1)) / 2
}

func blankRow(width int) []rune {
	row := make([]rune, width)
	for i := range row {
		row[i] = ' '
	}
	return row
}
