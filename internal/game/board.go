// Package game contains the pure popten rules: the fixed-width board,
// the pop operation, and the turn/score bookkeeping. No terminal or
// I/O dependencies, so everything here is directly testable.
package game

import (
	"fmt"
	"math/rand"
)

// BoardWidth is the fixed number of tiles on the board.
const BoardWidth = 10

// MaxPairIndex is the highest valid left index of an adjacent pair.
const MaxPairIndex = BoardWidth - 2

// Board is an ordered row of exactly ten tiles, each in [0,9].
// The fixed-size array makes the length invariant structural: a pop
// shift-removes one tile and appends one draw in the same operation.
type Board [BoardWidth]int

// NewBoard fills a board with tiles drawn from the given generator.
func NewBoard(rng *rand.Rand) Board {
	var b Board
	for i := range b {
		b[i] = rng.Intn(10)
	}
	return b
}

// Pop combines the adjacent pair at (i, i+1): the left tile becomes
// (a+b) mod 10, the right tile is removed with everything after it
// shifting left, and a fresh tile is drawn onto the right end.
// Returns the points scored. i must be in [0, MaxPairIndex].
func (b *Board) Pop(i int, rng *rand.Rand) (int, error) {
	if i < 0 || i > MaxPairIndex {
		return 0, fmt.Errorf("game: pair index %d out of range [0,%d]", i, MaxPairIndex)
	}

	points := (b[i] + b[i+1]) % 10
	b[i] = points
	copy(b[i+1:], b[i+2:])
	b[BoardWidth-1] = rng.Intn(10)

	return points, nil
}
