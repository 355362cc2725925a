package game

import "math/rand"

// InitialTurns is the number of turns a session starts with.
const InitialTurns = 10

// PairCount is the number of selectable adjacent pairs; cursor movement
// wraps modulo this value.
const PairCount = BoardWidth - 1

// PopResult describes the outcome of a single pop.
type PopResult struct {
	Points int  // (a+b) mod 10
	Bonus  bool // True when Points == 0 and the turn was refunded
	Ended  bool // True when this pop exhausted the last turn
}

// Session aggregates all mutable state of one game round. It is owned
// by the session controller and mutated only through its methods.
type Session struct {
	Board     Board
	Cursor    int // Left index of the highlighted pair, in [0, MaxPairIndex]
	Score     int
	TurnsLeft int
	Moves     []int // Cursor index of every pop, in play order
	Seed      Seed

	rng   *rand.Rand
	ended bool
}

// NewSession starts a fresh round from the given seed.
func NewSession(seed Seed) *Session {
	rng := seed.NewRand()
	return &Session{
		Board:     NewBoard(rng),
		TurnsLeft: InitialTurns,
		Seed:      seed,
		rng:       rng,
	}
}

// ApplyPop pops the pair under the cursor and applies the turn rule:
// a zero-point pop refunds the turn and never ends the session, even
// when TurnsLeft is already 0; a scoring pop spends a turn and ends
// the session when it spends the last one.
func (s *Session) ApplyPop() (PopResult, error) {
	points, err := s.Board.Pop(s.Cursor, s.rng)
	if err != nil {
		return PopResult{}, err
	}

	s.Moves = append(s.Moves, s.Cursor)

	res := PopResult{Points: points}
	if points == 0 {
		s.TurnsLeft++
		res.Bonus = true
		return res, nil
	}

	s.Score += points
	s.TurnsLeft--
	if s.TurnsLeft == 0 {
		s.ended = true
		res.Ended = true
	}
	return res, nil
}

// PopAt moves the cursor to the given pair index and pops there.
// Out-of-range indices are ignored and report no result.
func (s *Session) PopAt(i int) (PopResult, bool, error) {
	if i < 0 || i > MaxPairIndex {
		return PopResult{}, false, nil
	}
	s.Cursor = i
	res, err := s.ApplyPop()
	return res, err == nil, err
}

// MoveLeft moves the cursor one pair left, wrapping at the edge.
func (s *Session) MoveLeft() {
	s.Cursor = (s.Cursor + PairCount - 1) % PairCount
}

// MoveRight moves the cursor one pair right, wrapping at the edge.
func (s *Session) MoveRight() {
	s.Cursor = (s.Cursor + 1) % PairCount
}

// MoveHome jumps the cursor to the leftmost pair.
func (s *Session) MoveHome() {
	s.Cursor = 0
}

// MoveEnd jumps the cursor to the rightmost pair.
func (s *Session) MoveEnd() {
	s.Cursor = MaxPairIndex
}

// Exhausted reports whether the round ended by spending the last turn,
// as opposed to an explicit quit.
func (s *Session) Exhausted() bool {
	return s.ended
}
