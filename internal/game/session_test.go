package game

import (
	"testing"
)

// popWithPair forces the pair under the cursor to the given values and
// pops, so the turn rule can be exercised deterministically.
func popWithPair(t *testing.T, s *Session, left, right int) PopResult {
	t.Helper()
	s.Board[s.Cursor] = left
	s.Board[s.Cursor+1] = right
	res, err := s.ApplyPop()
	if err != nil {
		t.Fatalf("ApplyPop() failed: %v", err)
	}
	return res
}

func TestScoringPopSpendsTurn(t *testing.T) {
	s := NewSession(ParseSeed("7"))

	res := popWithPair(t, s, 1, 2)

	if res.Points != 3 || res.Bonus || res.Ended {
		t.Errorf("got %+v, want Points=3 Bonus=false Ended=false", res)
	}
	if s.Score != 3 {
		t.Errorf("Score = %d, want 3", s.Score)
	}
	if s.TurnsLeft != InitialTurns-1 {
		t.Errorf("TurnsLeft = %d, want %d", s.TurnsLeft, InitialTurns-1)
	}
}

func TestBonusPopRefundsTurn(t *testing.T) {
	s := NewSession(ParseSeed("7"))

	res := popWithPair(t, s, 5, 5)

	if res.Points != 0 || !res.Bonus || res.Ended {
		t.Errorf("got %+v, want Points=0 Bonus=true Ended=false", res)
	}
	if s.Score != 0 {
		t.Errorf("Score = %d, want 0 (bonus pop never scores)", s.Score)
	}
	if s.TurnsLeft != InitialTurns+1 {
		t.Errorf("TurnsLeft = %d, want %d", s.TurnsLeft, InitialTurns+1)
	}
	if s.Exhausted() {
		t.Error("bonus pop must not end the session")
	}
}

func TestLastTurnScoringPopEndsSession(t *testing.T) {
	s := NewSession(ParseSeed("7"))
	s.TurnsLeft = 1

	res := popWithPair(t, s, 1, 2)

	if !res.Ended {
		t.Error("pop on last turn should end the session")
	}
	if s.TurnsLeft != 0 {
		t.Errorf("TurnsLeft = %d, want 0", s.TurnsLeft)
	}
	if !s.Exhausted() {
		t.Error("Exhausted() = false after natural exhaustion")
	}
}

func TestBonusPopAtZeroTurnsContinues(t *testing.T) {
	s := NewSession(ParseSeed("7"))
	s.TurnsLeft = 0

	res := popWithPair(t, s, 4, 6)

	if !res.Bonus {
		t.Fatalf("got %+v, want a bonus pop", res)
	}
	if s.TurnsLeft != 1 {
		t.Errorf("TurnsLeft = %d, want 1 (refund past zero)", s.TurnsLeft)
	}
	if s.Exhausted() {
		t.Error("a bonus pop never ends the session, even at 0 turns")
	}
}

func TestMoveLogRecordsEveryPop(t *testing.T) {
	s := NewSession(ParseSeed("7"))

	s.Cursor = 2
	popWithPair(t, s, 5, 5) // bonus
	s.Cursor = 7
	popWithPair(t, s, 1, 2) // scoring

	want := []int{2, 7}
	if len(s.Moves) != len(want) {
		t.Fatalf("Moves = %v, want %v", s.Moves, want)
	}
	for i := range want {
		if s.Moves[i] != want[i] {
			t.Errorf("Moves[%d] = %d, want %d", i, s.Moves[i], want[i])
		}
	}
}

func TestCursorWraps(t *testing.T) {
	s := NewSession(ParseSeed("7"))

	s.MoveLeft()
	if s.Cursor != MaxPairIndex {
		t.Errorf("left from 0: Cursor = %d, want %d", s.Cursor, MaxPairIndex)
	}
	s.MoveRight()
	if s.Cursor != 0 {
		t.Errorf("right from %d: Cursor = %d, want 0", MaxPairIndex, s.Cursor)
	}

	for n := 0; n < 100; n++ {
		if n%2 == 0 {
			s.MoveRight()
		} else {
			s.MoveLeft()
		}
		if s.Cursor < 0 || s.Cursor > MaxPairIndex {
			t.Fatalf("Cursor = %d after %d moves, want [0,%d]", s.Cursor, n+1, MaxPairIndex)
		}
	}
}

func TestHomeEnd(t *testing.T) {
	s := NewSession(ParseSeed("7"))

	s.MoveEnd()
	if s.Cursor != MaxPairIndex {
		t.Errorf("MoveEnd: Cursor = %d, want %d", s.Cursor, MaxPairIndex)
	}
	s.MoveHome()
	if s.Cursor != 0 {
		t.Errorf("MoveHome: Cursor = %d, want 0", s.Cursor)
	}
}

func TestPopAtIgnoresOutOfRange(t *testing.T) {
	s := NewSession(ParseSeed("7"))
	before := s.Board

	_, ok, err := s.PopAt(9)
	if err != nil || ok {
		t.Errorf("PopAt(9) = ok=%v err=%v, want ignored", ok, err)
	}
	if s.Board != before {
		t.Error("PopAt(9) mutated the board")
	}
	if len(s.Moves) != 0 {
		t.Error("ignored PopAt must not append to the move log")
	}
}

func TestSameSeedSameRun(t *testing.T) {
	moves := []int{0, 3, 8, 1, 1, 5, 2, 0}

	run := func() *Session {
		s := NewSession(ParseSeed("reproducible"))
		for _, m := range moves {
			if _, _, err := s.PopAt(m); err != nil {
				t.Fatalf("PopAt(%d) failed: %v", m, err)
			}
		}
		return s
	}

	a, b := run(), run()

	if a.Board != b.Board {
		t.Errorf("boards differ: %v vs %v", a.Board, b.Board)
	}
	if a.Score != b.Score {
		t.Errorf("scores differ: %d vs %d", a.Score, b.Score)
	}
	if a.TurnsLeft != b.TurnsLeft {
		t.Errorf("turns differ: %d vs %d", a.TurnsLeft, b.TurnsLeft)
	}
}

func TestSeedParsing(t *testing.T) {
	tests := []struct {
		text    string
		integer bool
	}{
		{"12345", true},
		{"-7", true},
		{"banana", false},
		{"12a", false},
	}

	for _, tt := range tests {
		s := ParseSeed(tt.text)
		if s.Text != tt.text {
			t.Errorf("ParseSeed(%q).Text = %q", tt.text, s.Text)
		}
		if tt.integer {
			if s.Value == 0 && tt.text != "0" {
				t.Errorf("ParseSeed(%q).Value = 0, want the parsed integer", tt.text)
			}
		}
		// Opaque string seeds must still be deterministic.
		if again := ParseSeed(tt.text); again.Value != s.Value {
			t.Errorf("ParseSeed(%q) not deterministic: %d vs %d", tt.text, s.Value, again.Value)
		}
	}
}
