package game

import (
	"hash/fnv"
	"math/rand"
	"strconv"
	"time"
)

// Seed identifies the pseudo-random stream for one session.
// It keeps the original user-supplied text so a run can be reproduced
// verbatim from the seed line shown on screen.
type Seed struct {
	Text  string // What the user typed (or the derived value, formatted)
	Value int64  // Source value fed to math/rand
}

// ParseSeed interprets a user-supplied seed string.
// Integer-valued digits become an integer seed; anything else is treated
// as an opaque string and hashed to a deterministic value.
func ParseSeed(text string) Seed {
	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		return Seed{Text: text, Value: n}
	}
	h := fnv.New64a()
	h.Write([]byte(text))
	return Seed{Text: text, Value: int64(h.Sum64())}
}

// TimeSeed derives a seed from the current time.
func TimeSeed() Seed {
	v := time.Now().UnixNano()
	return Seed{Text: strconv.FormatInt(v, 10), Value: v}
}

// NewRand creates the generator for this seed.
func (s Seed) NewRand() *rand.Rand {
	return rand.New(rand.NewSource(s.Value))
}
