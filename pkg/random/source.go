package random

import (
	"math/rand"
	"time"
)

// Source abstracts every random decision the simulator makes so tests can
// replay an exact sequence.
type Source interface {
	// NextDigit returns a uniform digit in [0, 9].
	NextDigit() int

	// Choose returns a uniform index into a set of n items.
	Choose(n int) int

	// Intn returns a uniform integer in [0, n).
	Intn(n int) int
}

type mathSource struct {
	rng *rand.Rand
}

// NewSource returns a math/rand backed source. A zero seed seeds from the
// current time.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &mathSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *mathSource) NextDigit() int {
	return s.rng.Intn(10)
}

func (s *mathSource) Choose(n int) int {
	return s.rng.Intn(n)
}

func (s *mathSource) Intn(n int) int {
	return s.rng.Intn(n)
}
