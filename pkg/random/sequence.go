package random

// Sequence replays fixed values. Digits, choices and ints are drawn from
// separate queues; an exhausted queue wraps around to its start.
type Sequence struct {
	Digits  []int
	Choices []int
	Ints    []int

	di, ci, ii int
}

func (s *Sequence) NextDigit() int {
	return next(s.Digits, &s.di) % 10
}

func (s *Sequence) Choose(n int) int {
	return next(s.Choices, &s.ci) % n
}

func (s *Sequence) Intn(n int) int {
	return next(s.Ints, &s.ii) % n
}

// DigitsOf expands identifiers like "000000000000001" into a digit queue.
func DigitsOf(ids ...string) []int {
	var out []int
	for _, id := range ids {
		for _, r := range id {
			out = append(out, int(r-'0'))
		}
	}
	return out
}

func next(values []int, idx *int) int {
	if len(values) == 0 {
		return 0
	}
	v := values[*idx%len(values)]
	*idx++
	return v
}
