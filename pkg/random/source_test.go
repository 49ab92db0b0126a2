package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSourceIsDeterministicForSeed(t *testing.T) {
	a := NewSource(42)
	b := NewSource(42)

	for i := 0; i < 50; i++ {
		assert.Equal(t, a.NextDigit(), b.NextDigit())
		assert.Equal(t, a.Choose(12), b.Choose(12))
		assert.Equal(t, a.Intn(40), b.Intn(40))
	}
}

func TestNewSourceRanges(t *testing.T) {
	s := NewSource(7)

	for i := 0; i < 1000; i++ {
		d := s.NextDigit()
		assert.GreaterOrEqual(t, d, 0)
		assert.LessOrEqual(t, d, 9)

		c := s.Choose(12)
		assert.GreaterOrEqual(t, c, 0)
		assert.Less(t, c, 12)
	}
}

func TestSequenceReplaysAndWraps(t *testing.T) {
	s := &Sequence{
		Digits:  DigitsOf("12"),
		Choices: []int{0, 13},
	}

	assert.Equal(t, 1, s.NextDigit())
	assert.Equal(t, 2, s.NextDigit())
	assert.Equal(t, 1, s.NextDigit())

	assert.Equal(t, 0, s.Choose(12))
	assert.Equal(t, 1, s.Choose(12))

	// empty queue yields zero
	assert.Equal(t, 0, s.Intn(40))
}
