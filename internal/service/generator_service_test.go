package service

import (
	"regexp"
	"testing"
	"time"

	"ironmaiden/internal/constant"
	"ironmaiden/pkg/clock"
	"ironmaiden/pkg/random"

	"github.com/stretchr/testify/assert"
)

var imsiPattern = regexp.MustCompile(`^[0-9]{15}$`)

func TestGenerateEventFromSequence(t *testing.T) {
	rnd := &random.Sequence{
		Digits:  random.DigitsOf("123456789012345"),
		Choices: []int{6},
	}
	now := time.Date(2024, 5, 1, 9, 5, 7, 999, time.Local)
	svc := NewGeneratorService(rnd, clock.NewFixed(now))

	event := svc.GenerateEvent()

	assert.Equal(t, "123456789012345", event.Imsi)
	assert.Equal(t, "Sydney Opera House", event.Location)
	assert.Equal(t, "2024-05-01 09:05:07", event.Timestamp)
}

func TestGenerateEventInvariants(t *testing.T) {
	svc := NewGeneratorService(random.NewSource(1), clock.NewSystem())

	for i := 0; i < 500; i++ {
		event := svc.GenerateEvent()
		assert.Regexp(t, imsiPattern, event.Imsi)
		assert.True(t, constant.IsLandmark(event.Location), event.Location)
		assert.NoError(t, event.Validate())
	}
}

func TestGenerateEventLeadingZeros(t *testing.T) {
	rnd := &random.Sequence{Digits: random.DigitsOf("000000000000001")}
	svc := NewGeneratorService(rnd, clock.NewSystem())

	assert.Equal(t, "000000000000001", svc.GenerateEvent().Imsi)
}
