package mapper

import (
	"testing"

	"ironmaiden/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventMapperToLine(t *testing.T) {
	m := NewEventMapper()
	line := m.ToLine(entity.Event{
		Imsi:      "123456789012345",
		Location:  "Golden Gate Bridge",
		Timestamp: "2024-05-01 10:00:00",
	})

	assert.Equal(t, "2024-05-01 10:00:00 | IMSI: 123456789012345 | Location: Golden Gate Bridge", line)
}

func TestEventMapperRoundTrip(t *testing.T) {
	m := NewEventMapper()
	events := []entity.Event{
		{Imsi: "000000000000001", Location: "Central Park", Timestamp: "2024-05-01 10:00:00"},
		{Imsi: "999999999999999", Location: "Sydney Opera House", Timestamp: "2024-12-31 23:59:59"},
	}

	for _, e := range events {
		got, ok := m.ToEntity(m.ToLine(e) + "\n")
		require.True(t, ok)
		assert.Equal(t, e, *got)
	}
}

func TestEventMapperLocationOf(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   string
		wantOk bool
	}{
		{"well formed", "2024-05-01 10:00:00 | IMSI: 123 | Location: Red Square", "Red Square", true},
		{"unknown location kept", "ts | IMSI: 1 | Location: Atlantis", "Atlantis", true},
		{"missing label", "ts | 1 | Colosseum  ", "Colosseum", true},
		{"too few fields", "garbage line", "", false},
		{"too many fields", "a | b | c | d", "", false},
		{"empty line", "", "", false},
	}

	m := NewEventMapper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := m.LocationOf(tt.line)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
