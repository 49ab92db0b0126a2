package mapper

import (
	"fmt"
	"strings"

	"ironmaiden/internal/constant"
	"ironmaiden/internal/entity"
)

// EventMapper converts events to and from their persisted log line.
type EventMapper struct{}

func NewEventMapper() *EventMapper {
	return &EventMapper{}
}

// ToLine renders the event without the trailing newline.
func (m *EventMapper) ToLine(e entity.Event) string {
	return fmt.Sprintf("%s %s %s: %s %s %s: %s",
		e.Timestamp,
		constant.LogFieldSeparator,
		constant.LogLabelImsi, e.Imsi,
		constant.LogFieldSeparator,
		constant.LogLabelLocation, e.Location,
	)
}

// SplitFields splits a raw line on the field separator. ok is false unless the
// line has exactly three fields.
func (m *EventMapper) SplitFields(line string) (fields []string, ok bool) {
	fields = strings.Split(strings.TrimSpace(line), constant.LogFieldSeparator)
	return fields, len(fields) == 3
}

// LocationOf extracts the location from a raw line. Lines that do not have
// three fields return ok == false.
func (m *EventMapper) LocationOf(line string) (string, bool) {
	fields, ok := m.SplitFields(line)
	if !ok {
		return "", false
	}
	return stripLabel(fields[2], constant.LogLabelLocation), true
}

// ToEntity parses a full line back into an event. The result is not
// validated; callers decide whether unknown values matter.
func (m *EventMapper) ToEntity(line string) (*entity.Event, bool) {
	fields, ok := m.SplitFields(line)
	if !ok {
		return nil, false
	}
	return &entity.Event{
		Timestamp: strings.TrimSpace(fields[0]),
		Imsi:      stripLabel(fields[1], constant.LogLabelImsi),
		Location:  stripLabel(fields[2], constant.LogLabelLocation),
	}, true
}

func stripLabel(field, label string) string {
	return strings.TrimSpace(strings.ReplaceAll(field, label+": ", ""))
}
