package memory

import (
	"context"
	"iter"
	"sync"

	"ironmaiden/internal/repository/contract"
)

// EventLogRepository keeps lines in memory for tests.
type EventLogRepository struct {
	mu      sync.RWMutex
	lines   []string
	created bool
}

func NewEventLogRepository(lines ...string) *EventLogRepository {
	return &EventLogRepository{
		lines:   append([]string(nil), lines...),
		created: len(lines) > 0,
	}
}

var _ contract.EventLogRepository = (*EventLogRepository)(nil)

func (r *EventLogRepository) Append(ctx context.Context, line string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, line)
	r.created = true
	return nil
}

func (r *EventLogRepository) Exists(ctx context.Context) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.created, nil
}

func (r *EventLogRepository) Lines(ctx context.Context) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		r.mu.RLock()
		snapshot := append([]string(nil), r.lines...)
		r.mu.RUnlock()

		for _, line := range snapshot {
			if !yield(line, nil) {
				return
			}
		}
	}
}
