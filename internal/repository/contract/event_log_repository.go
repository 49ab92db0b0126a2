package contract

import (
	"context"
	"iter"
)

// EventLogRepository is an append-and-scan store of raw log lines.
type EventLogRepository interface {
	// Append writes one line. The line must not contain the terminator.
	Append(ctx context.Context, line string) error
	// Lines yields every stored line from the start. Each range over the
	// returned sequence restarts from the beginning. A missing log yields
	// nothing.
	Lines(ctx context.Context) iter.Seq2[string, error]
	Exists(ctx context.Context) (bool, error)
}
