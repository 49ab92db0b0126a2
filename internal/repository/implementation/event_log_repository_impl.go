package implementation

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"os"
	"strings"

	"ironmaiden/internal/repository/contract"
)

// FileEventLogRepository stores lines in a plain append-only text file.
//
// Each call opens the file, does one bounded transfer and closes it. There is
// no file locking: separate processes appending to the same path are not
// coordinated and may interleave partial lines.
type FileEventLogRepository struct {
	path string
}

func NewFileEventLogRepository(path string) contract.EventLogRepository {
	return &FileEventLogRepository{path: path}
}

func (r *FileEventLogRepository) Append(ctx context.Context, line string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open event log %s: %w", r.path, err)
	}

	if _, err := f.WriteString(line + "\n"); err != nil {
		f.Close()
		return fmt.Errorf("append event log %s: %w", r.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close event log %s: %w", r.path, err)
	}
	return nil
}

func (r *FileEventLogRepository) Exists(ctx context.Context) (bool, error) {
	_, err := os.Stat(r.path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("stat event log %s: %w", r.path, err)
}

func (r *FileEventLogRepository) Lines(ctx context.Context) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		f, err := os.Open(r.path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return
			}
			yield("", fmt.Errorf("open event log %s: %w", r.path, err))
			return
		}
		defer f.Close()

		// No line length limit.
		reader := bufio.NewReader(f)
		for {
			if err := ctx.Err(); err != nil {
				yield("", err)
				return
			}

			line, err := reader.ReadString('\n')
			if err != nil && !errors.Is(err, io.EOF) {
				yield("", fmt.Errorf("read event log %s: %w", r.path, err))
				return
			}
			if err != nil && line == "" {
				return
			}

			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			if !yield(line, nil) {
				return
			}
			if err != nil {
				return
			}
		}
	}
}
