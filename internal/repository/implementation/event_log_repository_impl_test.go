package implementation

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, seq func(func(string, error) bool)) []string {
	t.Helper()
	var out []string
	for line, err := range seq {
		require.NoError(t, err)
		out = append(out, line)
	}
	return out
}

func TestFileEventLogRepositoryMissingFile(t *testing.T) {
	ctx := context.Background()
	repo := NewFileEventLogRepository(filepath.Join(t.TempDir(), "events.log"))

	exists, err := repo.Exists(ctx)
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Empty(t, collect(t, repo.Lines(ctx)))
}

func TestFileEventLogRepositoryAppendCreatesAndAppends(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "events.log")
	repo := NewFileEventLogRepository(path)

	require.NoError(t, repo.Append(ctx, "first"))
	require.NoError(t, repo.Append(ctx, "second"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(raw))

	exists, err := repo.Exists(ctx)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestFileEventLogRepositoryLinesRestartable(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "events.log")
	require.NoError(t, os.WriteFile(path, []byte("a | b | c\nnot a record\n\nx | y | z\n"), 0644))

	repo := NewFileEventLogRepository(path)
	seq := repo.Lines(ctx)

	first := collect(t, seq)
	second := collect(t, seq)

	assert.Equal(t, []string{"a | b | c", "not a record", "", "x | y | z"}, first)
	assert.Equal(t, first, second)
}

func TestFileEventLogRepositoryLinesStopsEarly(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "events.log")
	require.NoError(t, os.WriteFile(path, []byte("1\n2\n3\n"), 0644))

	repo := NewFileEventLogRepository(path)
	var got []string
	for line, err := range repo.Lines(ctx) {
		require.NoError(t, err)
		got = append(got, line)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"1", "2"}, got)
}

func TestFileEventLogRepositoryAppendFailsInMissingDir(t *testing.T) {
	repo := NewFileEventLogRepository(filepath.Join(t.TempDir(), "missing", "events.log"))
	err := repo.Append(context.Background(), "line")
	assert.Error(t, err)
}

func TestFileEventLogRepositoryLinesOverlongAndUnterminated(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "events.log")
	long := strings.Repeat("x", 2*1024*1024)
	require.NoError(t, os.WriteFile(path, []byte("first\r\n"+long+"\nlast"), 0644))

	repo := NewFileEventLogRepository(path)
	lines := collect(t, repo.Lines(ctx))

	require.Len(t, lines, 3)
	assert.Equal(t, "first", lines[0])
	assert.Len(t, lines[1], len(long))
	assert.Equal(t, "last", lines[2])
}
