package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notewriter/internal/adapters/console"
	"notewriter/internal/adapters/csvlog"
	"notewriter/internal/domain"
	"notewriter/internal/ports"
)

type closingStorage struct {
	ports.NoteStorage
	closed   bool
	closeErr error
}

func (c *closingStorage) Close() error {
	c.closed = true
	return c.closeErr
}

func run(t *testing.T, pair Pairing, args ...string) (string, error) {
	t.Helper()
	out, _, err := runWithStderr(t, pair, args...)
	return out, err
}

func runWithStderr(t *testing.T, pair Pairing, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer

	cmd := NewRootCmd("notewriter-test", "test", pair)
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestRootCmd_WritesOneNote(t *testing.T) {
	pair := func(out io.Writer, _ *slog.Logger) (ports.NoteInput, ports.NoteStorage, error) {
		return console.NewInput(strings.NewReader("hello\n"), out), console.NewStorage(out), nil
	}

	out, err := run(t, pair)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, console.Prompt))
	assert.True(t, strings.HasSuffix(out, ": hello\n"))
}

func TestRootCmd_CSVPairing(t *testing.T) {
	root := filepath.Join(t.TempDir(), "csv_notes")
	pair := func(out io.Writer, logger *slog.Logger) (ports.NoteInput, ports.NoteStorage, error) {
		return console.NewInput(strings.NewReader("line\n"), out), csvlog.NewStorage(root, out, logger), nil
	}

	out, err := run(t, pair)
	require.NoError(t, err)
	assert.Contains(t, out, "Note written successfully!")

	data, err := os.ReadFile(filepath.Join(root, csvlog.LogFile))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "date,note\n"))
}

func TestRootCmd_RejectsArguments(t *testing.T) {
	called := false
	pair := func(out io.Writer, _ *slog.Logger) (ports.NoteInput, ports.NoteStorage, error) {
		called = true
		return nil, nil, nil
	}

	_, err := run(t, pair, "unexpected")
	assert.Error(t, err)
	assert.False(t, called)
}

func TestRootCmd_ClosesStorage(t *testing.T) {
	storage := &closingStorage{NoteStorage: console.NewStorage(io.Discard)}
	pair := func(out io.Writer, _ *slog.Logger) (ports.NoteInput, ports.NoteStorage, error) {
		return console.NewInput(strings.NewReader("x\n"), out), storage, nil
	}

	_, err := run(t, pair)
	require.NoError(t, err)
	assert.True(t, storage.closed)
}

func TestRootCmd_PropagatesFailures(t *testing.T) {
	tests := []struct {
		name   string
		pair   Pairing
		wantIs error
	}{
		{
			name: "closed input",
			pair: func(out io.Writer, _ *slog.Logger) (ports.NoteInput, ports.NoteStorage, error) {
				return console.NewInput(strings.NewReader(""), out), console.NewStorage(out), nil
			},
			wantIs: domain.ErrInputUnavailable,
		},
		{
			name: "storage cannot be built",
			pair: func(out io.Writer, _ *slog.Logger) (ports.NoteInput, ports.NoteStorage, error) {
				return nil, nil, &domain.StorageError{Backend: "sqlite", Err: errors.New("locked")}
			},
			wantIs: domain.ErrStorageUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.pair)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantIs))
		})
	}
}

func TestRootCmd_CloseFailureIsReported(t *testing.T) {
	storage := &closingStorage{
		NoteStorage: console.NewStorage(io.Discard),
		closeErr:    errors.New("checkpoint failed"),
	}
	pair := func(out io.Writer, _ *slog.Logger) (ports.NoteInput, ports.NoteStorage, error) {
		return console.NewInput(strings.NewReader("x\n"), out), storage, nil
	}

	_, stderr, err := runWithStderr(t, pair)
	require.Error(t, err)
	assert.True(t, storage.closed)
	assert.ErrorContains(t, err, "checkpoint failed")
	assert.Contains(t, stderr, "level=ERROR")
}

func TestRootCmd_LogsFailureAtError(t *testing.T) {
	pair := func(out io.Writer, _ *slog.Logger) (ports.NoteInput, ports.NoteStorage, error) {
		return console.NewInput(strings.NewReader(""), out), console.NewStorage(out), nil
	}

	_, stderr, err := runWithStderr(t, pair)
	require.Error(t, err)
	assert.Contains(t, stderr, "level=ERROR")
	assert.Contains(t, stderr, `msg="write failed"`)
	assert.Contains(t, stderr, "console input")
}

func TestRootCmd_SuccessLogsNothing(t *testing.T) {
	pair := func(out io.Writer, _ *slog.Logger) (ports.NoteInput, ports.NoteStorage, error) {
		return console.NewInput(strings.NewReader("quiet\n"), out), console.NewStorage(out), nil
	}

	_, stderr, err := runWithStderr(t, pair)
	require.NoError(t, err)
	assert.Empty(t, stderr)
}
