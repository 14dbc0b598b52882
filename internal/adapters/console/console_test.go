package console

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notewriter/internal/domain"
)

func TestInput_GetNote(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "unix line", input: "Buy milk\n", want: "Buy milk"},
		{name: "windows line", input: "Buy milk\r\n", want: "Buy milk"},
		{name: "only first line is read", input: "first\nsecond\n", want: "first"},
		{name: "no terminator", input: "last line", want: "last line"},
		{name: "whitespace is kept", input: "  padded  \n", want: "  padded  "},
		{name: "empty line", input: "\n", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var prompt bytes.Buffer
			in := NewInput(strings.NewReader(tt.input), &prompt)

			got, err := in.GetNote(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, Prompt, prompt.String())
		})
	}
}

func TestInput_GetNote_ClosedStream(t *testing.T) {
	in := NewInput(strings.NewReader(""), &bytes.Buffer{})

	_, err := in.GetNote(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInputUnavailable))
}

func TestStorage_Store(t *testing.T) {
	notes := []string{"Buy milk", "", "with: colon", "multi\nline"}
	at := time.Date(2024, time.January, 15, 18, 30, 0, 0, time.Local)

	for _, text := range notes {
		var out bytes.Buffer
		s := NewStorage(&out)

		require.NoError(t, s.Store(context.Background(), domain.NewNote(text, at)))
		assert.Equal(t, "2024-01-15-18:30:00: "+text+"\n", out.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestStorage_Store_WriteFailure(t *testing.T) {
	s := NewStorage(failingWriter{})

	err := s.Store(context.Background(), domain.NewNote("x", time.Now()))
	assert.True(t, errors.Is(err, domain.ErrStorageUnavailable))
}
