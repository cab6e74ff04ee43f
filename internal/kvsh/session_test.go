package kvsh

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/chzyer/readline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Kvsh/internal/logger"
)

// scripted replays lines, then the configured error (io.EOF by default).
type scripted struct {
	lines []string
	errs  map[int]error
	end   error
	pos   int
}

func (s *scripted) Readline() (string, error) {
	defer func() { s.pos++ }()
	if err, ok := s.errs[s.pos]; ok {
		return "", err
	}
	if s.pos >= len(s.lines) {
		if s.end != nil {
			return "", s.end
		}
		return "", io.EOF
	}
	return s.lines[s.pos], nil
}

func newSession(t *testing.T, out io.Writer) *Session {
	t.Helper()
	s, err := NewSession(out, logger.Discard())
	require.NoError(t, err)
	return s
}

func TestServe_Scenario(t *testing.T) {
	var out bytes.Buffer
	s := newSession(t, &out)

	reader := &scripted{lines: []string{"set x = 5", "get x", "del x", "get x", "vars"}}
	require.NoError(t, s.Serve(reader))

	assert.Equal(t, "cmd set x = 5\n"+
		"cmd get x\nx = 5\n"+
		"cmd del x\nremoved x\n"+
		"cmd get x\nno value set for key x\n"+
		"cmd vars\n(none)\n", out.String())
}

func TestServe_MixedInput(t *testing.T) {
	var out bytes.Buffer
	s := newSession(t, &out)

	reader := &scripted{lines: []string{"", "set b=2", "   ", "get B", "set a=1", "set a=1", "vars"}}
	require.NoError(t, s.Serve(reader))

	assert.Equal(t, "cmd set b=2\n"+
		"cmd get B\nunrecognized command get B\n"+
		"cmd set a=1\n"+
		"cmd set a=1\n"+
		"cmd vars\na = 1\nb = 2\n", out.String())
	assert.Equal(t, 2, s.store.Len())
}

func TestServe_InterruptContinues(t *testing.T) {
	var out bytes.Buffer
	s := newSession(t, &out)

	reader := &scripted{
		lines: []string{"set k=v", "", "get k"},
		errs:  map[int]error{1: readline.ErrInterrupt},
	}
	require.NoError(t, s.Serve(reader))

	assert.Equal(t, "cmd set k=v\ncmd get k\nk = v\n", out.String())
}

func TestServe_ReadFailureIsFatal(t *testing.T) {
	var out bytes.Buffer
	s := newSession(t, &out)

	failure := errors.New("input closed")
	err := s.Serve(&scripted{lines: []string{"vars"}, end: failure})

	assert.ErrorIs(t, err, failure)
	assert.Equal(t, "cmd vars\n(none)\n", out.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("stdout closed") }

func TestServe_WriteFailureIsFatal(t *testing.T) {
	s := newSession(t, failingWriter{})

	reader := &scripted{lines: []string{"vars", "vars"}}
	err := s.Serve(reader)

	assert.ErrorContains(t, err, "stdout closed")
	assert.Equal(t, 1, reader.pos)
}
