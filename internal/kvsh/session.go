package kvsh

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/chzyer/readline"

	"Kvsh/internal/builtin"
	"Kvsh/internal/command"
	"Kvsh/internal/dispatch"
	"Kvsh/internal/store"
)

// LineReader supplies input lines. readline.Instance satisfies it, as does
// the Shell wrapper that refreshes the prompt before each read.
type LineReader interface {
	Readline() (string, error)
}

// Session owns the store for one run of the shell together with the
// command registry and dispatcher that operate on it.
type Session struct {
	store      *store.Store
	registry   *command.Registry
	dispatcher *dispatch.Dispatcher
	logger     *log.Logger
}

// NewSession returns a Session with an empty store and the default command
// set, writing command output to out.
func NewSession(out io.Writer, logger *log.Logger) (*Session, error) {

	registry := command.NewRegistry()
	if err := builtin.Register(registry); err != nil {
		return nil, fmt.Errorf("kvsh: session: %w", err)
	}

	s := store.New()

	return &Session{
		store:      s,
		registry:   registry,
		dispatcher: dispatch.New(registry, s, out, logger),
		logger:     logger,
	}, nil

}

// Serve reads lines from reader and processes each in turn. An interrupted
// read discards the line and continues; end of input returns nil. Any other
// read error, and any output failure, is returned and ends the session.
func (s *Session) Serve(reader LineReader) error {

	for {

		line, err := reader.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				s.logger.Debug("read interrupted")
				continue
			} else if errors.Is(err, io.EOF) {
				s.logger.Debug("end of input", "keys", s.store.Len())
				return nil
			}
			return fmt.Errorf("kvsh: read failed: %w", err)
		}

		if err := s.dispatcher.Process(line); err != nil {
			return err
		}

	}

}
