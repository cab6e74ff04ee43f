// Package dispatch turns one input line into at most one command execution.
// It echoes the line, asks the registry for a match, and runs the matched
// handler against the session store.
package dispatch

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"Kvsh/internal/command"
	"Kvsh/internal/store"
)

// Dispatcher routes input lines to command handlers.
type Dispatcher struct {
	registry *command.Registry // read-only command set
	store    *store.Store      // session state mutated by handlers
	out      io.Writer         // destination for echo and command output
	logger   *log.Logger       // diagnostics
}

// New returns a Dispatcher writing to out.
func New(registry *command.Registry, s *store.Store, out io.Writer, logger *log.Logger) *Dispatcher {
	return &Dispatcher{registry: registry, store: s, out: out, logger: logger}
}

// Process handles one input line. Blank lines are ignored. Any other line is
// echoed as "cmd <line>", then either the first matching command runs or
// "unrecognized command <line>" is printed. Only write failures are returned.
func (d *Dispatcher) Process(line string) error {

	if strings.TrimSpace(line) == "" {
		return nil
	}

	if _, err := fmt.Fprintf(d.out, "cmd %s\n", line); err != nil {
		return fmt.Errorf("kvsh: dispatch: write operation failed: %w", err)
	}

	match, ok := d.registry.Lookup(line)
	if !ok {
		d.logger.Debug("no command matched", "line", line)
		if _, err := fmt.Fprintf(d.out, "unrecognized command %s\n", line); err != nil {
			return fmt.Errorf("kvsh: dispatch: write operation failed: %w", err)
		}
		return nil
	}

	d.logger.Debug("command matched", "command", match.Tag, "args", match.Args)

	return match.Spec.Handler(d.out, d.store, match.Args)

}
