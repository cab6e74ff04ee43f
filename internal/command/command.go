// Package command defines the fixed set of kvsh commands and the registry
// that matches an input line to exactly one of them.
package command

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"Kvsh/internal/parser"
	"Kvsh/internal/store"
)

// Tag identifies a logical command. A registry holds at most one Spec per Tag.
type Tag int

const (
	Get Tag = iota
	Set
	Del
	Vars
)

func (t Tag) String() string {
	switch t {
	case Get:
		return "get"
	case Set:
		return "set"
	case Del:
		return "del"
	case Vars:
		return "vars"
	}
	return fmt.Sprintf("tag(%d)", int(t))
}

// Handler executes a matched command. args holds the pattern captures in
// order; output goes to w. Only write failures are returned.
type Handler func(w io.Writer, s *store.Store, args []string) error

// Spec describes one command: how it is named, how a line is matched
// against it, and what runs when it matches.
type Spec struct {
	Name    string         // Command word typed by the user
	HasArgs bool           // True if the name is followed by an argument clause
	Pattern *regexp.Regexp // Anchored pattern with one group per argument; nil when HasArgs is false
	Handler Handler        // Behaviour invoked on a match
}

// Match is the result of a successful Lookup.
type Match struct {
	Tag  Tag
	Spec Spec
	Args []string
}

// ErrDuplicate is returned when a Tag is registered twice.
var ErrDuplicate = errors.New("command already registered")

// Registry holds the command specs. It is filled once at startup and only
// read afterwards.
type Registry struct {
	specs map[Tag]Spec
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{specs: make(map[Tag]Spec)}
}

// Register adds spec under tag. Returns an error if tag is already taken or
// the spec is incomplete.
func (r *Registry) Register(tag Tag, spec Spec) error {

	if _, exists := r.specs[tag]; exists {
		return fmt.Errorf("kvsh: register %s: %w", tag, ErrDuplicate)
	}

	switch {
	case strings.TrimSpace(spec.Name) == "":
		return fmt.Errorf("kvsh: register %s: empty command name", tag)
	case spec.Handler == nil:
		return fmt.Errorf("kvsh: register %s: nil handler", tag)
	case spec.HasArgs && spec.Pattern == nil:
		return fmt.Errorf("kvsh: register %s: argument command without pattern", tag)
	}

	r.specs[tag] = spec
	return nil

}

// Lookup returns the first registered command whose match rule accepts the
// trimmed line. Commands are tried in Tag order. A line that starts with an
// argument command's name but fails its pattern matches nothing.
func (r *Registry) Lookup(line string) (Match, bool) {

	line = strings.TrimSpace(line)

	for _, tag := range r.tags() {

		spec := r.specs[tag]

		if !spec.HasArgs {
			if line == spec.Name {
				return Match{Tag: tag, Spec: spec}, true
			}
			continue
		}

		if !strings.HasPrefix(line, spec.Name+" ") {
			continue
		}

		if args, ok := parser.Args(spec.Pattern, line); ok {
			return Match{Tag: tag, Spec: spec, Args: args}, true
		}

	}

	return Match{}, false

}

// Names returns the registered command names in Tag order.
func (r *Registry) Names() []string {
	tags := r.tags()
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, r.specs[tag].Name)
	}
	return names
}

func (r *Registry) tags() []Tag {
	tags := make([]Tag, 0, len(r.specs))
	for tag := range r.specs {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}
