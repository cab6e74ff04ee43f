// Package builtin implements the kvsh commands get, set, del and vars and
// registers them with a command.Registry. Handlers receive the arguments
// already captured by the command's pattern and write their result lines to
// the provided writer.
package builtin

import (
	"fmt"
	"io"

	"Kvsh/internal/command"
	"Kvsh/internal/parser"
	"Kvsh/internal/store"
)

// Register installs the default command set into registry. Returns an error
// if a pattern fails to compile or a command is already registered.
func Register(registry *command.Registry) error {

	keyArg := parser.Capture(parser.Identifier)

	getPattern, err := parser.Pattern("get", parser.Separator, keyArg)
	if err != nil {
		return err
	}

	setPattern, err := parser.Pattern("set", parser.Separator, keyArg,
		parser.OptionalWhitespace, "=", parser.OptionalWhitespace, parser.Capture(parser.Value))
	if err != nil {
		return err
	}

	delPattern, err := parser.Pattern("del", parser.Separator, keyArg)
	if err != nil {
		return err
	}

	specs := map[command.Tag]command.Spec{
		command.Vars: {Name: "vars", Handler: vars},
		command.Get:  {Name: "get", HasArgs: true, Pattern: getPattern, Handler: get},
		command.Set:  {Name: "set", HasArgs: true, Pattern: setPattern, Handler: set},
		command.Del:  {Name: "del", HasArgs: true, Pattern: delPattern, Handler: del},
	}

	for tag, spec := range specs {
		if err := registry.Register(tag, spec); err != nil {
			return err
		}
	}

	return nil

}

// get prints "<key> = <value>" or reports that the key is unset.
func get(writer io.Writer, s *store.Store, args []string) error {

	key := args[0]

	var err error
	if value, ok := s.Get(key); ok {
		_, err = fmt.Fprintf(writer, "%s = %s\n", key, value)
	} else {
		_, err = fmt.Fprintf(writer, "no value set for key %s\n", key)
	}
	if err != nil {
		return fmt.Errorf("kvsh: get: write operation failed: %w", err)
	}

	return nil

}

// set stores the value silently, overwriting any previous one.
func set(_ io.Writer, s *store.Store, args []string) error {
	s.Set(args[0], args[1])
	return nil
}

// del removes the key and reports whether anything was removed.
func del(writer io.Writer, s *store.Store, args []string) error {

	key := args[0]

	var err error
	if s.Delete(key) {
		_, err = fmt.Fprintf(writer, "removed %s\n", key)
	} else {
		_, err = fmt.Fprintf(writer, "%s was not set so not removed\n", key)
	}
	if err != nil {
		return fmt.Errorf("kvsh: del: write operation failed: %w", err)
	}

	return nil

}

// vars lists every entry sorted by key, or "(none)" for an empty store.
func vars(writer io.Writer, s *store.Store, _ []string) error {

	entries := s.List()
	if len(entries) == 0 {
		if _, err := fmt.Fprintln(writer, "(none)"); err != nil {
			return fmt.Errorf("kvsh: vars: write operation failed: %w", err)
		}
		return nil
	}

	for _, entry := range entries {
		if _, err := fmt.Fprintf(writer, "%s = %s\n", entry.Key, entry.Value); err != nil {
			return fmt.Errorf("kvsh: vars: write operation failed: %w", err)
		}
	}

	return nil

}
