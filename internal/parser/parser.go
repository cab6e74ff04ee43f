// Package parser builds the regular expressions kvsh uses to recognise a
// command line and extract its arguments. Patterns are assembled from a few
// shared fragments and are always anchored, so a line must match in full.
package parser

import (
	"fmt"
	"regexp"
	"strings"
)

// Fragments shared by every command pattern.
const (
	Identifier         = `[a-z0-9_]+` // key names
	Value              = `[a-z0-9_]+` // stored values
	OptionalWhitespace = `[ ]*`       // spaces allowed around "="
	Separator          = ` `          // exactly one space after the command name
)

// Capture wraps fragment in a capturing group.
func Capture(fragment string) string {
	return "(" + fragment + ")"
}

// Pattern compiles an anchored expression for the command name followed by
// parts. The name is matched literally; parts are raw regexp fragments.
// Returns an error when the assembled expression does not compile.
func Pattern(name string, parts ...string) (*regexp.Regexp, error) {

	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("kvsh: parser: empty command name")
	}

	var builder strings.Builder

	builder.WriteByte('^')
	builder.WriteString(regexp.QuoteMeta(name))
	for _, part := range parts {
		builder.WriteString(part)
	}
	builder.WriteByte('$')

	re, err := regexp.Compile(builder.String())
	if err != nil {
		return nil, fmt.Errorf("kvsh: parser: %s: %w", name, err)
	}

	return re, nil

}

// Args applies re to line and returns the captured groups, or false when
// the whole line does not match.
func Args(re *regexp.Regexp, line string) ([]string, bool) {
	captures := re.FindStringSubmatch(line)
	if captures == nil {
		return nil, false
	}
	return captures[1:], true
}
