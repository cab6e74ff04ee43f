package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPattern_SingleCapture(t *testing.T) {
	re, err := Pattern("get", Separator, Capture(Identifier))
	require.NoError(t, err)
	assert.Equal(t, `^get ([a-z0-9_]+)$`, re.String())

	tests := []struct {
		line string
		args []string
		ok   bool
	}{
		{"get x", []string{"x"}, true},
		{"get some_key_9", []string{"some_key_9"}, true},
		{"get ", nil, false},
		{"get ABC", nil, false},
		{"get a b", nil, false},
		{"get  x", nil, false},
		{"forget x", nil, false},
		{"get x-y", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			args, ok := Args(re, tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestPattern_KeyValue(t *testing.T) {
	re, err := Pattern("set", Separator, Capture(Identifier), OptionalWhitespace, "=", OptionalWhitespace, Capture(Value))
	require.NoError(t, err)

	tests := []struct {
		line string
		args []string
		ok   bool
	}{
		{"set x=5", []string{"x", "5"}, true},
		{"set x = 5", []string{"x", "5"}, true},
		{"set x   =5", []string{"x", "5"}, true},
		{"set x=   5", []string{"x", "5"}, true},
		{"set x", nil, false},
		{"set x=", nil, false},
		{"set X=5", nil, false},
		{"set x=5 6", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			args, ok := Args(re, tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestPattern_Errors(t *testing.T) {
	_, err := Pattern("  ")
	assert.Error(t, err)

	_, err = Pattern("bad", "(")
	assert.Error(t, err)
}
