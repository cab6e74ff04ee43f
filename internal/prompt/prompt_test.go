package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"Kvsh/internal/config"
	"Kvsh/internal/painter"
)

func TestUpdate(t *testing.T) {
	plain := painter.NewPainter(config.Prompt{Theme: "none"})

	assert.Equal(t, "> ", Update(plain, ""))
	assert.Equal(t, "kv> ", Update(plain, "kv> "))
}
