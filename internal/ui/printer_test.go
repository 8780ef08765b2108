package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.Success("Entity %s gerada", "User")
	p.Warn("sem implementação")
	p.Numbered([]string{"GET", "POST"})
	p.Item("- %s", "create")

	assert.Equal(t, "✅ Entity User gerada\n"+
		"⚠️ sem implementação\n"+
		"   1. GET\n"+
		"   2. POST\n"+
		"   - create\n", buf.String())
}
