package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf)

	log.Warn().Str("row", "7").Msg("unparseable date")

	out := buf.String()
	assert.Contains(t, out, "unparseable date")
	assert.Contains(t, out, `"row":"7"`)
}
