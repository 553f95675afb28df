package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "warn", nil)

	log.Info("booked session id=%d", 1)
	log.Warn("trainer id=%d not available", 7)

	out := buf.String()
	assert.NotContains(t, out, "booked session")
	assert.Contains(t, out, "trainer id=7 not available")
	assert.Contains(t, out, "level=WARN")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", parseLevel("debug").String())
	assert.Equal(t, "INFO", parseLevel("unknown").String())
	assert.Equal(t, "ERROR", parseLevel("ERROR").String())
}
