package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "warn", false)
	log.Info().Msg("hidden")
	log.Warn().Str("rule", "B3/S23").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"rule":"B3/S23"`)
	assert.Contains(t, out, `"level":"warn"`)
}

func TestNewFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "loud", false)
	log.Debug().Msg("hidden")
	log.Info().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewPretty(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "info", true)
	log.Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
	assert.NotContains(t, buf.String(), `"message"`)
}
