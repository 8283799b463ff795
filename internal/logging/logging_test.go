package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "WARN", "json")
	require.NoError(t, err)

	logger.Info().Msg("hidden")
	logger.Warn().Str("question", "destination").Msg("shown")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "shown", entry["message"])
	assert.Equal(t, "destination", entry["question"])
	assert.Equal(t, "warn", entry["level"])
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "debug", "console")
	require.NoError(t, err)

	logger.Debug().Msg("step changed")
	assert.Contains(t, buf.String(), "step changed")
}

func TestNew_Errors(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "loud", "json")
	assert.Error(t, err)

	_, err = New(&bytes.Buffer{}, "info", "xml")
	assert.Error(t, err)
}

func TestSetup_InstallsGlobal(t *testing.T) {
	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })

	var buf bytes.Buffer
	_, err := Setup(&buf, "info", "json")
	require.NoError(t, err)

	log.Info().Msg("global")
	assert.Contains(t, buf.String(), `"message":"global"`)
}
