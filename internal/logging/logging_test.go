package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriterProdWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "debug", StageProd)

	logger.Debug().Str("game", "abc123").Msg("game created")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "abc123", entry["game"])
	assert.Equal(t, "game created", entry["message"])
}

func TestNewWithWriterLevelFiltering(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected bool
	}{
		{name: "info drops debug", level: "info", expected: false},
		{name: "debug keeps debug", level: "debug", expected: true},
		{name: "invalid falls back to info", level: "chatty", expected: false},
		{name: "empty falls back to info", level: "", expected: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewWithWriter(&buf, test.level, StageProd)

			logger.Debug().Msg("debug line")
			assert.Equal(t, test.expected, buf.Len() > 0)
		})
	}
}

func TestNewWithWriterDevIsConsole(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "info", StageDev)

	logger.Info().Msg("listening")
	assert.Contains(t, buf.String(), "listening")
	assert.False(t, json.Valid(buf.Bytes()))
}
