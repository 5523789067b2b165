package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "debug", Format: "json", Output: &buf})

	log.With(String("cable", "Drake")).Debug(context.Background(), "reload converged",
		Int("iterations", 7), Float("residual", 1e-9), Err(errors.New("none")))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "reload converged", entry["msg"])
	assert.Equal(t, "DEBUG", entry["level"])
	assert.Equal(t, "Drake", entry["cable"])
	assert.Equal(t, float64(7), entry["iterations"])
	assert.Equal(t, "none", entry["error"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "warn", Output: &buf})

	log.Info(context.Background(), "dropped")
	assert.Empty(t, buf.String())

	log.Warn(context.Background(), "kept")
	assert.Contains(t, buf.String(), "kept")

	log.Error(context.Background(), "also kept")
	assert.Contains(t, buf.String(), "also kept")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]string{
		"debug":   "DEBUG",
		"WARNING": "WARN",
		"error":   "ERROR",
		"":        "INFO",
		"bogus":   "INFO",
	}
	for in, expected := range tests {
		assert.Equal(t, expected, parseLevel(in).Level().String(), in)
	}
}

func TestNoop(t *testing.T) {
	log := Noop().With(String("k", "v"))
	assert.NotPanics(t, func() {
		log.Debug(context.Background(), "x")
		log.Info(context.Background(), "x")
		log.Warn(context.Background(), "x")
		log.Error(context.Background(), "x")
	})
}
