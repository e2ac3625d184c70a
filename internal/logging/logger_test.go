package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, slog.LevelInfo)

	logger.Debug("hidden")
	logger.Info("processed", "error", errors.New("boom"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "processed")
	assert.Contains(t, out, "err=boom", "the error key is standardized")
}

func TestNewNop(t *testing.T) {
	logger := NewNop()
	assert.NotPanics(t, func() {
		logger.Info("into the void", "k", strings.Repeat("v", 10))
	})
}
