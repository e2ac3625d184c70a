package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAuditEntry(t *testing.T) {
	stamp := time.Date(2026, 8, 29, 13, 5, 0, 0, time.UTC)
	entry := AuditEntry{
		Seq:       3,
		Timestamp: stamp,
		Kind:      AuditTransition,
		Summary:   "run/gain for 7",
		Data:      map[string]any{"yards": 7, "play_type": "run"},
	}

	// Round-trip through JSON the way a sink would store it.
	raw, err := json.Marshal(entry)
	require.NoError(t, err)
	var asMap map[string]any
	require.NoError(t, json.Unmarshal(raw, &asMap))

	decoded, err := DecodeAuditEntry(asMap)
	require.NoError(t, err)

	assert.Equal(t, entry.Seq, decoded.Seq)
	assert.True(t, entry.Timestamp.Equal(decoded.Timestamp))
	assert.Equal(t, entry.Kind, decoded.Kind)
	assert.Equal(t, entry.Summary, decoded.Summary)
	assert.Equal(t, "run", decoded.Data["play_type"])
}

func TestDecodeAuditEntryBadTimestamp(t *testing.T) {
	_, err := DecodeAuditEntry(map[string]any{
		"seq":       1,
		"timestamp": "not-a-time",
		"kind":      "event",
		"summary":   "x",
	})
	assert.Error(t, err)
}
