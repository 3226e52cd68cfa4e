// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("hero-gateway")
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "hero-gateway", entry["role"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("dropped")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger_InheritsParentFields(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("parent-role")
	parent.Logger = parent.Output(&buf)

	child := parent.GetChildLogger()
	require.NotSame(t, parent, child)

	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", "abc")
	})
	child.Info().Msg("from child")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "parent-role", entry["role"])
	assert.Equal(t, "abc", entry["trace_id"])
}

func TestFromContext(t *testing.T) {
	t.Run("no logger attached", func(t *testing.T) {
		require.NotNil(t, FromContext(context.Background()))
	})

	t.Run("attached logger is returned", func(t *testing.T) {
		var buf bytes.Buffer
		zl := zerolog.New(&buf).With().Str("trace_id", "ctx-trace").Logger()

		FromContext(zl.WithContext(context.Background())).Info().Msg("x")

		assert.Equal(t, "ctx-trace", decodeEntry(t, &buf)["trace_id"])
	})
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "req-trace").Logger()
	req := httptest.NewRequest(http.MethodGet, "/heroes", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	FromRequest(req).Info().Msg("x")

	assert.Equal(t, "req-trace", decodeEntry(t, &buf)["trace_id"])
}
