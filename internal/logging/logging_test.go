package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewWriter(t *testing.T) {
	ctx := context.Background()

	t.Run("JSON", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := NewWriter(&buf, "info", "json")
		require.NoError(t, err)

		logger.With("component", "test").Info(ctx, "opened", Redacted("secret_key"), "count", 3)

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		require.Equal(t, "opened", rec["msg"])
		require.Equal(t, "test", rec["component"])
		require.Equal(t, Placeholder(), rec["secret_key"])
		require.EqualValues(t, 3, rec["count"])
	})

	t.Run("LevelFilters", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := NewWriter(&buf, "warn", "text")
		require.NoError(t, err)

		logger.Info(ctx, "hidden")
		require.Zero(t, buf.Len())

		logger.Error(ctx, "shown")
		require.Contains(t, buf.String(), "shown")
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := NewWriter(&bytes.Buffer{}, "loud", "text")
		require.Error(t, err)

		_, err = NewWriter(&bytes.Buffer{}, "info", "xml")
		require.Error(t, err)
	})
}

func TestNop(t *testing.T) {
	require.NotPanics(t, func() {
		Nop().With("k", "v").Debug(context.Background(), "nothing")
	})
}
