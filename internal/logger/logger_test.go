package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSetLevel(t *testing.T) {
	t.Run("safe before Init", func(t *testing.T) {
		// The config watcher may fire before the logger is built.
		assert.NotPanics(t, func() {
			require.NoError(t, SetLevel("warn"))
		})
		assert.Equal(t, zap.WarnLevel, level.Level())
	})

	t.Run("rejects unknown levels", func(t *testing.T) {
		assert.Error(t, SetLevel("chatty"))
	})

	t.Run("adjusts the built logger", func(t *testing.T) {
		require.NoError(t, Init("production"))
		assert.Equal(t, zap.InfoLevel, level.Level())

		require.NoError(t, SetLevel("error"))
		assert.Equal(t, zap.ErrorLevel, level.Level())
	})
}
