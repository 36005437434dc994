package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		t.Run(format, func(t *testing.T) {
			log, err := New("debug", format)
			require.NoError(t, err)
			assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
		})
	}

	t.Run("level filters", func(t *testing.T) {
		log, err := New("warn", "json")
		require.NoError(t, err)
		assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, log.Core().Enabled(zapcore.ErrorLevel))
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := New("loud", "json")
		assert.Error(t, err)
	})
}
