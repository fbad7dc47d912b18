package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitialize_ValidLevels(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	levels := []string{"debug", "info", "warn", "error", "dpanic", "panic", "fatal"}

	for _, lvl := range levels {
		t.Run(lvl, func(t *testing.T) {
			err := Initialize(lvl)
			assert.NoError(t, err, "expected no error for level %s", lvl)
			assert.NotNil(t, Log)

			assert.NotPanics(t, func() {
				Log.Infow("logger check", "level", lvl)
			})
		})
	}
}

func TestInitialize_LevelFiltering(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	assert.NoError(t, Initialize("error"))

	desugared := Log.Desugar()
	assert.False(t, desugared.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, desugared.Core().Enabled(zapcore.ErrorLevel))
}

func TestInitialize_InvalidLevel(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	err := Initialize("not-a-level")
	assert.Error(t, err, "expected error for invalid log level")
}

func TestLog_NopBeforeInitialize(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	assert.NotNil(t, Log)
	assert.IsType(t, &zap.SugaredLogger{}, Log)

	assert.NotPanics(t, func() {
		Log.Infow("nop logger check")
	})
}
