package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	cases := map[string]zapcore.Level{
		"":      zapcore.InfoLevel,
		"info":  zapcore.InfoLevel,
		"debug": zapcore.DebugLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
	}

	for level, want := range cases {
		for _, format := range []string{"json", "console"} {
			l, err := New(level, format)
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(want), "level %q format %q", level, format)
			if want > zapcore.DebugLevel {
				assert.False(t, l.Core().Enabled(want-1), "level %q should drop lower levels", level)
			}
		}
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New("verbose", "json")
	assert.Error(t, err)
}
