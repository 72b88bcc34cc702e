package logging_test

import (
	"testing"

	"github.com/plus3/dodge/config"
	"github.com/plus3/dodge/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		cfg    config.LoggingConfig
		level  zapcore.Level
		silent zapcore.Level
	}{
		{"console debug", config.LoggingConfig{Level: "debug", Format: "console"}, zapcore.DebugLevel, zapcore.DebugLevel - 1},
		{"json warn", config.LoggingConfig{Level: "warn", Format: "json"}, zapcore.WarnLevel, zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := logging.New(tt.cfg)
			require.NoError(t, err)

			assert.True(t, log.Core().Enabled(tt.level))
			assert.False(t, log.Core().Enabled(tt.silent))
		})
	}
}

func TestNewRejectsUnknownSettings(t *testing.T) {
	_, err := logging.New(config.LoggingConfig{Level: "chatty", Format: config.FormatConsole})
	assert.ErrorContains(t, err, "logging level")

	_, err = logging.New(config.LoggingConfig{Level: "info", Format: "xml"})
	assert.ErrorContains(t, err, `logging format "xml"`)
}
