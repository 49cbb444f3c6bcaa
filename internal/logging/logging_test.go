// Copyright LIMIT Lab, 2026. All rights reserved.

package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/limitlab/labsite/pkg/types"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{"", zapcore.InfoLevel},
		{"debug", zapcore.DebugLevel},
		{"WARN", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			l, err := New(types.LogConfig{Level: tt.level})
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(tt.want))
			if tt.want > zapcore.DebugLevel {
				assert.False(t, l.Core().Enabled(tt.want-1))
			}
		})
	}
}

func TestNewConsole(t *testing.T) {
	l, err := New(types.LogConfig{Level: "info", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, l)
}

func TestNewBadLevel(t *testing.T) {
	_, err := New(types.LogConfig{Level: "loud"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
}
