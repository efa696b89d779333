package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"fieldassets/internal/app/server/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name         string
		env          string
		debugEnabled bool
	}{
		{
			name:         "local environment",
			env:          config.EnvLocal,
			debugEnabled: true,
		},
		{
			name:         "dev environment",
			env:          config.EnvDev,
			debugEnabled: true,
		},
		{
			name:         "prod environment",
			env:          config.EnvProd,
			debugEnabled: false,
		},
		{
			name:         "unknown environment falls back to prod settings",
			env:          "staging",
			debugEnabled: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.env)
			require.NotNil(t, log)

			ctx := context.Background()
			assert.Equal(t, tt.debugEnabled, log.Enabled(ctx, slog.LevelDebug))
			assert.True(t, log.Enabled(ctx, slog.LevelInfo))
		})
	}
}
