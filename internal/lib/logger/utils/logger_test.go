package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"posyandu/internal/lib/logger/utils"
)

func TestInitLoggerLevel(t *testing.T) {
	prev := utils.Logger
	t.Cleanup(func() { utils.Logger = prev })

	require.NoError(t, utils.InitLoggerLevel("warn"))
	assert.False(t, utils.Logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, utils.Logger.Core().Enabled(zapcore.WarnLevel))

	require.NoError(t, utils.InitLogger())
	assert.True(t, utils.Logger.Core().Enabled(zapcore.DebugLevel))
}

func TestInitLoggerLevel_Invalid(t *testing.T) {
	prev := utils.Logger
	t.Cleanup(func() { utils.Logger = prev })

	utils.Logger = zap.NewNop()
	assert.Error(t, utils.InitLoggerLevel("loud"))
	assert.False(t, utils.Logger.Core().Enabled(zapcore.ErrorLevel), "logger is left untouched")
}
