package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestUse_RoutesAllLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	Use(zap.New(core))
	t.Cleanup(func() { Init("", "info") })

	Debugf("debug %d", 1)
	Infow("info", "city", "London")
	Warn("warn", zap.Int("status", 404))
	Errorf("error %s", "boom")

	entries := logs.All()
	assert.Len(t, entries, 4)
	assert.Equal(t, "debug 1", entries[0].Message)
	assert.Equal(t, "London", entries[1].ContextMap()["city"])
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, "error boom", entries[3].Message)
}

func TestInit_UnknownLevelFallsBackToInfo(t *testing.T) {
	Init("forecast-api", "loud")
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))

	Init("forecast-api", "debug")
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
	Init("", "info")
}
