package httplog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"forecast-api/pkg/log"
)

func TestRedact(t *testing.T) {
	logger := NewZapLogger("openweathermap", "appid")

	assert.Equal(t,
		"https://api.example.com/forecast?appid=REDACTED&q=London",
		logger.Redact("https://api.example.com/forecast?q=London&appid=secret"))
	assert.Equal(t,
		"https://api.example.com/forecast?q=London",
		logger.Redact("https://api.example.com/forecast?q=London"))
}

func TestLogResponseError_NeverLogsCredential(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log.Use(zap.New(core))
	t.Cleanup(func() { log.Init("", "info") })

	logger := NewZapLogger("openweathermap", "appid")
	rawURL := "https://api.example.com/forecast?q=London&appid=secret"

	logger.LogRequest("GET", rawURL, nil, "")
	logger.LogResponseSuccess("GET", rawURL, nil, "", 200, "{}", 12)
	logger.LogResponseError("GET", rawURL, nil, "", 401, `{"message":"Invalid API key"}`, 30, errors.New("http error: status 401"))

	entries := logs.All()
	require.Len(t, entries, 3)
	for _, entry := range entries {
		assert.NotContains(t, entry.Message, "secret")
		assert.NotContains(t, entry.ContextMap()["url"], "secret")
		assert.Equal(t, "openweathermap", entry.ContextMap()["upstream"])
	}
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.EqualValues(t, 401, entries[2].ContextMap()["status"])
}
