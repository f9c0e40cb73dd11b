package httplog

import (
	"net/url"

	"go.uber.org/zap"

	"forecast-api/pkg/http"
	"forecast-api/pkg/log"
	"forecast-api/pkg/msg"
)

const redacted = "REDACTED"

// ZapLogger writes outbound HTTP traffic to the process logger. Query parameters
// listed in sensitiveParams are masked before logging.
type ZapLogger struct {
	upstream        string
	sensitiveParams []string
}

var _ http.HTTPLogger = (*ZapLogger)(nil)

func NewZapLogger(upstream string, sensitiveParams ...string) *ZapLogger {
	return &ZapLogger{upstream: upstream, sensitiveParams: sensitiveParams}
}

func (l *ZapLogger) LogRequest(method, rawURL string, _ map[string]string, _ string) {
	safeURL := l.Redact(rawURL)
	log.Debug(msg.GetMessage("http.request", method, safeURL),
		zap.String("upstream", l.upstream),
		zap.String("method", method),
		zap.String("url", safeURL),
	)
}

func (l *ZapLogger) LogResponseSuccess(method, rawURL string, _ map[string]string, _ string, httpStatus int, _ string, latency int64) {
	safeURL := l.Redact(rawURL)
	log.Info(msg.GetMessage("http.response-ok", method, safeURL, httpStatus, latency),
		zap.String("upstream", l.upstream),
		zap.String("method", method),
		zap.String("url", safeURL),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
	)
}

func (l *ZapLogger) LogResponseError(method, rawURL string, _ map[string]string, _ string, httpStatus int, responseBody string, latency int64, err error) {
	safeURL := l.Redact(rawURL)
	log.Warn(msg.GetMessage("http.response-fail", method, safeURL, httpStatus, latency, err),
		zap.String("upstream", l.upstream),
		zap.String("method", method),
		zap.String("url", safeURL),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.String("response", responseBody),
		zap.Error(err),
	)
}

// Redact masks sensitive query parameter values in rawURL.
func (l *ZapLogger) Redact(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	query := parsed.Query()
	changed := false
	for _, param := range l.sensitiveParams {
		if query.Has(param) {
			query.Set(param, redacted)
			changed = true
		}
	}
	if !changed {
		return rawURL
	}

	parsed.RawQuery = query.Encode()
	return parsed.String()
}
