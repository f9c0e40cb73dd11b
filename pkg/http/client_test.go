package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type greeting struct {
	Message string `json:"message"`
}

type apiError struct {
	Message string `json:"message"`
}

type recordingLogger struct {
	requests  []string
	successes []int
	failures  []int
}

func (l *recordingLogger) LogRequest(method, url string, _ map[string]string, _ string) {
	l.requests = append(l.requests, method+" "+url)
}

func (l *recordingLogger) LogResponseSuccess(_, _ string, _ map[string]string, _ string, httpStatus int, _ string, _ int64) {
	l.successes = append(l.successes, httpStatus)
}

func (l *recordingLogger) LogResponseError(_, _ string, _ map[string]string, _ string, httpStatus int, _ string, _ int64, _ error) {
	l.failures = append(l.failures, httpStatus)
}

func TestGet_DecodesSuccessAndEncodesQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/greet", r.URL.Path)
		assert.Equal(t, "São Paulo", r.URL.Query().Get("city"))
		assert.Equal(t, "a&b", r.URL.Query().Get("tag"))
		assert.Equal(t, "default", r.Header.Get("X-Default"))
		assert.Equal(t, "call", r.Header.Get("X-Call"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"hello"}`))
	}))
	defer server.Close()

	logger := &recordingLogger{}
	client := NewHttpClient(server.URL+"/v1/", ClientOptions{
		DefaultHeaders: map[string]string{"X-Default": "default"},
		Logger:         logger,
	})

	success, failure, status, err := client.Get(context.Background(), "greet",
		map[string]string{"city": "São Paulo", "tag": "a&b"},
		map[string]string{"X-Call": "call"},
		&greeting{}, &apiError{})

	require.NoError(t, err)
	assert.Nil(t, failure)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "hello", success.(*greeting).Message)
	assert.Len(t, logger.requests, 1)
	assert.Equal(t, []int{http.StatusOK}, logger.successes)
	assert.Empty(t, logger.failures)
}

func TestRequest_ErrorStatusReturnsStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"message":"slow down"}`))
	}))
	defer server.Close()

	logger := &recordingLogger{}
	client := NewHttpClient(server.URL, ClientOptions{Logger: logger})

	success, failure, status, err := client.Request().
		WithPath("/limited").
		WithSuccessResp(&greeting{}).
		WithErrorResp(&apiError{}).
		Execute()

	assert.Nil(t, success)
	assert.Equal(t, http.StatusTooManyRequests, status)
	assert.Equal(t, "slow down", failure.(*apiError).Message)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusTooManyRequests, statusErr.StatusCode)
	assert.JSONEq(t, `{"message":"slow down"}`, string(statusErr.Body))
	assert.Equal(t, []int{http.StatusTooManyRequests}, logger.failures)
}

func TestRequest_EmptySuccessBodyIsDecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{})
	success, failure, status, err := client.Request().WithPath("/empty").WithSuccessResp(&greeting{}).Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode response body")
	assert.Nil(t, success)
	assert.Nil(t, failure)
	assert.Equal(t, http.StatusNoContent, status)
}

func TestRequest_ContextCancellation(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	logger := &recordingLogger{}
	client := NewHttpClient(server.URL, ClientOptions{Logger: logger})
	_, _, status, err := client.Request().WithContext(ctx).WithPath("/slow").Execute()

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 0, status)
	assert.Equal(t, []int{0}, logger.failures)
}

func TestRequest_Validation(t *testing.T) {
	_, _, _, err := (&Request{}).Execute()
	assert.EqualError(t, err, "client is required")

	client := NewHttpClient("http://localhost", ClientOptions{})
	_, _, _, err = client.Request().WithPath("").Execute()
	assert.EqualError(t, err, "path is required")
}
