package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext() echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestGetRequestID(t *testing.T) {
	c := newEchoContext()

	generated := GetRequestID(c)
	assert.Len(t, generated, 36)

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))
}

func TestRequestIDFromContext(t *testing.T) {
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
	assert.Equal(t, "req-1", GetRequestIDFromContext(WithRequestID(context.Background(), "req-1")))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.Default()
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))

	scoped := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestBindSession(t *testing.T) {
	var buf bytes.Buffer
	c := newEchoContext()
	c.SetRequest(c.Request().WithContext(WithLogger(c.Request().Context(), slog.New(slog.NewTextHandler(&buf, nil)))))

	BindSession(c, "sess-9")

	assert.Equal(t, "sess-9", GetSessionID(c))
	assert.Equal(t, "sess-9", c.Request().Context().Value(KeySessionID))

	GetLogger(c.Request().Context()).Info("hello")
	assert.Contains(t, buf.String(), "session_id=sess-9")
}

func TestBindSession_WithoutLogger(t *testing.T) {
	c := newEchoContext()

	BindSession(c, "sess-9")

	assert.Nil(t, GetLogger(c.Request().Context()))
	assert.Empty(t, GetSessionID(newEchoContext()))
}
