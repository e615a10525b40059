package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"cleanbite/internal/delivery/api/validator"
	domainerrors "cleanbite/internal/domain/errors"
	"cleanbite/internal/infra/mapbridge"
	mockUsecase "cleanbite/internal/mocks/usecase"
	"cleanbite/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const sessionID = "0b8c3f5e-4c1a-4c55-9a57-3f1f2b8f6d11"

func newStreamContext(ctx context.Context) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/"+sessionID+"/commands", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(sessionID)

	return c, rec
}

// queueStream hands out each batch once, like the command bridge.
func queueStream(batches ...[]mapbridge.Command) (*usecase.CommandStream, chan struct{}, chan struct{}) {
	var mu sync.Mutex
	notify := make(chan struct{}, 1)
	done := make(chan struct{})

	return &usecase.CommandStream{
		Notify: notify,
		Done:   done,
		Drain: func() []mapbridge.Command {
			mu.Lock()
			defer mu.Unlock()

			if len(batches) == 0 {
				return nil
			}
			next := batches[0]
			batches = batches[1:]

			return next
		},
	}, notify, done
}

func TestStreamCommands_SendsBatchesUntilClosed(t *testing.T) {
	viewerUC := mockUsecase.NewMockViewerUsecase(t)
	stream, _, done := queueStream([]mapbridge.Command{{Seq: 7, Type: mapbridge.CmdDetailShow}})
	close(done)
	viewerUC.EXPECT().Stream(mock.Anything, sessionID).Return(stream, nil)

	h := NewSessionHandler(SessionHandlerParams{ViewerUC: viewerUC, Logger: slog.Default()})
	c, rec := newStreamContext(context.Background())

	require.NoError(t, h.StreamCommands(c))

	assert.Equal(t, "text/event-stream", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "no-cache", rec.Header().Get(echo.HeaderCacheControl))

	body := rec.Body.String()
	assert.Equal(t,
		"event: commands\ndata: {\"commands\":[{\"seq\":7,\"type\":\"detail.show\"}]}\n\n"+
			"event: closed\ndata: {}\n\n",
		body)
}

func TestStreamCommands_WakesOnNotify(t *testing.T) {
	viewerUC := mockUsecase.NewMockViewerUsecase(t)
	stream, notify, done := queueStream(nil, []mapbridge.Command{{Seq: 1, Type: mapbridge.CmdNavigateHide}})
	viewerUC.EXPECT().Stream(mock.Anything, sessionID).Return(stream, nil)

	h := NewSessionHandler(SessionHandlerParams{ViewerUC: viewerUC, Logger: slog.Default()})
	c, rec := newStreamContext(context.Background())

	finished := make(chan error, 1)
	go func() { finished <- h.StreamCommands(c) }()

	notify <- struct{}{}
	// The second batch is drained after the wake-up; closing ends the stream.
	time.Sleep(20 * time.Millisecond)
	close(done)

	select {
	case err := <-finished:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not end")
	}

	assert.True(t, strings.HasPrefix(rec.Body.String(), "event: commands\n"), rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"type":"navigating.hide"`)
	assert.True(t, strings.HasSuffix(rec.Body.String(), "event: closed\ndata: {}\n\n"))
}

func TestStreamCommands_KeepAlive(t *testing.T) {
	viewerUC := mockUsecase.NewMockViewerUsecase(t)
	stream, _, _ := queueStream()
	viewerUC.EXPECT().Stream(mock.Anything, sessionID).Return(stream, nil)

	h := NewSessionHandler(SessionHandlerParams{ViewerUC: viewerUC, Logger: slog.Default()})
	h.keepAlive = 5 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	c, rec := newStreamContext(ctx)

	require.NoError(t, h.StreamCommands(c))
	assert.Contains(t, rec.Body.String(), ": ping\n\n")
}

func TestStreamCommands_UnknownSession(t *testing.T) {
	viewerUC := mockUsecase.NewMockViewerUsecase(t)
	viewerUC.EXPECT().Stream(mock.Anything, sessionID).Return(nil, errors.WithStack(domainerrors.ErrSessionNotFound))

	h := NewSessionHandler(SessionHandlerParams{ViewerUC: viewerUC, Logger: slog.Default()})
	c, rec := newStreamContext(context.Background())

	require.NoError(t, h.StreamCommands(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "SESSION_NOT_FOUND")
}
