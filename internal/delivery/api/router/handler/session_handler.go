package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"cleanbite/internal/delivery/api/response"
	deliverycontext "cleanbite/internal/delivery/context"
	"cleanbite/internal/infra/mapbridge"
	"cleanbite/internal/usecase"
	"cleanbite/internal/viewer"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultKeepAlive = 15 * time.Second

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	ViewerUC usecase.ViewerUsecase
	Logger   *slog.Logger
}

// SessionHandler exposes server-driven viewer sessions
type SessionHandler struct {
	viewerUC  usecase.ViewerUsecase
	logger    *slog.Logger
	keepAlive time.Duration
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		viewerUC:  params.ViewerUC,
		logger:    params.Logger,
		keepAlive: defaultKeepAlive,
	}
}

// SessionIDRequest carries the session path parameter
type SessionIDRequest struct {
	ID string `param:"id" validate:"required,uuid"`
}

// ViewerEventRequest represents one UI event posted by the browser
type ViewerEventRequest struct {
	Type         string              `json:"type" validate:"required,max=32"`
	Query        string              `json:"query" validate:"max=200"`
	ID           string              `json:"id" validate:"required_if=Type select,required_if=Type marker_click,max=64"`
	MinRating    *int                `json:"minRating" validate:"omitempty,min=0,max=5"`
	BusinessType *string             `json:"businessType" validate:"omitempty,max=200"`
	Target       *viewer.ClickTarget `json:"target"`
}

// streamEvent is one server-sent event payload
type streamEvent struct {
	Commands []mapbridge.Command `json:"commands"`
}

// OpenSession handles POST /sessions
func (h *SessionHandler) OpenSession(c echo.Context) error {
	snapshot, err := h.viewerUC.OpenSession(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	deliverycontext.BindSession(c, snapshot.SessionID)

	return response.Success(c, http.StatusCreated, snapshot)
}

// DispatchEvent handles POST /sessions/:id/events
func (h *SessionHandler) DispatchEvent(c echo.Context) error {
	id, err := bindSessionID(c)
	if err != nil {
		return err
	}

	var req ViewerEventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid viewer event")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	snapshot, err := h.viewerUC.Dispatch(c.Request().Context(), id, &usecase.ViewerEvent{
		Type:         req.Type,
		Query:        req.Query,
		ID:           req.ID,
		MinRating:    req.MinRating,
		BusinessType: req.BusinessType,
		Target:       req.Target,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, snapshot)
}

// StreamCommands handles GET /sessions/:id/commands as server-sent events.
// Each batch is sent as a "commands" event; "closed" ends the stream when
// the session goes away.
func (h *SessionHandler) StreamCommands(c echo.Context) error {
	id, err := bindSessionID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	stream, err := h.viewerUC.Stream(ctx, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set(echo.HeaderCacheControl, "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	keepAlive := time.NewTicker(h.keepAlive)
	defer keepAlive.Stop()

	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	for {
		if cmds := stream.Drain(); len(cmds) > 0 {
			if err := writeEvent(w, "commands", streamEvent{Commands: cmds}); err != nil {
				logger.Debug("Command stream write failed", slog.Any("error", err))

				return nil
			}
		}

		select {
		case <-ctx.Done():
			return nil
		case <-stream.Done:
			_ = writeEvent(w, "closed", struct{}{})

			return nil
		case <-stream.Notify:
		case <-keepAlive.C:
			if _, err := w.Write([]byte(": ping\n\n")); err != nil {
				return nil
			}
			w.Flush()
		}
	}
}

// CloseSession handles DELETE /sessions/:id
func (h *SessionHandler) CloseSession(c echo.Context) error {
	id, err := bindSessionID(c)
	if err != nil {
		return err
	}

	if err := h.viewerUC.CloseSession(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func bindSessionID(c echo.Context) (string, error) {
	req := SessionIDRequest{ID: c.Param("id")}
	if err := c.Validate(&req); err != nil {
		return "", err
	}

	deliverycontext.BindSession(c, req.ID)

	return req.ID, nil
}

func writeEvent(w *echo.Response, event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	buf := make([]byte, 0, len(data)+len(event)+16)
	buf = append(buf, "event: "...)
	buf = append(buf, event...)
	buf = append(buf, "\ndata: "...)
	buf = append(buf, data...)
	buf = append(buf, "\n\n"...)

	if _, err := w.Write(buf); err != nil {
		return err
	}
	w.Flush()

	return nil
}
