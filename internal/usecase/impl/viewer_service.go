package impl

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"cleanbite/config"
	deliverycontext "cleanbite/internal/delivery/context"
	"cleanbite/internal/domain/catalog"
	domainerrors "cleanbite/internal/domain/errors"
	"cleanbite/internal/domain/lifecycle"
	"cleanbite/internal/domain/presentation"
	"cleanbite/internal/domain/repository"
	"cleanbite/internal/infra/mapbridge"
	"cleanbite/internal/usecase"
	"cleanbite/internal/viewer"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ViewerServiceParams holds dependencies for the viewer session service, injected by Fx.
type ViewerServiceParams struct {
	fx.In

	Lc        fx.Lifecycle
	Repo      repository.EstablishmentRepository
	Formatter *presentation.Formatter
	Config    *config.Config
	Logger    *slog.Logger
}

// ViewerOptions configures a ViewerService.
type ViewerOptions struct {
	IdleTTL     time.Duration
	MaxSessions int
	Map         mapbridge.MapInit
	Timings     *viewer.Timings
	Scheduler   viewer.Scheduler
	Now         func() time.Time
}

type viewerSession struct {
	id         string
	controller *viewer.Controller
	bridge     *mapbridge.Bridge
	cancelLoad context.CancelFunc
	lastSeen   atomic.Int64
	mapReady   atomic.Bool
	done       chan struct{}
	closeOnce  sync.Once
}

func (s *viewerSession) touch(now time.Time) {
	s.lastSeen.Store(now.UnixNano())
}

func (s *viewerSession) close() {
	s.closeOnce.Do(func() {
		s.cancelLoad()
		s.controller.Close()
		s.bridge.Close()
		close(s.done)
	})
}

// ViewerService keeps the open viewer sessions.
type ViewerService struct {
	repo      repository.EstablishmentRepository
	formatter *presentation.Formatter
	opts      ViewerOptions
	logger    *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*viewerSession
	loads    sync.WaitGroup
}

// NewViewerService wires the service into the app lifecycle: an idle reaper
// runs while the app is up and every session is closed on stop.
func NewViewerService(params ViewerServiceParams) usecase.ViewerUsecase {
	cfg := params.Config
	srv := NewViewerServiceWithOptions(params.Repo, params.Formatter, params.Logger, ViewerOptions{
		IdleTTL:     cfg.Viewer.SessionIdleTTL,
		MaxSessions: cfg.Viewer.MaxSessions,
		Map: mapbridge.MapInit{
			AccessToken: cfg.Map.AccessToken,
			StyleURL:    cfg.Map.StyleURL,
			Center:      cfg.Map.Center,
			Zoom:        cfg.Map.Zoom,
			Controls:    mapbridge.DefaultControls(),
		},
		Timings: flyToTimings(cfg.Map.FlyToZoom),
	})

	reaperCtx, stopReaper := context.WithCancel(context.Background())
	reaperDone := make(chan struct{})

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(reaperDone)
				srv.runReaper(reaperCtx, cfg.Viewer.ReapInterval)
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			stopReaper()
			<-reaperDone

			return srv.Shutdown(ctx)
		},
	})

	return srv
}

// NewViewerServiceWithOptions builds the service without lifecycle wiring.
func NewViewerServiceWithOptions(
	repo repository.EstablishmentRepository,
	formatter *presentation.Formatter,
	logger *slog.Logger,
	opts ViewerOptions,
) *ViewerService {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Scheduler == nil {
		opts.Scheduler = viewer.NewClockScheduler()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ViewerService{
		repo:      repo,
		formatter: formatter,
		opts:      opts,
		logger:    logger,
		sessions:  make(map[string]*viewerSession),
	}
}

func flyToTimings(zoom float64) *viewer.Timings {
	t := viewer.DefaultTimings()
	if zoom > 0 {
		t.FlyToZoom = zoom
	}

	return &t
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *ViewerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// OpenSession creates a controller bound to a fresh bridge and starts loading
// the data in the background.
func (srv *ViewerService) OpenSession(ctx context.Context) (*usecase.ViewerSnapshot, error) {
	srv.mu.Lock()
	if srv.opts.MaxSessions > 0 && len(srv.sessions) >= srv.opts.MaxSessions {
		srv.mu.Unlock()

		return nil, errors.WithStack(domainerrors.ErrSessionLimitExceeded)
	}

	bridge := mapbridge.New(0)
	loadCtx, cancel := context.WithCancel(context.Background())
	session := &viewerSession{
		id:     uuid.NewString(),
		bridge: bridge,
		controller: viewer.NewController(bridge, bridge, viewer.Options{
			Scheduler: srv.opts.Scheduler,
			Formatter: srv.formatter,
			Timings:   srv.opts.Timings,
			Logger:    srv.logger,
		}),
		cancelLoad: cancel,
		done:       make(chan struct{}),
	}
	session.touch(srv.opts.Now())
	srv.sessions[session.id] = session
	srv.loads.Add(1)
	srv.mu.Unlock()

	bridge.CreateMap(srv.opts.Map)

	logger := srv.log(ctx).With(slog.String("session_id", session.id))
	go func() {
		defer srv.loads.Done()
		if err := session.controller.Start(loadCtx, srv.repo); err != nil {
			logger.Warn("Viewer session started without data", slog.Any("error", err))
		}
	}()

	logger.Info("Viewer session opened")

	return srv.snapshot(session), nil
}

// Dispatch applies one UI event and returns the commands produced so far.
func (srv *ViewerService) Dispatch(ctx context.Context, sessionID string, event *usecase.ViewerEvent) (*usecase.ViewerSnapshot, error) {
	session, err := srv.session(sessionID)
	if err != nil {
		return nil, err
	}

	c := session.controller
	switch event.Type {
	case usecase.EventSearch:
		c.Search(event.Query)
	case usecase.EventClearSearch:
		c.ClearSearch()
	case usecase.EventFilter:
		c.SetFilters(filterFrom(event))
	case usecase.EventToggleView:
		c.ToggleView()
	case usecase.EventSelect:
		c.SelectByID(event.ID)
	case usecase.EventMarkerClick:
		c.MarkerClicked(event.ID)
	case usecase.EventClosePanel:
		c.CloseDetailPanel()
	case usecase.EventEscape:
		c.Escape()
	case usecase.EventClick:
		var target viewer.ClickTarget
		if event.Target != nil {
			target = *event.Target
		}
		c.ClickOutside(target)
	case usecase.EventMoveEnd:
		session.bridge.MoveEnd()
	case usecase.EventMapLoad:
		session.mapReady.Store(true)
	default:
		return nil, errors.WithStack(domainerrors.ErrUnknownEvent.WithDetails(event.Type))
	}

	srv.log(ctx).Debug("Viewer event dispatched",
		slog.String("session_id", sessionID),
		slog.String("event", event.Type),
	)

	return srv.snapshot(session), nil
}

// Stream exposes the session's command queue for server-sent events.
func (srv *ViewerService) Stream(_ context.Context, sessionID string) (*usecase.CommandStream, error) {
	session, err := srv.session(sessionID)
	if err != nil {
		return nil, err
	}

	return &usecase.CommandStream{
		Notify: session.bridge.Notify(),
		Done:   session.done,
		Drain: func() []mapbridge.Command {
			session.touch(srv.opts.Now())

			return session.bridge.Drain()
		},
	}, nil
}

// CloseSession ends a session and cancels its pending steps.
func (srv *ViewerService) CloseSession(ctx context.Context, sessionID string) error {
	srv.mu.Lock()
	session, ok := srv.sessions[sessionID]
	delete(srv.sessions, sessionID)
	srv.mu.Unlock()

	if !ok {
		return errors.WithStack(domainerrors.ErrSessionNotFound)
	}

	session.close()
	srv.log(ctx).Info("Viewer session closed", slog.String("session_id", sessionID))

	return nil
}

// ReapIdle closes every session not seen within the idle TTL.
func (srv *ViewerService) ReapIdle(ctx context.Context) int {
	if srv.opts.IdleTTL <= 0 {
		return 0
	}

	cutoff := srv.opts.Now().Add(-srv.opts.IdleTTL).UnixNano()

	srv.mu.Lock()
	var idle []*viewerSession
	for id, session := range srv.sessions {
		if session.lastSeen.Load() < cutoff {
			idle = append(idle, session)
			delete(srv.sessions, id)
		}
	}
	srv.mu.Unlock()

	for _, session := range idle {
		session.close()
	}

	if len(idle) > 0 {
		srv.log(ctx).Info("Reaped idle viewer sessions", slog.Int("count", len(idle)))
	}

	return len(idle)
}

// Len returns the number of open sessions.
func (srv *ViewerService) Len() int {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return len(srv.sessions)
}

// Shutdown closes every session and waits for pending loads to return.
func (srv *ViewerService) Shutdown(ctx context.Context) error {
	srv.mu.Lock()
	sessions := srv.sessions
	srv.sessions = make(map[string]*viewerSession)
	srv.mu.Unlock()

	for _, session := range sessions {
		session.close()
	}

	done := make(chan struct{})
	go func() {
		srv.loads.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "waiting for viewer loads")
	}
}

func (srv *ViewerService) runReaper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			reapCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			srv.ReapIdle(reapCtx)
			cancel()
		}
	}
}

func (srv *ViewerService) session(id string) (*viewerSession, error) {
	srv.mu.RLock()
	session, ok := srv.sessions[id]
	srv.mu.RUnlock()

	if !ok {
		return nil, errors.WithStack(domainerrors.ErrSessionNotFound)
	}

	session.touch(srv.opts.Now())

	return session, nil
}

func (srv *ViewerService) snapshot(session *viewerSession) *usecase.ViewerSnapshot {
	return &usecase.ViewerSnapshot{
		SessionID: session.id,
		Commands:  session.bridge.Drain(),
		State:     session.controller.State(),
		MapReady:  session.mapReady.Load(),
	}
}

func filterFrom(event *usecase.ViewerEvent) catalog.Filter {
	filter := catalog.Filter{MinRating: event.MinRating}
	if event.BusinessType != nil && *event.BusinessType != "" {
		filter.BusinessType = event.BusinessType
	}

	return filter
}
