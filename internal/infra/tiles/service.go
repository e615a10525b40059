package tiles

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"strings"

	"cleanbite/config"
	domainerrors "cleanbite/internal/domain/errors"
	"cleanbite/internal/domain/service"

	"github.com/paulmach/orb/maptile"
	"github.com/pkg/errors"
	"github.com/protomaps/go-pmtiles/pmtiles"
	"go.uber.org/fx"
)

// MaxZoom is the deepest zoom level a basemap request may ask for.
const MaxZoom = 22

var allowedExt = map[string]bool{
	"mvt":  true,
	"pbf":  true,
	"png":  true,
	"jpg":  true,
	"webp": true,
}

// Getter is the part of pmtiles.Server the service needs.
type Getter interface {
	Get(ctx context.Context, path string) (int, map[string]string, []byte)
}

// TileServiceParams holds dependencies for the basemap tile service
type TileServiceParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type pmtilesService struct {
	tileset string
	server  Getter
	logger  *slog.Logger
}

type disabledService struct{}

// NewTileService opens the configured pmtiles archive, or returns a service
// that reports the basemap as disabled.
func NewTileService(params TileServiceParams) (service.TileService, error) {
	cfg := params.Config.Basemap
	logger := params.Logger

	if cfg == nil || !cfg.Enabled {
		logger.Info("Basemap tiles disabled")

		return disabledService{}, nil
	}

	if cfg.Source == "" {
		return nil, errors.New("basemap source is required when enabled")
	}

	// pmtiles wants a *log.Logger; its output is noise next to ours.
	silentLogger := log.New(io.Discard, "", 0)

	server, err := pmtiles.NewServer(bucketURL(cfg.Source), "", silentLogger, cfg.CacheSize, strings.TrimSuffix(cfg.PublicURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PMTiles server")
	}
	server.Start()

	logger.Info("Basemap tiles enabled",
		slog.String("source", cfg.Source),
		slog.String("tileset", cfg.Tileset),
		slog.Int("cache_size", cfg.CacheSize),
	)

	return NewWithGetter(cfg.Tileset, server, logger), nil
}

// NewWithGetter builds the service on top of any pmtiles-compatible getter.
func NewWithGetter(tileset string, getter Getter, logger *slog.Logger) service.TileService {
	return &pmtilesService{tileset: tileset, server: getter, logger: logger}
}

// bucketURL turns a plain directory path into a file:// bucket URL.
func bucketURL(source string) string {
	if strings.Contains(source, "://") {
		return strings.TrimSuffix(source, "/")
	}

	return "file://" + strings.TrimSuffix(source, "/")
}

func (s *pmtilesService) Enabled() bool {
	return true
}

func (s *pmtilesService) Tile(ctx context.Context, tileset string, z, x, y int, ext string) (*service.Tile, error) {
	if tileset != s.tileset {
		return nil, errors.WithStack(domainerrors.ErrTileNotFound.WithDetails(tileset))
	}
	if !allowedExt[ext] {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("unsupported tile extension " + ext))
	}
	if z < 0 || z > MaxZoom || x < 0 || y < 0 {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("tile coordinates out of range"))
	}

	tile := maptile.New(uint32(x), uint32(y), maptile.Zoom(z))
	if n := uint32(1) << tile.Z; tile.X >= n || tile.Y >= n {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("tile coordinates out of range"))
	}

	path := fmt.Sprintf("/%s/%d/%d/%d.%s", tileset, tile.Z, tile.X, tile.Y, ext)

	return s.get(ctx, path)
}

func (s *pmtilesService) TileJSON(ctx context.Context, tileset string) (*service.Tile, error) {
	if tileset != s.tileset {
		return nil, errors.WithStack(domainerrors.ErrTileNotFound.WithDetails(tileset))
	}

	return s.get(ctx, "/"+tileset+".json")
}

func (s *pmtilesService) get(ctx context.Context, path string) (*service.Tile, error) {
	status, headers, data := s.server.Get(ctx, path)

	switch status {
	case http.StatusOK:
		return &service.Tile{Data: data, Headers: headers}, nil
	case http.StatusNotFound, http.StatusNoContent:
		return nil, errors.WithStack(domainerrors.ErrTileNotFound.WithDetails(path))
	case http.StatusBadRequest:
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(strings.TrimSpace(string(data))))
	default:
		s.logger.WarnContext(ctx, "Basemap tile fetch failed",
			slog.String("path", path),
			slog.Int("status", status),
		)

		return nil, errors.Errorf("pmtiles returned status %d for %s", status, path)
	}
}

func (disabledService) Enabled() bool {
	return false
}

func (disabledService) Tile(context.Context, string, int, int, int, string) (*service.Tile, error) {
	return nil, errors.WithStack(domainerrors.ErrBasemapDisabled)
}

func (disabledService) TileJSON(context.Context, string) (*service.Tile, error) {
	return nil, errors.WithStack(domainerrors.ErrBasemapDisabled)
}
