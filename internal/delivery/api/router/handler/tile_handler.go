package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"cleanbite/internal/delivery/api/response"
	domainerrors "cleanbite/internal/domain/errors"
	"cleanbite/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// TileHandlerParams holds dependencies for TileHandler, injected by Fx.
type TileHandlerParams struct {
	fx.In

	Tiles  service.TileService
	Logger *slog.Logger
}

// TileHandler proxies the self-hosted basemap
type TileHandler struct {
	tiles  service.TileService
	logger *slog.Logger
}

// NewTileHandler is the constructor for TileHandler
func NewTileHandler(params TileHandlerParams) *TileHandler {
	return &TileHandler{
		tiles:  params.Tiles,
		logger: params.Logger,
	}
}

// GetTile handles GET /tiles/:tileset/:z/:x/:y where y carries the extension, e.g. 1305.mvt
func (h *TileHandler) GetTile(c echo.Context) error {
	z, errZ := strconv.Atoi(c.Param("z"))
	x, errX := strconv.Atoi(c.Param("x"))
	yRaw, ext, ok := strings.Cut(c.Param("y"), ".")
	y, errY := strconv.Atoi(yRaw)
	if errZ != nil || errX != nil || errY != nil || !ok {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("tile path must be /:z/:x/:y.:ext"))
	}

	tile, err := h.tiles.Tile(c.Request().Context(), c.Param("tileset"), z, x, y, ext)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return writeTile(c, tile, "application/octet-stream")
}

// GetTileJSON handles GET /tiles/:tileset/tile.json
func (h *TileHandler) GetTileJSON(c echo.Context) error {
	tile, err := h.tiles.TileJSON(c.Request().Context(), c.Param("tileset"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return writeTile(c, tile, echo.MIMEApplicationJSON)
}

func writeTile(c echo.Context, tile *service.Tile, fallbackType string) error {
	contentType := fallbackType
	for k, v := range tile.Headers {
		if strings.EqualFold(k, echo.HeaderContentType) {
			contentType = v

			continue
		}
		c.Response().Header().Set(k, v)
	}

	return c.Blob(http.StatusOK, contentType, tile.Data)
}
