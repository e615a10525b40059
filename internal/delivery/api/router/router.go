// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"strings"

	"cleanbite/config"
	"cleanbite/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	EstablishmentHandler *handler.EstablishmentHandler
	SessionHandler       *handler.SessionHandler
	TileHandler          *handler.TileHandler
	Config               *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	establishmentHandler *handler.EstablishmentHandler
	sessionHandler       *handler.SessionHandler
	tileHandler          *handler.TileHandler
	config               *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		establishmentHandler: params.EstablishmentHandler,
		sessionHandler:       params.SessionHandler,
		tileHandler:          params.TileHandler,
		config:               params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	establishmentsGroup := apiV1.Group("/establishments")
	{
		establishmentsGroup.GET("", r.establishmentHandler.SearchEstablishments)
		establishmentsGroup.GET("/list", r.establishmentHandler.ListEstablishments)
		establishmentsGroup.GET("/:id", r.establishmentHandler.GetEstablishment)
		establishmentsGroup.GET("/:id/qr", r.establishmentHandler.GetShareCode)
	}

	apiV1.GET("/business-types", r.establishmentHandler.GetBusinessTypes)
	apiV1.GET("/markers", r.establishmentHandler.GetMarkers)
	apiV1.GET("/map/config", r.establishmentHandler.GetMapConfig)

	// Viewer sessions
	sessionsGroup := apiV1.Group("/sessions")
	{
		sessionsGroup.POST("", r.sessionHandler.OpenSession)
		sessionsGroup.POST("/:id/events", r.sessionHandler.DispatchEvent)
		sessionsGroup.GET("/:id/commands", r.sessionHandler.StreamCommands)
		sessionsGroup.DELETE("/:id", r.sessionHandler.CloseSession)
	}

	tilesGroup := e.Group("/tiles")
	{
		tilesGroup.GET("/:tileset/tile.json", r.tileHandler.GetTileJSON)
		tilesGroup.GET("/:tileset/:z/:x/:y", r.tileHandler.GetTile)
	}
}

// RegisterStatic serves the browser viewer from the configured directory.
func (r *router) RegisterStatic(e *echo.Echo) {
	if r.config.StaticDir == "" {
		return
	}

	e.Use(middleware.StaticWithConfig(middleware.StaticConfig{
		Skipper: func(c echo.Context) bool {
			p := c.Request().URL.Path

			return strings.HasPrefix(p, "/api/") || strings.HasPrefix(p, "/tiles/")
		},
		Root:  r.config.StaticDir,
		Index: "index.html",
		HTML5: true,
	}))
}
