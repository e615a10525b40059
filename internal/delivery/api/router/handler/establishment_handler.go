package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"cleanbite/internal/delivery/api/response"
	"cleanbite/internal/delivery/api/validator"
	"cleanbite/internal/domain/catalog"
	"cleanbite/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

const geoJSONContentType = "application/geo+json"

// EstablishmentHandlerParams holds dependencies for EstablishmentHandler, injected by Fx.
type EstablishmentHandlerParams struct {
	fx.In

	EstablishmentUC usecase.EstablishmentUsecase
	Logger          *slog.Logger
}

// EstablishmentHandler serves the read-only establishment API
type EstablishmentHandler struct {
	establishmentUC usecase.EstablishmentUsecase
	logger          *slog.Logger
}

// NewEstablishmentHandler is the constructor for EstablishmentHandler
func NewEstablishmentHandler(params EstablishmentHandlerParams) *EstablishmentHandler {
	return &EstablishmentHandler{
		establishmentUC: params.EstablishmentUC,
		logger:          params.Logger,
	}
}

// FilterParams are the filter controls shared by the list and marker endpoints
type FilterParams struct {
	MinRating string `query:"minRating" validate:"omitempty,oneof=0 1 2 3 4 5"`
	Type      string `query:"type" validate:"max=200"`
}

// SearchEstablishmentsRequest represents the query of GET /establishments
type SearchEstablishmentsRequest struct {
	FilterParams
	Query string `query:"q" validate:"max=200"`
	Limit int    `query:"limit" validate:"omitempty,min=1,max=1000"`
}

// ListEstablishmentsRequest represents the query of GET /establishments/list
type ListEstablishmentsRequest struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=1000"`
}

// MarkersRequest represents the query of GET /markers
type MarkersRequest struct {
	FilterParams
	BBox string `query:"bbox" validate:"omitempty,bbox"`
}

// EstablishmentIDRequest carries the establishment path parameter
type EstablishmentIDRequest struct {
	ID string `param:"id" validate:"required,max=64"`
}

func (p FilterParams) minRating() *int {
	if p.MinRating == "" {
		return nil
	}
	// Validated against oneof=0..5 already.
	v, _ := strconv.Atoi(p.MinRating)

	return &v
}

func (p FilterParams) businessType() *string {
	if p.Type == "" {
		return nil
	}
	t := p.Type

	return &t
}

// SearchEstablishments handles GET /establishments
func (h *EstablishmentHandler) SearchEstablishments(c echo.Context) error {
	var req SearchEstablishmentsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search parameters")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	limit := req.Limit
	if limit == 0 {
		limit = catalog.MaxListItems
	}

	page, err := h.establishmentUC.Search(c.Request().Context(), &usecase.EstablishmentQuery{
		MinRating:    req.minRating(),
		BusinessType: req.businessType(),
		Text:         req.Query,
		Limit:        limit,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

// ListEstablishments handles GET /establishments/list
func (h *EstablishmentHandler) ListEstablishments(c echo.Context) error {
	var req ListEstablishmentsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid list parameters")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	limit := req.Limit
	if limit == 0 {
		limit = catalog.MaxListItems
	}

	panel, err := h.establishmentUC.Alphabetical(c.Request().Context(), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, panel)
}

// GetEstablishment handles GET /establishments/:id
func (h *EstablishmentHandler) GetEstablishment(c echo.Context) error {
	id, err := bindID(c)
	if err != nil {
		return err
	}

	detail, err := h.establishmentUC.Detail(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, detail)
}

// GetShareCode handles GET /establishments/:id/qr
func (h *EstablishmentHandler) GetShareCode(c echo.Context) error {
	id, err := bindID(c)
	if err != nil {
		return err
	}

	png, err := h.establishmentUC.ShareCode(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=86400")

	return c.Blob(http.StatusOK, "image/png", png)
}

// GetBusinessTypes handles GET /business-types
func (h *EstablishmentHandler) GetBusinessTypes(c echo.Context) error {
	types, err := h.establishmentUC.BusinessTypes(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, types)
}

// GetMarkers handles GET /markers, answering with a bare GeoJSON FeatureCollection
func (h *EstablishmentHandler) GetMarkers(c echo.Context) error {
	var req MarkersRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid marker parameters")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	query := &usecase.MarkerQuery{
		MinRating:    req.minRating(),
		BusinessType: req.businessType(),
	}
	if req.BBox != "" {
		box, _ := validator.ParseBBox(req.BBox)
		query.Bound = &orb.Bound{Min: orb.Point{box[0], box[1]}, Max: orb.Point{box[2], box[3]}}
	}

	fc, err := h.establishmentUC.Markers(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	body, err := fc.MarshalJSON()
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, geoJSONContentType, body)
}

// GetMapConfig handles GET /map/config
func (h *EstablishmentHandler) GetMapConfig(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.establishmentUC.MapSettings(c.Request().Context()))
}

func bindID(c echo.Context) (string, error) {
	req := EstablishmentIDRequest{ID: c.Param("id")}
	if err := c.Validate(&req); err != nil {
		return "", err
	}

	return req.ID, nil
}
