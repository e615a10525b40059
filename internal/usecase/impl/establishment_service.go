// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"html"
	"log/slog"

	"cleanbite/config"
	deliverycontext "cleanbite/internal/delivery/context"
	"cleanbite/internal/domain/catalog"
	"cleanbite/internal/domain/entity"
	"cleanbite/internal/domain/presentation"
	"cleanbite/internal/domain/repository"
	"cleanbite/internal/domain/service"
	"cleanbite/internal/infra/mapbridge"
	"cleanbite/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// EstablishmentServiceParams holds dependencies for EstablishmentService, injected by Fx.
type EstablishmentServiceParams struct {
	fx.In

	Repo      repository.EstablishmentRepository
	QRCode    service.QRCodeService
	Formatter *presentation.Formatter
	Config    *config.Config
	Logger    *slog.Logger
}

type establishmentService struct {
	repo      repository.EstablishmentRepository
	qrcode    service.QRCodeService
	formatter *presentation.Formatter
	mapConfig *config.MapConfig
	basemap   *config.BasemapConfig
	logger    *slog.Logger
}

// NewEstablishmentService is the constructor for establishmentService.
func NewEstablishmentService(params EstablishmentServiceParams) usecase.EstablishmentUsecase {
	return &establishmentService{
		repo:      params.Repo,
		qrcode:    params.QRCode,
		formatter: params.Formatter,
		mapConfig: params.Config.Map,
		basemap:   params.Config.Basemap,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *establishmentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Search filters the set and, for queries of at least two characters, keeps
// only the matches in the filtered order.
func (srv *establishmentService) Search(ctx context.Context, query *usecase.EstablishmentQuery) (*usecase.EstablishmentPage, error) {
	records, err := srv.repo.All(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load establishments")
	}

	matches := catalog.ApplyFilters(records, catalog.Filter{
		MinRating:    query.MinRating,
		BusinessType: query.BusinessType,
	})

	text, action := catalog.Classify(query.Text)
	searched := action == catalog.QueryRun
	if searched {
		matches = catalog.Search(matches, text)
	}

	limit := query.Limit
	if limit <= 0 {
		limit = len(matches)
	}

	page := &usecase.EstablishmentPage{
		Items:    make([]usecase.EstablishmentSummary, 0, min(limit, len(matches))),
		Total:    len(matches),
		Searched: searched,
	}
	for _, e := range catalog.Truncate(matches, limit) {
		nameHTML := html.EscapeString(e.Name)
		if searched {
			nameHTML = catalog.Highlight(e.Name, text)
		}
		page.Items = append(page.Items, summarize(&e, nameHTML))
	}

	srv.log(ctx).Debug("Searched establishments",
		slog.String("text", text),
		slog.Bool("searched", searched),
		slog.Int("total", page.Total),
	)

	return page, nil
}

// Alphabetical renders the list view over the whole set.
func (srv *establishmentService) Alphabetical(ctx context.Context, limit int) (*presentation.ResultsPanel, error) {
	records, err := srv.repo.All(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load establishments")
	}

	panel := presentation.AlphabeticalList(catalog.SortByName(records))
	if limit > 0 && limit < len(panel.Rows) {
		panel.Rows = panel.Rows[:limit]
	}

	return &panel, nil
}

func (srv *establishmentService) Detail(ctx context.Context, id string) (*presentation.Detail, error) {
	e, err := srv.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find establishment")
	}

	detail := srv.formatter.Detail(e)

	return &detail, nil
}

func (srv *establishmentService) BusinessTypes(ctx context.Context) ([]string, error) {
	types, err := srv.repo.BusinessTypes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load business types")
	}

	return types, nil
}

// Markers returns a FeatureCollection of the filtered establishments with
// coordinates, optionally limited to a bounding box. The collection's bbox
// covers the returned points.
func (srv *establishmentService) Markers(ctx context.Context, query *usecase.MarkerQuery) (*geojson.FeatureCollection, error) {
	records, err := srv.repo.All(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load establishments")
	}

	filtered := catalog.ApplyFilters(records, catalog.Filter{
		MinRating:    query.MinRating,
		BusinessType: query.BusinessType,
	})

	fc := geojson.NewFeatureCollection()
	var bound orb.Bound
	for i := range filtered {
		e := &filtered[i]
		if !e.HasCoordinates() {
			continue
		}

		point := e.Coordinates.Point()
		if query.Bound != nil && !query.Bound.Contains(point) {
			continue
		}

		fc.Append(markerFeature(e, point))
		if len(fc.Features) == 1 {
			bound = point.Bound()
		} else {
			bound = bound.Extend(point)
		}
	}

	if len(fc.Features) > 0 {
		fc.BBox = geojson.NewBBox(bound)
	}

	return fc, nil
}

func (srv *establishmentService) MapSettings(_ context.Context) *usecase.MapSettings {
	settings := &usecase.MapSettings{
		AccessToken: srv.mapConfig.AccessToken,
		StyleURL:    srv.mapConfig.StyleURL,
		Center:      srv.mapConfig.Center,
		Zoom:        srv.mapConfig.Zoom,
		FlyToZoom:   srv.mapConfig.FlyToZoom,
		Controls:    mapbridge.DefaultControls(),
	}

	if srv.basemap != nil && srv.basemap.Enabled {
		settings.BasemapURL = "/tiles/" + srv.basemap.Tileset + "/{z}/{x}/{y}.mvt"
	}

	return settings
}

// ShareCode renders a QR code pointing at the establishment.
func (srv *establishmentService) ShareCode(ctx context.Context, id string) ([]byte, error) {
	if _, err := srv.repo.FindByID(ctx, id); err != nil {
		return nil, errors.Wrap(err, "failed to find establishment")
	}

	png, err := srv.qrcode.GenerateEstablishmentQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate share code")
	}

	return png, nil
}

func summarize(e *entity.Establishment, nameHTML string) usecase.EstablishmentSummary {
	s := usecase.EstablishmentSummary{
		ID:           e.ID,
		Name:         e.Name,
		NameHTML:     nameHTML,
		BusinessType: e.BusinessType,
		Rating:       e.Rating,
		Category:     presentation.CategoryFor(e.Rating),
		RatingLabel:  presentation.Label(e.Rating),
		Color:        presentation.Color(e.Rating),
		Address:      e.Address,
	}

	if e.Coordinates != nil {
		s.Coordinates = []float64{e.Coordinates.Longitude, e.Coordinates.Latitude}
	}

	return s
}

func markerFeature(e *entity.Establishment, point orb.Point) *geojson.Feature {
	f := geojson.NewFeature(point)
	f.ID = e.ID
	f.Properties["id"] = e.ID
	f.Properties["name"] = e.Name
	f.Properties["businessType"] = e.BusinessType
	f.Properties["rating"] = e.Rating
	f.Properties["category"] = string(presentation.CategoryFor(e.Rating))
	f.Properties["color"] = presentation.Color(e.Rating)

	return f
}
