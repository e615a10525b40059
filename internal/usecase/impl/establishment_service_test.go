package impl

import (
	"context"
	"log/slog"
	"testing"

	"cleanbite/config"
	"cleanbite/internal/domain/entity"
	domainerrors "cleanbite/internal/domain/errors"
	"cleanbite/internal/domain/presentation"
	mockRepo "cleanbite/internal/mocks/repository"
	mockService "cleanbite/internal/mocks/service"
	"cleanbite/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// establishmentServiceFixtures holds all test dependencies for establishment service tests.
type establishmentServiceFixtures struct {
	service usecase.EstablishmentUsecase
	repo    *mockRepo.MockEstablishmentRepository
	qrcode  *mockService.MockQRCodeService
}

func createTestEstablishmentService(t *testing.T) establishmentServiceFixtures {
	repo := mockRepo.NewMockEstablishmentRepository(t)
	qrcode := mockService.NewMockQRCodeService(t)

	cfg := &config.Config{
		Map: &config.MapConfig{
			AccessToken: "pk.test",
			StyleURL:    "mapbox://styles/mapbox/light-v11",
			Center:      []float64{-2.8, 54.05},
			Zoom:        12,
			FlyToZoom:   15,
		},
		Basemap: &config.BasemapConfig{},
	}

	service := NewEstablishmentService(EstablishmentServiceParams{
		Repo:      repo,
		QRCode:    qrcode,
		Formatter: presentation.NewFormatter(presentation.PickerFunc(func(int) int { return 0 })),
		Config:    cfg,
		Logger:    slog.Default(),
	})

	return establishmentServiceFixtures{
		service: service,
		repo:    repo,
		qrcode:  qrcode,
	}
}

func testEstablishments() []entity.Establishment {
	return []entity.Establishment{
		{
			ID: "1", Name: "Pizza Palace", BusinessType: "Restaurant/Cafe/Canteen", Rating: 5, RawRating: "5",
			Coordinates: &entity.Coordinates{Latitude: 54.05, Longitude: -2.80},
			SearchBlob:  "pizza palace restaurant/cafe/canteen 5",
		},
		{
			ID: "2", Name: "Corner Cafe", BusinessType: "Restaurant/Cafe/Canteen", Rating: 3, RawRating: "3",
			Coordinates: &entity.Coordinates{Latitude: 54.10, Longitude: -2.70},
			SearchBlob:  "corner cafe restaurant/cafe/canteen 3",
		},
		{
			ID: "3", Name: "Awaiting Kitchen", BusinessType: "Takeaway/sandwich shop", Rating: 0, RawRating: "AwaitingInspection",
			Coordinates: &entity.Coordinates{Latitude: 53.90, Longitude: -3.00},
			SearchBlob:  "awaiting kitchen takeaway/sandwich shop awaitinginspection",
		},
		{
			ID: "4", Name: "Pizza Van", BusinessType: "Takeaway/sandwich shop", Rating: 4, RawRating: "4",
			SearchBlob: "pizza van takeaway/sandwich shop 4",
		},
	}
}

func intPtr(v int) *int          { return &v }
func stringPtr(v string) *string { return &v }

func summaryIDs(items []usecase.EstablishmentSummary) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}

	return out
}

func TestEstablishmentService_Search_FiltersOnly(t *testing.T) {
	fx := createTestEstablishmentService(t)
	ctx := context.Background()

	fx.repo.EXPECT().All(ctx).Return(testEstablishments(), nil)

	page, err := fx.service.Search(ctx, &usecase.EstablishmentQuery{MinRating: intPtr(4)})
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "4"}, summaryIDs(page.Items))
	assert.Equal(t, 2, page.Total)
	assert.False(t, page.Searched)
	assert.Equal(t, presentation.ColorExcellent, page.Items[0].Color)
	assert.Equal(t, []float64{-2.80, 54.05}, page.Items[0].Coordinates)
	assert.Nil(t, page.Items[1].Coordinates)
}

func TestEstablishmentService_Search_TextAndFilter(t *testing.T) {
	fx := createTestEstablishmentService(t)
	ctx := context.Background()

	fx.repo.EXPECT().All(ctx).Return(testEstablishments(), nil)

	page, err := fx.service.Search(ctx, &usecase.EstablishmentQuery{
		BusinessType: stringPtr("Takeaway/sandwich shop"),
		Text:         " PIZZA ",
	})
	require.NoError(t, err)

	assert.True(t, page.Searched)
	assert.Equal(t, []string{"4"}, summaryIDs(page.Items))
	assert.Equal(t, "<strong>Pizza</strong> Van", page.Items[0].NameHTML)
}

func TestEstablishmentService_Search_ShortTextIgnored(t *testing.T) {
	fx := createTestEstablishmentService(t)
	ctx := context.Background()

	fx.repo.EXPECT().All(ctx).Return(testEstablishments(), nil)

	page, err := fx.service.Search(ctx, &usecase.EstablishmentQuery{Text: "p", Limit: 2})
	require.NoError(t, err)

	assert.False(t, page.Searched)
	assert.Equal(t, 4, page.Total)
	assert.Len(t, page.Items, 2)
}

func TestEstablishmentService_Search_RepositoryError(t *testing.T) {
	fx := createTestEstablishmentService(t)
	ctx := context.Background()

	fx.repo.EXPECT().All(ctx).Return(nil, domainerrors.ErrDatasetUnavailable)

	_, err := fx.service.Search(ctx, &usecase.EstablishmentQuery{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDatasetUnavailable))
}

func TestEstablishmentService_Alphabetical(t *testing.T) {
	fx := createTestEstablishmentService(t)
	ctx := context.Background()

	fx.repo.EXPECT().All(ctx).Return(testEstablishments(), nil)

	panel, err := fx.service.Alphabetical(ctx, 3)
	require.NoError(t, err)

	assert.Equal(t, presentation.ListHeader, panel.Header)
	assert.Equal(t, "4 restaurants", panel.Count)
	require.Len(t, panel.Rows, 3)
	assert.Equal(t, "Awaiting Kitchen", panel.Rows[0].NameHTML)
	assert.Equal(t, "Corner Cafe", panel.Rows[1].NameHTML)
	assert.Equal(t, "Pizza Palace", panel.Rows[2].NameHTML)
}

func TestEstablishmentService_Detail(t *testing.T) {
	fx := createTestEstablishmentService(t)
	ctx := context.Background()
	record := testEstablishments()[1]

	fx.repo.EXPECT().FindByID(ctx, "2").Return(&record, nil)

	detail, err := fx.service.Detail(ctx, "2")
	require.NoError(t, err)

	assert.Equal(t, "Corner Cafe", detail.Name)
	assert.Equal(t, presentation.CategoryGood, detail.Category)
	assert.Equal(t, "Good Hygiene Rating", detail.RatingLabel)
	assert.Equal(t, presentation.UnknownDate, detail.InspectionDate)
}

func TestEstablishmentService_Detail_NotFound(t *testing.T) {
	fx := createTestEstablishmentService(t)
	ctx := context.Background()

	fx.repo.EXPECT().FindByID(ctx, "missing").Return(nil, domainerrors.ErrEstablishmentNotFound)

	_, err := fx.service.Detail(ctx, "missing")
	assert.True(t, errors.Is(err, domainerrors.ErrEstablishmentNotFound))
}

func TestEstablishmentService_Markers(t *testing.T) {
	fx := createTestEstablishmentService(t)
	ctx := context.Background()

	fx.repo.EXPECT().All(ctx).Return(testEstablishments(), nil)

	fc, err := fx.service.Markers(ctx, &usecase.MarkerQuery{})
	require.NoError(t, err)

	require.Len(t, fc.Features, 3)
	assert.Equal(t, "1", fc.Features[0].ID)
	assert.Equal(t, presentation.ColorExcellent, fc.Features[0].Properties["color"])
	assert.Equal(t, orb.Point{-2.80, 54.05}, fc.Features[0].Geometry)
	assert.Equal(t, orb.Bound{Min: orb.Point{-3.00, 53.90}, Max: orb.Point{-2.70, 54.10}}, fc.BBox.Bound())
}

func TestEstablishmentService_Markers_BoundAndFilter(t *testing.T) {
	fx := createTestEstablishmentService(t)
	ctx := context.Background()

	fx.repo.EXPECT().All(ctx).Return(testEstablishments(), nil)

	bound := orb.Bound{Min: orb.Point{-2.9, 54.0}, Max: orb.Point{-2.6, 54.2}}
	fc, err := fx.service.Markers(ctx, &usecase.MarkerQuery{MinRating: intPtr(3), Bound: &bound})
	require.NoError(t, err)

	require.Len(t, fc.Features, 2)
	assert.Equal(t, "1", fc.Features[0].ID)
	assert.Equal(t, "2", fc.Features[1].ID)
}

func TestEstablishmentService_Markers_Empty(t *testing.T) {
	fx := createTestEstablishmentService(t)
	ctx := context.Background()

	fx.repo.EXPECT().All(ctx).Return(testEstablishments(), nil)

	fc, err := fx.service.Markers(ctx, &usecase.MarkerQuery{BusinessType: stringPtr("Hospitals/Childcare/Caring Premises")})
	require.NoError(t, err)

	assert.Empty(t, fc.Features)
	assert.Nil(t, fc.BBox)
}

func TestEstablishmentService_MapSettings(t *testing.T) {
	fx := createTestEstablishmentService(t)

	settings := fx.service.MapSettings(context.Background())

	assert.Equal(t, "pk.test", settings.AccessToken)
	assert.Equal(t, []float64{-2.8, 54.05}, settings.Center)
	assert.InDelta(t, 12.0, settings.Zoom, 0)
	require.Len(t, settings.Controls, 2)
	assert.Equal(t, "top-right", settings.Controls[0].Position)
	assert.Empty(t, settings.BasemapURL)
}

func TestEstablishmentService_ShareCode(t *testing.T) {
	fx := createTestEstablishmentService(t)
	ctx := context.Background()
	record := testEstablishments()[0]

	fx.repo.EXPECT().FindByID(ctx, "1").Return(&record, nil)
	fx.qrcode.EXPECT().GenerateEstablishmentQR("1").Return([]byte{0x89, 0x50}, nil)

	png, err := fx.service.ShareCode(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 0x50}, png)
}

func TestEstablishmentService_ShareCode_UnknownID(t *testing.T) {
	fx := createTestEstablishmentService(t)
	ctx := context.Background()

	fx.repo.EXPECT().FindByID(ctx, "nope").Return(nil, domainerrors.ErrEstablishmentNotFound)

	_, err := fx.service.ShareCode(ctx, "nope")
	assert.True(t, errors.Is(err, domainerrors.ErrEstablishmentNotFound))
	fx.qrcode.AssertNotCalled(t, "GenerateEstablishmentQR", mock.Anything)
}
