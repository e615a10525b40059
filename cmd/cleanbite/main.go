package main

import (
	"context"
	"log/slog"
	"os"

	"cleanbite/config"
	"cleanbite/internal/delivery"
	"cleanbite/internal/delivery/api"
	"cleanbite/internal/delivery/api/router/handler"
	"cleanbite/internal/domain/presentation"
	"cleanbite/internal/infra/dataset"
	logs "cleanbite/internal/infra/log"
	"cleanbite/internal/infra/qrcode"
	"cleanbite/internal/infra/tiles"
	"cleanbite/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			dataset.NewStore,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			qrcode.NewQRCodeService,
			tiles.NewTileService,
			newFormatter,
		),
	)
}

// newFormatter builds the shared detail formatter; a zero seed picks summaries at random
func newFormatter(cfg *config.Config) *presentation.Formatter {
	return presentation.NewFormatter(presentation.NewRandPicker(cfg.Viewer.SummarySeed))
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewEstablishmentService,
			impl.NewViewerService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewEstablishmentHandler,
			handler.NewSessionHandler,
			handler.NewTileHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
