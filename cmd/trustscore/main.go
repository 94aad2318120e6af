package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"trustscore/config"
	"trustscore/internal/delivery"
	httpdelivery "trustscore/internal/delivery/http"
	"trustscore/internal/delivery/http/middleware"
	"trustscore/internal/delivery/http/router/handler"
	"trustscore/internal/domain/service"
	"trustscore/internal/domain/verification"
	"trustscore/internal/infra/auth"
	"trustscore/internal/infra/google/maps"
	"trustscore/internal/infra/google/vision"
	"trustscore/internal/infra/identity"
	logs "trustscore/internal/infra/log"
	"trustscore/internal/infra/persistence/postgres"
	"trustscore/internal/infra/pubsub"
	"trustscore/internal/infra/qrcode"
	"trustscore/internal/infra/upload"
	"trustscore/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			newHTTPClient,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewVerificationRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			maps.NewGeocoder,
			maps.NewPanoramaLocator,
			maps.NewImageryURLBuilder,
			vision.NewTextExtractor,
			identity.NewBVNProvider,
			auth.NewSessionService,
			upload.New,
			newQRCodeService,
			newDecisionEngine,
		),
	)
}

// newHTTPClient is shared by the REST adapters; each call carries its own timeout
func newHTTPClient() *http.Client {
	return &http.Client{}
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func newDecisionEngine(imagery service.ImageryURLBuilder) *verification.Engine {
	return verification.NewEngine(imagery)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewIdentityService,
			impl.NewLocationService,
			impl.NewVerificationService,
			impl.NewDocumentService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewIdentityHandler,
			handler.NewLocationHandler,
			handler.NewVerificationHandler,
			handler.NewDocumentHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				httpdelivery.NewServer,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
