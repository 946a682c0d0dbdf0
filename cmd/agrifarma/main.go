package main

import (
	"context"
	"log/slog"
	"os"

	"agrifarma/config"
	"agrifarma/internal/delivery"
	"agrifarma/internal/delivery/web"
	"agrifarma/internal/delivery/web/flash"
	"agrifarma/internal/delivery/web/middleware"
	"agrifarma/internal/delivery/web/router/handler"
	"agrifarma/internal/infra/auth"
	logs "agrifarma/internal/infra/log"
	"agrifarma/internal/infra/persistence/store"
	"agrifarma/internal/infra/qrcode"
	"agrifarma/internal/infra/spreadsheet"
	"agrifarma/internal/infra/storage"
	"agrifarma/internal/usecase/impl"

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
		injectMiddleware(),
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
		store.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			store.NewUserRepository,
			store.NewSessionRepository,
			store.NewCategoryRepository,
			store.NewProductRepository,
			store.NewPostRepository,
			store.NewConsultationRepository,
			store.NewCartRepository,
			store.NewOrderRepository,
			store.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewSessionTokenGenerator,
			auth.NewResetTokenService,
			qrcode.NewQRCodeService,
			spreadsheet.NewProductSheetParser,
			storage.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewSessionService,
			impl.NewPasswordResetService,
			impl.NewCatalogService,
			impl.NewContentService,
			impl.NewConsultationService,
			impl.NewCartService,
			impl.NewCheckoutService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
			flash.NewManager,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHomeHandler,
			handler.NewAccountHandler,
			handler.NewCatalogHandler,
			handler.NewContentHandler,
			handler.NewConsultationHandler,
			handler.NewCartHandler,
			handler.NewCheckoutHandler,
			handler.NewPasswordResetHandler,
			handler.NewUploadHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				web.NewServer,
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
