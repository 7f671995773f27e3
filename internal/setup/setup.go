package setup

import (
	"context"

	"github.com/bookit-dev/bookit/internal/config"
	"github.com/bookit-dev/bookit/internal/handler"
	"github.com/bookit-dev/bookit/internal/jwt"
	"github.com/bookit-dev/bookit/internal/middleware"
	"github.com/bookit-dev/bookit/internal/service"
	"github.com/bookit-dev/bookit/internal/storage/pg"
	"github.com/bookit-dev/bookit/internal/storage/s3"
)

// Dependencies holds all initialized components.
type Dependencies struct {
	Config         *config.Config
	Storage        *pg.Storage
	Handler        *handler.Handler
	AuthMiddleware *middleware.Auth
}

// SetupDependencies wires config -> storage -> services -> handler. Long-
// lived clients (db pool, s3) are created exactly once here.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	gateway, err := s3.New(ctx, cfg)
	if err != nil {
		storage.Cleanup()
		return nil, err
	}

	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())

	auth := service.NewAuth(storage, jwtService)
	place := service.NewPlace(storage)
	booking := service.NewBooking(storage)
	upload := service.NewUpload(gateway)

	h := handler.New(auth, place, booking, upload, cfg)

	return &Dependencies{
		Config:         cfg,
		Storage:        storage,
		Handler:        h,
		AuthMiddleware: middleware.NewAuth(jwtService),
	}, nil
}
