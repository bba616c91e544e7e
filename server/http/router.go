package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"basket-service/internal/config"
	"basket-service/internal/middleware"
	"basket-service/internal/recommend/catalog"
	recHnd "basket-service/internal/recommend/handler"
	"basket-service/internal/recommend/service"
	"basket-service/server/http/handlers"
)

func NewRouter(cfg config.Config, logger zerolog.Logger, cat *catalog.Catalog) *chi.Mux {
	resolver := service.NewResolver(cat, nil)

	r := chi.NewRouter()

	// order matters: recover -> requestID -> logging -> cors -> limit -> rate
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(int64(cfg.MaxBodyKB) * 1024))
	r.Use(middleware.RateLimit(cfg.RateRPS, cfg.RateBurst))

	r.Get("/health", handlers.Health)

	r.Post("/suggest", recHnd.Suggest(resolver, cfg, logger))
	r.Post("/resolve", recHnd.Resolve(resolver, logger))
	r.Post("/recommend", recHnd.Recommend(cat, cfg, logger))

	return r
}
