package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"basket-service/internal/config"
	"basket-service/internal/recommend/catalog"
	serverhttp "basket-service/server/http"
)

func main() {
	cfg := config.Load()
	logger := config.SetupLogger(cfg)

	// catalog and rule index load once; a bad source is fatal, there is no
	// partial/degraded mode
	cat, err := catalog.NewLoader(cfg.ProductsPath, cfg.RulesPath).Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("catalog load")
	}
	logger.Info().
		Int("products", len(cat.Products)).
		Int("rules", len(cat.Rules)).
		Int("eligible", len(cat.EligibleNames())).
		Msg("catalog loaded")

	r := serverhttp.NewRouter(cfg, logger, cat)

	srv := &http.Server{Addr: cfg.Addr(), Handler: r}
	logger.Info().Str("addr", cfg.Addr()).Msg("server starting")

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("listen")
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	logger.Info().Msg("bye")
}
