package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"fundtracker/internal/adapter/repo"
	"fundtracker/internal/http/handlers"
	"fundtracker/internal/http/httpapi"
	"fundtracker/internal/infra"
	"fundtracker/internal/infra/geoip"
	"fundtracker/internal/middleware"
	"fundtracker/internal/seed"
	"fundtracker/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	if err := infra.Migrate(ctx, dbpool); err != nil {
		logger.Fatal().Err(err).Msg("failed to apply schema")
	}

	// Rate-limit windows live in Redis when configured, otherwise in
	// process memory.
	var rateCounter middleware.Counter = middleware.NewMemoryCounter()
	redisClient, err := infra.NewRedisClient(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect redis")
	}
	if redisClient != nil {
		defer redisClient.Close()
		rateCounter = middleware.NewRedisCounter(redisClient)
		logger.Info().Msg("rate limiting backed by redis")
	}

	var countryLookup middleware.CountryLookup
	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip database unavailable, country resolution disabled")
	} else if resolver != nil {
		countryLookup = resolver.CountryCode
	}

	projectRepo := repo.NewProjectRepository(dbpool)
	donationRepo := repo.NewDonationRepository(dbpool)
	projectSvc := service.NewProjectService(projectRepo, logger)
	donationSvc := service.NewDonationService(donationRepo, projectSvc, logger)

	if cfg.SeedDatabase && cfg.IsDevelopment() {
		if err := seed.Run(ctx, projectSvc, donationSvc, logger); err != nil {
			logger.Fatal().Err(err).Msg("database seeding failed")
		}
	}

	app := handlers.NewApp(projectSvc, donationSvc, dbpool, logger, cfg.AppEnv, cfg.APIVersion)
	router := httpapi.NewRouter(app, httpapi.RouterDeps{
		Config:        cfg,
		Logger:        logger,
		RateCounter:   rateCounter,
		CountryLookup: countryLookup,
	})

	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
