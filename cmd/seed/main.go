package main

import (
	"context"

	"github.com/joho/godotenv"

	"fundtracker/internal/adapter/repo"
	"fundtracker/internal/infra"
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

	projectSvc := service.NewProjectService(repo.NewProjectRepository(dbpool), logger)
	donationSvc := service.NewDonationService(repo.NewDonationRepository(dbpool), projectSvc, logger)

	if err := seed.Run(ctx, projectSvc, donationSvc, logger); err != nil {
		logger.Fatal().Err(err).Msg("database seeding failed")
	}
	logger.Info().Msg("seeding script completed")
}
