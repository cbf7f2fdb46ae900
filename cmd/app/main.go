package main

import (
	"roombook/config"
	"roombook/di"
	"roombook/helper"
	"roombook/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Roombook API
// @version 1.0
// @description Conference room booking service.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.Configure(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
