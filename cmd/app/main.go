package main

import (
	"smartoffice/config"
	"smartoffice/di"
	"smartoffice/helper"
	"smartoffice/shared/logger"

	"github.com/rs/zerolog/log"

	_ "smartoffice/docs"
)

// @title Smart Office Booking API
// @version 1.0
// @description Location bookings and live availability for the office kiosks.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
