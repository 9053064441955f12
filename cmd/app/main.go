package main

import (
	"context"
	"lodging/config"
	"lodging/di"
	"lodging/helper"
	"lodging/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Lodging API
// @version 1.0
// @description Room allocation, guest check-in, receipts and reports for a single property.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.Configure(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("failed to run database migrations")
		}
	}

	app := di.InitializeApp()

	if err := app.Auth.EnsureAdmin(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("failed to bootstrap admin account")
	}

	ctx, cancel := context.WithCancel(context.Background())

	go app.Consumer.Run(ctx)

	app.HTTP.OnReady("postgres", app.DB.Ping)
	app.HTTP.OnShutdown(cancel)
	app.HTTP.Serve()
}
