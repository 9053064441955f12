package main

import (
	"context"
	"lodging/config"
	"lodging/di"
	"lodging/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.Configure(cfg)

	if err := di.InitializeAdminBootstrap().EnsureAdmin(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("failed to bootstrap admin account")
	}

	log.Info().Str("username", cfg.App.Admin.Username).Msg("admin account is ready")
}
