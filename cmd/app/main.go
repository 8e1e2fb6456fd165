package main

import (
	"github.com/rs/zerolog/log"

	"innkeep/config"
	"innkeep/di"
	"innkeep/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	log.Info().
		Str("app", cfg.App.Name).
		Str("env", cfg.Server.Env).
		Msg("starting api server")

	di.InitializeService().Serve()
}
