package main

import (
	"lodging/config"
	"lodging/helper"
	"lodging/shared/logger"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
)

const (
	argLength      = 2
	forceArgLength = 3
)

func main() {
	logger.InitLogger()

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration direction (up/down/step-up/drop/force) is required")
	}

	cfg := config.Get()

	var err error

	switch os.Args[1] {
	case helper.ActionUp:
		err = helper.Up(cfg)
	case helper.ActionDown:
		err = helper.Down(cfg)
	case helper.ActionDrop:
		err = helper.Drop(cfg)
	case helper.ActionStepUp:
		err = helper.StepUp(cfg)
	case helper.ActionForce:
		if len(os.Args) < forceArgLength {
			log.Fatal().Msg("force requires a version")
		}

		version, convErr := strconv.Atoi(os.Args[2])
		if convErr != nil {
			log.Fatal().Err(convErr).Msg("force version must be a number")
		}

		err = helper.Force(cfg, version)
	default:
		log.Fatal().Msg("Invalid direction. Use 'up', 'down', 'drop', 'step-up' or 'force <version>'")
	}

	if err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
}
