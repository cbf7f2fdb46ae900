package main

import (
	"os"
	"roombook/config"
	"roombook/helper"
	"roombook/shared/logger"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

// Usage: migrate <up|down|drop|step-up|version>
var actions = []string{"up", "down", "drop", "step-up", "version"}

func main() {
	cfg := config.Get()
	logger.InitLogger()
	logger.Configure(cfg)

	if len(os.Args) != 2 || !slices.Contains(actions, os.Args[1]) {
		log.Fatal().Msgf("migration action is required, one of: %s", strings.Join(actions, ", "))
	}

	action := os.Args[1]
	if err := helper.Runner(cfg, action); err != nil {
		log.Fatal().Err(err).Str("action", action).Msg("Migration failed")
	}
}
