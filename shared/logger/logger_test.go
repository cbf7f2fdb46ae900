package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"

	"roombook/config"
	"roombook/shared/constant"
	"roombook/shared/logger"
)

func TestInitLogger(t *testing.T) {
	originalLogger := log.Logger
	defer func() { log.Logger = originalLogger }()

	logger.InitLogger()

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestErrorWithStack(t *testing.T) {
	originalLogger := log.Logger
	defer func() { log.Logger = originalLogger }()

	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	logger.ErrorWithStack(errors.New("room lookup failed"))

	assert.Contains(t, buf.String(), "room lookup failed")
}

func TestSetLogLevel(t *testing.T) {
	originalLevel := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(originalLevel)

	tests := []struct {
		name          string
		logLevel      string
		expectedLevel zerolog.Level
	}{
		{name: "debug level", logLevel: "debug", expectedLevel: zerolog.DebugLevel},
		{name: "info level", logLevel: "info", expectedLevel: zerolog.InfoLevel},
		{name: "warn level", logLevel: "warn", expectedLevel: zerolog.WarnLevel},
		{name: "error level", logLevel: "error", expectedLevel: zerolog.ErrorLevel},
		{name: "disabled level", logLevel: "disabled", expectedLevel: zerolog.Disabled},
		{name: "invalid level defaults to trace", logLevel: "verbose", expectedLevel: zerolog.TraceLevel},
		{name: "empty level uses NoLevel", logLevel: "", expectedLevel: zerolog.NoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.logLevel

			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.expectedLevel, zerolog.GlobalLevel())
		})
	}
}

func TestConfigure_Production(t *testing.T) {
	originalLogger := log.Logger
	originalLevel := zerolog.GlobalLevel()
	originalTimeFormat := zerolog.TimeFieldFormat

	defer func() {
		log.Logger = originalLogger
		zerolog.SetGlobalLevel(originalLevel)
		zerolog.TimeFieldFormat = originalTimeFormat
	}()

	cfg := &config.Config{}
	cfg.Server.Env = constant.ServerEnvProduction
	cfg.Server.LogLevel = "warn"
	cfg.App.Name = "roombook"

	logger.Configure(cfg)

	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}
