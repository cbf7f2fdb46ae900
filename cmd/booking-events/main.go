package main

import (
	"context"
	"os"
	"os/signal"
	"roombook/config"
	"roombook/infras/kafka"
	"roombook/infras/otel"
	"roombook/internal/handlers/event"
	"roombook/shared/logger"
	"syscall"

	"github.com/rs/zerolog/log"
)

// Consumes the booking events topic and writes every event to the log.
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.Configure(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ot := otel.New(cfg)
	client := kafka.New(cfg)
	handler := event.New(ot)

	topic := cfg.Kafka.Topics.BookingEvents

	log.Info().Str("topic", topic).Str("group", cfg.Kafka.ConsumerGroup).Msg("Starting booking events consumer.")

	if err := client.Consume(ctx, cfg.Kafka.ConsumerGroup, topic, handler.BookingEvent); err != nil {
		log.Error().Err(err).Msg("Booking events consumer stopped")
	}

	if err := client.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close Kafka client")
	}

	if err := ot.Shutdown(context.WithoutCancel(ctx)); err != nil {
		log.Error().Err(err).Msg("Failed to flush traces")
	}
}
