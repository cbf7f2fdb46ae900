package event

import (
	"context"
	"fmt"
	"roombook/infras/kafka"
	"roombook/infras/otel"
	"roombook/internal/domains/booking/service"
	"roombook/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

type Handler struct {
	otel otel.Otel
}

func New(otel otel.Otel) Handler {
	return Handler{
		otel: otel,
	}
}

// BookingEvent writes one booking event to the log. Undecodable messages are
// returned as errors so their offset is not committed.
func (handler *Handler) BookingEvent(ctx context.Context, message kafkaGo.Message) error {
	_, scope := handler.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".BookingEvent")
	defer scope.End()

	event, err := kafka.DecodeKafkaMessage[service.Event](message)
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to decode booking event at offset %d: %w", message.Offset, err)
	}

	scope.SetAttributes(map[string]any{
		"event.type":    event.Type,
		"event.booking": event.Booking.ID,
		"event.offset":  message.Offset,
	})

	log.Info().
		Str("event", event.Type).
		Str("booking", event.Booking.ID).
		Str("room", event.Booking.RoomName).
		Str("bookedBy", event.Booking.BookedBy).
		Str("date", event.Booking.BookingDate).
		Str("start", event.Booking.StartTime).
		Str("end", event.Booking.EndTime).
		Time("occurredAt", event.OccurredAt).
		Msg("booking event")

	return nil
}
