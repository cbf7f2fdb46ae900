package service

import (
	"context"
	"roombook/infras/kafka"
	"roombook/internal/domains/booking/model/dto"
	"roombook/shared/constant"
	"roombook/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	EventBookingCreated   = "booking.created"
	EventBookingCancelled = "booking.cancelled"
)

// Event is the payload written to the booking events topic.
type Event struct {
	Type       string              `json:"type"`
	OccurredAt time.Time           `json:"occurredAt"`
	Booking    dto.BookingResponse `json:"booking"`
}

// publish sends the event in the background. A failure is logged and never
// reaches the caller.
func (s *serviceImpl) publish(ctx context.Context, eventType string, booking dto.BookingResponse) {
	topic := s.cfg.Kafka.Topics.BookingEvents
	if topic == constant.Empty {
		return
	}

	event := Event{
		Type:       eventType,
		OccurredAt: timezone.Now(),
		Booking:    booking,
	}

	go func() {
		c := context.WithoutCancel(ctx)

		c, scope := s.otel.NewScope(c, constant.OtelEventScopeName, constant.OtelEventScopeName+"."+eventType)
		defer scope.End()

		err := s.kafka.SendMessages(c, topic, kafka.Message{Key: booking.RoomName, Value: event})
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("event", eventType).Str("booking", booking.ID).Msg("failed to publish booking event")
		}
	}()
}
