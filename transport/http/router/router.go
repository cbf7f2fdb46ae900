package router

import (
	"roombook/internal/handlers/booking"
	"roombook/internal/handlers/room"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Room    room.Handler
	Booking booking.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Room.Router(router)
	r.DomainHandlers.Booking.Router(router)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
