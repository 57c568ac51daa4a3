package router

import (
	"github.com/go-chi/chi/v5"

	"carserv/internal/handlers/admin"
	"carserv/internal/handlers/booking"
	"carserv/internal/handlers/user"
)

type DomainHandlers struct {
	User    user.Handler
	Admin   admin.Handler
	Booking booking.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Admin.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
