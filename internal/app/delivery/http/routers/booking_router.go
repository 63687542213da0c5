package routers

import (
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/pkg/constvars"

	"medibook-service/internal/app/services/core/booking"

	"github.com/go-chi/chi/v5"
)

// The booking draft is patient-only: the workflow models one patient filling
// one appointment form at a time.
func attachBookingRoutes(router chi.Router, middlewares *middlewares.Middlewares, bookingController *booking.BookingController) {
	router.Use(middlewares.Authenticate)
	router.Use(middlewares.RequireRoles(constvars.RolePatient))

	router.Get("/draft", bookingController.GetDraft)
	router.Patch("/draft", bookingController.UpdateDraft)
	router.Get("/slots", bookingController.ResolveSlots)
	router.Post("/submit", bookingController.Submit)
}
