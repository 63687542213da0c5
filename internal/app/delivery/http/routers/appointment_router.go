package routers

import (
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/core/appointments"
	"medibook-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *appointments.AppointmentController) {
	router.Use(middlewares.Authenticate)

	router.With(middlewares.RequireRoles(constvars.RolePatient)).Get("/my", appointmentController.ListMine)
	router.With(middlewares.RequireRoles(constvars.RolePatient)).Put("/{appointmentID}/cancel", appointmentController.Cancel)

	router.With(middlewares.RequireRoles(constvars.RoleDoctor)).Get("/assigned", appointmentController.ListForDoctor)
	router.With(middlewares.RequireRoles(constvars.RoleAdmin)).Get("/", appointmentController.ListForAdmin)

	router.With(middlewares.RequireRoles(constvars.RoleDoctor, constvars.RoleAdmin)).Patch("/{appointmentID}/status", appointmentController.UpdateStatus)
}
