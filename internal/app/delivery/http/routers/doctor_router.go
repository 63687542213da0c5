package routers

import (
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/core/directory"
	"medibook-service/internal/app/services/core/doctors"
	"medibook-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, directoryController *directory.DirectoryController, doctorController *doctors.DoctorController) {
	router.Use(middlewares.Authenticate)

	// Patients browse the directory while picking a doctor.
	router.With(middlewares.RequireRoles(constvars.RolePatient)).Get("/", directoryController.ListDoctors)

	router.With(middlewares.RequireRoles(constvars.RoleDoctor)).Get("/profile", doctorController.GetProfile)
	router.With(middlewares.RequireRoles(constvars.RoleDoctor)).Put("/profile", doctorController.UpdateProfile)
	router.With(middlewares.RequireRoles(constvars.RoleDoctor)).Get("/dashboard", doctorController.GetDashboard)
}
