package routers

import (
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/core/admin"
	"medibook-service/internal/app/services/core/directory"
	"medibook-service/internal/app/services/core/patients"
	"medibook-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAdminRoutes(router chi.Router, middlewares *middlewares.Middlewares, adminController *admin.AdminController, directoryController *directory.DirectoryController, patientController *patients.PatientController) {
	router.Use(middlewares.Authenticate)
	router.Use(middlewares.RequireRoles(constvars.RoleAdmin))

	router.Get("/stats", adminController.GetStats)

	router.Get("/doctors", directoryController.ListAllDoctors)
	router.Post("/doctors", directoryController.AddDoctor)
	router.Put("/doctors/{doctorID}", directoryController.UpdateDoctor)
	router.Delete("/doctors/{doctorID}", directoryController.DeleteDoctor)

	router.Get("/patients", patientController.ListAll)
	router.Delete("/patients/{patientID}", patientController.DeletePatient)

	router.Get("/contacts", adminController.ListContacts)
	router.Delete("/contacts/{contactID}", adminController.DeleteContact)
}
