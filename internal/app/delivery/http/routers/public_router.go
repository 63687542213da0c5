package routers

import (
	"medibook-service/internal/app/services/core/contacts"
	"medibook-service/internal/app/services/core/directory"

	"github.com/go-chi/chi/v5"
)

// attachPublicRoutes serves visitors that have no account yet. Nothing here
// goes through the session middleware.
func attachPublicRoutes(router chi.Router, directoryController *directory.DirectoryController, contactController *contacts.ContactController) {
	router.Get("/doctors", directoryController.ListPublicDoctors)
	router.Post("/contact", contactController.SubmitMessage)
}
