package admin

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AdminController struct {
	AdminUsecase AdminUsecase
	Log          *zap.Logger
}

func NewAdminController(adminUsecase AdminUsecase, log *zap.Logger) *AdminController {
	return &AdminController{
		AdminUsecase: adminUsecase,
		Log:          log,
	}
}

func sessionFromContext(r *http.Request) *models.Session {
	session, _ := r.Context().Value(constvars.ContextSessionKey).(*models.Session)
	return session
}

func (ctrl *AdminController) GetStats(w http.ResponseWriter, r *http.Request) {
	session := sessionFromContext(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	stats, err := ctrl.AdminUsecase.GetStats(ctx, session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.StatsGetSuccess, stats)
}

func (ctrl *AdminController) ListContacts(w http.ResponseWriter, r *http.Request) {
	session := sessionFromContext(r)
	audience := r.URL.Query().Get("audience")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	contacts, err := ctrl.AdminUsecase.ListContacts(ctx, session, audience)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ContactsGetSuccess, contacts)
}

func (ctrl *AdminController) DeleteContact(w http.ResponseWriter, r *http.Request) {
	session := sessionFromContext(r)
	audience := r.URL.Query().Get("audience")
	contactID := chi.URLParam(r, "contactID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.AdminUsecase.DeleteContact(ctx, session, audience, contactID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ContactDeletedSuccess, nil)
}
