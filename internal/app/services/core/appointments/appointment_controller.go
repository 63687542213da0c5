package appointments

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AppointmentController struct {
	AppointmentUsecase AppointmentUsecase
	Log                *zap.Logger
}

func NewAppointmentController(appointmentUsecase AppointmentUsecase, log *zap.Logger) *AppointmentController {
	return &AppointmentController{
		AppointmentUsecase: appointmentUsecase,
		Log:                log,
	}
}

func sessionFromContext(r *http.Request) *models.Session {
	session, _ := r.Context().Value(constvars.ContextSessionKey).(*models.Session)
	return session
}

func filtersFromQuery(r *http.Request) *requests.AppointmentFilters {
	return &requests.AppointmentFilters{
		Status:      r.URL.Query().Get("status"),
		Date:        r.URL.Query().Get("date"),
		PatientName: r.URL.Query().Get("patientName"),
	}
}

func listOptionsFromQuery(r *http.Request) *requests.ListOptions {
	return &requests.ListOptions{
		Search:  r.URL.Query().Get("search"),
		SortKey: r.URL.Query().Get("sortKey"),
		SortDir: r.URL.Query().Get("sortDir"),
	}
}

func (ctrl *AppointmentController) ListMine(w http.ResponseWriter, r *http.Request) {
	session := sessionFromContext(r)

	filters := filtersFromQuery(r)
	if err := utils.ValidateStruct(filters); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.ListForPatient(ctx, session, filters)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentsGetSuccess, result)
}

func (ctrl *AppointmentController) ListForDoctor(w http.ResponseWriter, r *http.Request) {
	session := sessionFromContext(r)

	filters := filtersFromQuery(r)
	opts := listOptionsFromQuery(r)
	if err := utils.ValidateStruct(filters); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}
	if err := utils.ValidateStruct(opts); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.ListForDoctor(ctx, session, filters, opts)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentsGetSuccess, result)
}

func (ctrl *AppointmentController) ListForAdmin(w http.ResponseWriter, r *http.Request) {
	session := sessionFromContext(r)

	filters := filtersFromQuery(r)
	opts := listOptionsFromQuery(r)
	if err := utils.ValidateStruct(filters); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}
	if err := utils.ValidateStruct(opts); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.ListForAdmin(ctx, session, filters, opts)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentsGetSuccess, result)
}

func (ctrl *AppointmentController) Cancel(w http.ResponseWriter, r *http.Request) {
	session := sessionFromContext(r)
	appointmentID := chi.URLParam(r, "appointmentID")

	request := new(requests.CancelAppointment)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.CancelAsPatient(ctx, session, appointmentID, request.Confirm)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentCancelled, result)
}

func (ctrl *AppointmentController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	session := sessionFromContext(r)
	appointmentID := chi.URLParam(r, "appointmentID")

	request := new(requests.UpdateAppointmentStatus)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.UpdateStatus(ctx, session, appointmentID, request.Status)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.StatusUpdatedSuccess, result)
}
