package directory

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

type DirectoryController struct {
	DirectoryUsecase DirectoryUsecase
	Log              *zap.Logger
}

func NewDirectoryController(directoryUsecase DirectoryUsecase, log *zap.Logger) *DirectoryController {
	return &DirectoryController{
		DirectoryUsecase: directoryUsecase,
		Log:              log,
	}
}

func sessionFromContext(r *http.Request) *models.Session {
	session, _ := r.Context().Value(constvars.ContextSessionKey).(*models.Session)
	return session
}

// ListDoctors serves the bookable directory that feeds the doctor picker.
func (ctrl *DirectoryController) ListDoctors(w http.ResponseWriter, r *http.Request) {
	session := sessionFromContext(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	doctors, err := ctrl.DirectoryUsecase.ListDoctors(ctx, session.HospitalToken)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorsGetSuccess, doctors)
}

// ListPublicDoctors serves the same directory to unauthenticated visitors.
// The empty token makes the usecase fall back to the machine credential when
// the cache is cold.
func (ctrl *DirectoryController) ListPublicDoctors(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	doctors, err := ctrl.DirectoryUsecase.ListDoctors(ctx, "")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorsGetSuccess, doctors)
}

func (ctrl *DirectoryController) ListAllDoctors(w http.ResponseWriter, r *http.Request) {
	session := sessionFromContext(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	doctors, err := ctrl.DirectoryUsecase.ListAllDoctors(ctx, session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorsGetSuccess, doctors)
}

func (ctrl *DirectoryController) AddDoctor(w http.ResponseWriter, r *http.Request) {
	session := sessionFromContext(r)

	request := new(requests.CreateDoctor)
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

	doctor, err := ctrl.DirectoryUsecase.AddDoctor(ctx, session, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.DoctorAddedSuccess, doctor)
}

func (ctrl *DirectoryController) UpdateDoctor(w http.ResponseWriter, r *http.Request) {
	session := sessionFromContext(r)
	doctorID := chi.URLParam(r, "doctorID")

	request := new(requests.UpdateDoctor)
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

	doctor, err := ctrl.DirectoryUsecase.UpdateDoctor(ctx, session, doctorID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorUpdatedSuccess, doctor)
}

func (ctrl *DirectoryController) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	session := sessionFromContext(r)
	doctorID := chi.URLParam(r, "doctorID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.DirectoryUsecase.DeleteDoctor(ctx, session, doctorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorDeletedSuccess, nil)
}
