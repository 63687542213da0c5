package booking

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type BookingController struct {
	BookingUsecase BookingUsecase
	Log            *zap.Logger
}

func NewBookingController(bookingUsecase BookingUsecase, log *zap.Logger) *BookingController {
	return &BookingController{
		BookingUsecase: bookingUsecase,
		Log:            log,
	}
}

func sessionFromContext(r *http.Request) *models.Session {
	session, _ := r.Context().Value(constvars.ContextSessionKey).(*models.Session)
	return session
}

func (ctrl *BookingController) GetDraft(w http.ResponseWriter, r *http.Request) {
	session := sessionFromContext(r)

	draft := ctrl.BookingUsecase.GetDraft(r.Context(), session)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BookingDraftSuccess, draft)
}

func (ctrl *BookingController) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	session := sessionFromContext(r)

	request := new(requests.UpdateBookingDraft)
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

	draft, err := ctrl.BookingUsecase.UpdateDraft(ctx, session, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BookingDraftSuccess, draft)
}

func (ctrl *BookingController) ResolveSlots(w http.ResponseWriter, r *http.Request) {
	session := sessionFromContext(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	slots, err := ctrl.BookingUsecase.ResolveSlots(ctx, session)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SlotsGetSuccess, slots)
}

func (ctrl *BookingController) Submit(w http.ResponseWriter, r *http.Request) {
	session := sessionFromContext(r)

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	appointment, err := ctrl.BookingUsecase.Submit(ctx, session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AppointmentBookSuccess, appointment)
}
