package availability

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

type AvailabilityController struct {
	AvailabilityUsecase AvailabilityUsecase
	Log                 *zap.Logger
}

func NewAvailabilityController(availabilityUsecase AvailabilityUsecase, log *zap.Logger) *AvailabilityController {
	return &AvailabilityController{
		AvailabilityUsecase: availabilityUsecase,
		Log:                 log,
	}
}

func sessionFromContext(r *http.Request) *models.Session {
	session, _ := r.Context().Value(constvars.ContextSessionKey).(*models.Session)
	return session
}

func (ctrl *AvailabilityController) GetWeek(w http.ResponseWriter, r *http.Request) {
	session := sessionFromContext(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	week, err := ctrl.AvailabilityUsecase.GetWeek(ctx, session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AvailabilityGetSuccess, week)
}

func (ctrl *AvailabilityController) SaveWeek(w http.ResponseWriter, r *http.Request) {
	session := sessionFromContext(r)

	request := new(requests.SaveAvailability)
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

	err = ctrl.AvailabilityUsecase.SaveWeek(ctx, session, request.Availability)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AvailabilitySaveSuccess, nil)
}
