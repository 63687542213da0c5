package contacts

import (
	"context"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ContactController struct {
	ContactUsecase ContactUsecase
	Log            *zap.Logger
}

func NewContactController(contactUsecase ContactUsecase, log *zap.Logger) *ContactController {
	return &ContactController{
		ContactUsecase: contactUsecase,
		Log:            log,
	}
}

func (ctrl *ContactController) SubmitMessage(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateContact)
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

	message, err := ctrl.ContactUsecase.SubmitMessage(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ContactSentSuccess, message)
}
