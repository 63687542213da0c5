package contacts

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"

	"go.uber.org/zap"
)

type contactUsecase struct {
	gateway ContactSubmitGateway
	logger  *zap.Logger
}

func NewContactUsecase(gateway ContactSubmitGateway, logger *zap.Logger) ContactUsecase {
	return &contactUsecase{
		gateway: gateway,
		logger:  logger,
	}
}

// SubmitMessage forwards a visitor message upstream. The sender has no
// session, so the only identity attached is what the form carries.
func (uc *contactUsecase) SubmitMessage(ctx context.Context, request *requests.CreateContact) (*models.ContactMessage, error) {
	message, err := uc.gateway.CreateContact(ctx, request)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("contact message submitted", zap.String("email", request.Email))
	return message, nil
}
