package contacts

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
)

type ContactUsecase interface {
	SubmitMessage(ctx context.Context, request *requests.CreateContact) (*models.ContactMessage, error)
}

type ContactSubmitGateway interface {
	CreateContact(ctx context.Context, request *requests.CreateContact) (*models.ContactMessage, error)
}
