package admin

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/responses"
)

type AdminUsecase interface {
	GetStats(ctx context.Context, session *models.Session) (*responses.AdminStats, error)
	ListContacts(ctx context.Context, session *models.Session, audience string) ([]models.ContactMessage, error)
	DeleteContact(ctx context.Context, session *models.Session, audience, contactID string) error
}

type StatsGateway interface {
	GetStats(ctx context.Context, token string) (*responses.AdminStats, error)
}

type ContactGateway interface {
	ListContacts(ctx context.Context, token, audience string) ([]models.ContactMessage, error)
	DeleteContact(ctx context.Context, token, audience, contactID string) error
}
