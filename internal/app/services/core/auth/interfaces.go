package auth

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Login(ctx context.Context, role string, request *requests.Login) (*responses.Login, error)
	RegisterPatient(ctx context.Context, request *requests.RegisterPatient) error
	Logout(ctx context.Context, session *models.Session) error
}

type AuthGateway interface {
	Login(ctx context.Context, role string, request *requests.Login) (*responses.HospitalLogin, error)
	RegisterPatient(ctx context.Context, request *requests.RegisterPatient) error
}

// DraftDiscarder drops any in-progress booking draft when a session ends.
type DraftDiscarder interface {
	DiscardDraft(session *models.Session)
}
