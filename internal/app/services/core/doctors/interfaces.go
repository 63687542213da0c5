package doctors

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type DoctorUsecase interface {
	GetProfile(ctx context.Context, session *models.Session) (*models.Doctor, error)
	UpdateProfile(ctx context.Context, session *models.Session, request *requests.UpdateDoctorProfile) (*models.Doctor, error)
	GetDashboard(ctx context.Context, session *models.Session) (*responses.DoctorDashboard, error)
}

type ProfileGateway interface {
	GetProfile(ctx context.Context, token string) (*models.Doctor, error)
	UpdateProfile(ctx context.Context, token string, request *requests.UpdateDoctorProfile) (*models.Doctor, error)
	GetDashboard(ctx context.Context, token string) (*responses.DoctorDashboard, error)
}
