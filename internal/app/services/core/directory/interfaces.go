package directory

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
)

type DirectoryUsecase interface {
	ListDoctors(ctx context.Context, token string) ([]models.Doctor, error)
	ListAllDoctors(ctx context.Context, session *models.Session) ([]models.Doctor, error)
	FindDoctor(ctx context.Context, token, doctorID string) (*models.Doctor, error)
	AddDoctor(ctx context.Context, session *models.Session, request *requests.CreateDoctor) (*models.Doctor, error)
	UpdateDoctor(ctx context.Context, session *models.Session, doctorID string, request *requests.UpdateDoctor) (*models.Doctor, error)
	DeleteDoctor(ctx context.Context, session *models.Session, doctorID string) error
	RefreshCache(ctx context.Context) error
}

type DoctorGateway interface {
	ListDoctors(ctx context.Context, token string) ([]models.Doctor, error)
	ListAllDoctors(ctx context.Context, token string) ([]models.Doctor, error)
	AddDoctor(ctx context.Context, token string, request *requests.CreateDoctor) (*models.Doctor, error)
	UpdateDoctor(ctx context.Context, token, doctorID string, request *requests.UpdateDoctor) (*models.Doctor, error)
	DeleteDoctor(ctx context.Context, token, doctorID string) error
}
