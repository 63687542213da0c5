package availability

import (
	"context"
	"medibook-service/internal/app/models"
)

type AvailabilityUsecase interface {
	GetWeek(ctx context.Context, session *models.Session) ([]models.AvailabilityDay, error)
	SaveWeek(ctx context.Context, session *models.Session, week []models.AvailabilityDay) error
}

type AvailabilityGateway interface {
	GetWeek(ctx context.Context, token string) ([]models.AvailabilityDay, error)
	ReplaceWeek(ctx context.Context, token string, week []models.AvailabilityDay) error
}
