package doctors

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type doctorUsecase struct {
	gateway ProfileGateway
	logger  *zap.Logger
}

func NewDoctorUsecase(gateway ProfileGateway, logger *zap.Logger) DoctorUsecase {
	return &doctorUsecase{
		gateway: gateway,
		logger:  logger,
	}
}

func (uc *doctorUsecase) GetProfile(ctx context.Context, session *models.Session) (*models.Doctor, error) {
	return uc.gateway.GetProfile(ctx, session.HospitalToken)
}

func (uc *doctorUsecase) UpdateProfile(ctx context.Context, session *models.Session, request *requests.UpdateDoctorProfile) (*models.Doctor, error) {
	return uc.gateway.UpdateProfile(ctx, session.HospitalToken, request)
}

func (uc *doctorUsecase) GetDashboard(ctx context.Context, session *models.Session) (*responses.DoctorDashboard, error) {
	return uc.gateway.GetDashboard(ctx, session.HospitalToken)
}
