package patients

import (
	"context"
	"medibook-service/internal/app/models"

	"go.uber.org/zap"
)

type patientUsecase struct {
	gateway PatientGateway
	logger  *zap.Logger
}

func NewPatientUsecase(gateway PatientGateway, logger *zap.Logger) PatientUsecase {
	return &patientUsecase{
		gateway: gateway,
		logger:  logger,
	}
}

func (uc *patientUsecase) GetProfile(ctx context.Context, session *models.Session) (*models.Patient, error) {
	return uc.gateway.GetProfile(ctx, session.HospitalToken)
}

// UpcomingAppointment returns nil when the patient has nothing booked. The
// dashboard renders that as the empty state, never as an error.
func (uc *patientUsecase) UpcomingAppointment(ctx context.Context, session *models.Session) (*models.Appointment, error) {
	return uc.gateway.UpcomingAppointment(ctx, session.HospitalToken)
}

func (uc *patientUsecase) ListForDoctor(ctx context.Context, session *models.Session) ([]models.Patient, error) {
	return uc.gateway.ListDoctorPatients(ctx, session.HospitalToken)
}

func (uc *patientUsecase) ListAll(ctx context.Context, session *models.Session) ([]models.Patient, error) {
	return uc.gateway.ListAllPatients(ctx, session.HospitalToken)
}

func (uc *patientUsecase) DeletePatient(ctx context.Context, session *models.Session, patientID string) error {
	if err := uc.gateway.DeletePatient(ctx, session.HospitalToken, patientID); err != nil {
		return err
	}
	uc.logger.Info("patient removed", zap.String("patient_id", patientID))
	return nil
}
