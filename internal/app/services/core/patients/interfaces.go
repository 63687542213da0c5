package patients

import (
	"context"
	"medibook-service/internal/app/models"
)

type PatientUsecase interface {
	GetProfile(ctx context.Context, session *models.Session) (*models.Patient, error)
	UpcomingAppointment(ctx context.Context, session *models.Session) (*models.Appointment, error)
	ListForDoctor(ctx context.Context, session *models.Session) ([]models.Patient, error)
	ListAll(ctx context.Context, session *models.Session) ([]models.Patient, error)
	DeletePatient(ctx context.Context, session *models.Session, patientID string) error
}

type PatientGateway interface {
	GetProfile(ctx context.Context, token string) (*models.Patient, error)
	UpcomingAppointment(ctx context.Context, token string) (*models.Appointment, error)
	ListDoctorPatients(ctx context.Context, token string) ([]models.Patient, error)
	ListAllPatients(ctx context.Context, token string) ([]models.Patient, error)
	DeletePatient(ctx context.Context, token, patientID string) error
}
