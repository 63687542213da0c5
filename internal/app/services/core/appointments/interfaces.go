package appointments

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
)

type AppointmentUsecase interface {
	ListForPatient(ctx context.Context, session *models.Session, filters *requests.AppointmentFilters) ([]models.Appointment, error)
	ListForDoctor(ctx context.Context, session *models.Session, filters *requests.AppointmentFilters, opts *requests.ListOptions) ([]models.Appointment, error)
	ListForAdmin(ctx context.Context, session *models.Session, filters *requests.AppointmentFilters, opts *requests.ListOptions) ([]models.Appointment, error)
	CancelAsPatient(ctx context.Context, session *models.Session, appointmentID string, confirm bool) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, session *models.Session, appointmentID, status string) (*models.Appointment, error)
}

type AppointmentGateway interface {
	ListMine(ctx context.Context, token string, filters *requests.AppointmentFilters) ([]models.Appointment, error)
	ListForDoctor(ctx context.Context, token string, filters *requests.AppointmentFilters) ([]models.Appointment, error)
	ListAll(ctx context.Context, token string, filters *requests.AppointmentFilters) ([]models.Appointment, error)
	Cancel(ctx context.Context, token, appointmentID string) (*models.Appointment, error)
	UpdateStatusAsDoctor(ctx context.Context, token, appointmentID, status string) (*models.Appointment, error)
	UpdateStatusAsAdmin(ctx context.Context, token, appointmentID, status string) (*models.Appointment, error)
}
