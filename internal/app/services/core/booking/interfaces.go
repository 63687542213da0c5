package booking

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type BookingUsecase interface {
	GetDraft(ctx context.Context, session *models.Session) *responses.BookingDraft
	UpdateDraft(ctx context.Context, session *models.Session, request *requests.UpdateBookingDraft) (*responses.BookingDraft, error)
	ResolveSlots(ctx context.Context, session *models.Session) (*responses.AvailableSlots, error)
	Submit(ctx context.Context, session *models.Session) (*models.Appointment, error)
	DiscardDraft(session *models.Session)
}

type SlotFetcher interface {
	AvailableSlots(ctx context.Context, token, doctorID, date string) ([]string, error)
}

type AppointmentBooker interface {
	Create(ctx context.Context, token string, request *requests.CreateAppointment) (*models.Appointment, error)
}

type DoctorFinder interface {
	FindDoctor(ctx context.Context, token, doctorID string) (*models.Doctor, error)
}
