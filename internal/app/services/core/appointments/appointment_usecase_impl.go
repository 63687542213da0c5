package appointments

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	gateway AppointmentGateway
	logger  *zap.Logger
}

func NewAppointmentUsecase(gateway AppointmentGateway, logger *zap.Logger) AppointmentUsecase {
	return &appointmentUsecase{
		gateway: gateway,
		logger:  logger,
	}
}

func (uc *appointmentUsecase) ListForPatient(ctx context.Context, session *models.Session, filters *requests.AppointmentFilters) ([]models.Appointment, error) {
	return uc.gateway.ListMine(ctx, session.HospitalToken, filters)
}

func (uc *appointmentUsecase) ListForDoctor(ctx context.Context, session *models.Session, filters *requests.AppointmentFilters, opts *requests.ListOptions) ([]models.Appointment, error) {
	list, err := uc.gateway.ListForDoctor(ctx, session.HospitalToken, filters)
	if err != nil {
		return nil, err
	}
	return applyListOptions(list, opts), nil
}

func (uc *appointmentUsecase) ListForAdmin(ctx context.Context, session *models.Session, filters *requests.AppointmentFilters, opts *requests.ListOptions) ([]models.Appointment, error) {
	list, err := uc.gateway.ListAll(ctx, session.HospitalToken, filters)
	if err != nil {
		return nil, err
	}
	return applyListOptions(list, opts), nil
}

func applyListOptions(list []models.Appointment, opts *requests.ListOptions) []models.Appointment {
	if opts == nil {
		return list
	}
	list = FilterBySearchTerm(list, opts.Search)
	if opts.SortKey != "" {
		SortAppointments(list, opts.SortKey, opts.SortDir)
	}
	return list
}

// CancelAsPatient guards the transition locally before going upstream: the
// action exists only for pending appointments, and a confirmation flag is
// required because cancellation is destructive.
func (uc *appointmentUsecase) CancelAsPatient(ctx context.Context, session *models.Session, appointmentID string, confirm bool) (*models.Appointment, error) {
	if !confirm {
		return nil, exceptions.ErrCancelNotConfirmed()
	}

	list, err := uc.gateway.ListMine(ctx, session.HospitalToken, nil)
	if err != nil {
		return nil, err
	}

	var target *models.Appointment
	for i := range list {
		if list[i].ID == appointmentID {
			target = &list[i]
			break
		}
	}
	if target == nil {
		return nil, exceptions.BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientAppointmentNotFound, constvars.ErrDevStatusNotAllowed)
	}
	if !CanCancel(target) {
		return nil, exceptions.ErrCancelOnlyPending()
	}

	cancelled, err := uc.gateway.Cancel(ctx, session.HospitalToken, appointmentID)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("appointment cancelled by patient",
		zap.String("appointment_id", appointmentID),
		zap.String("session_id", session.SessionID),
	)
	return cancelled, nil
}

// UpdateStatus applies a doctor or admin transition. Either role may set any
// of the three statuses; whatever further rules exist are the upstream's call.
func (uc *appointmentUsecase) UpdateStatus(ctx context.Context, session *models.Session, appointmentID, status string) (*models.Appointment, error) {
	switch session.Role {
	case constvars.RoleDoctor:
		return uc.gateway.UpdateStatusAsDoctor(ctx, session.HospitalToken, appointmentID, status)
	case constvars.RoleAdmin:
		return uc.gateway.UpdateStatusAsAdmin(ctx, session.HospitalToken, appointmentID, status)
	}
	return nil, exceptions.ErrStatusNotAllowed()
}
