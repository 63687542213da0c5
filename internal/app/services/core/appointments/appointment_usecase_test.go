package appointments

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubGateway struct {
	mine        []models.Appointment
	cancelled   *models.Appointment
	cancelCalls int
	statusPath  string
}

func (s *stubGateway) ListMine(ctx context.Context, token string, filters *requests.AppointmentFilters) ([]models.Appointment, error) {
	return s.mine, nil
}

func (s *stubGateway) ListForDoctor(ctx context.Context, token string, filters *requests.AppointmentFilters) ([]models.Appointment, error) {
	return s.mine, nil
}

func (s *stubGateway) ListAll(ctx context.Context, token string, filters *requests.AppointmentFilters) ([]models.Appointment, error) {
	return s.mine, nil
}

func (s *stubGateway) Cancel(ctx context.Context, token, appointmentID string) (*models.Appointment, error) {
	s.cancelCalls++
	return s.cancelled, nil
}

func (s *stubGateway) UpdateStatusAsDoctor(ctx context.Context, token, appointmentID, status string) (*models.Appointment, error) {
	s.statusPath = "doctor"
	return &models.Appointment{ID: appointmentID, Status: status}, nil
}

func (s *stubGateway) UpdateStatusAsAdmin(ctx context.Context, token, appointmentID, status string) (*models.Appointment, error) {
	s.statusPath = "admin"
	return &models.Appointment{ID: appointmentID, Status: status}, nil
}

func patientSession() *models.Session {
	return &models.Session{SessionID: "sess-1", Role: constvars.RolePatient, HospitalToken: "tok"}
}

func TestCancelAsPatient(t *testing.T) {
	pending := models.Appointment{ID: "appt-1", Status: constvars.AppointmentStatusPending}
	completed := models.Appointment{ID: "appt-2", Status: constvars.AppointmentStatusCompleted}

	t.Run("Requires the confirmation flag", func(t *testing.T) {
		gateway := &stubGateway{mine: []models.Appointment{pending}}
		uc := NewAppointmentUsecase(gateway, zap.NewNop())

		_, err := uc.CancelAsPatient(context.Background(), patientSession(), "appt-1", false)
		assert.Error(t, err)
		assert.Zero(t, gateway.cancelCalls)
	})

	t.Run("Cancels a pending appointment", func(t *testing.T) {
		cancelled := pending
		cancelled.Status = constvars.AppointmentStatusCancelled
		gateway := &stubGateway{mine: []models.Appointment{pending}, cancelled: &cancelled}
		uc := NewAppointmentUsecase(gateway, zap.NewNop())

		result, err := uc.CancelAsPatient(context.Background(), patientSession(), "appt-1", true)
		require.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusCancelled, result.Status)
		assert.Equal(t, 1, gateway.cancelCalls)
	})

	t.Run("Rejects non-pending appointments with a conflict", func(t *testing.T) {
		gateway := &stubGateway{mine: []models.Appointment{completed}}
		uc := NewAppointmentUsecase(gateway, zap.NewNop())

		_, err := uc.CancelAsPatient(context.Background(), patientSession(), "appt-2", true)
		require.Error(t, err)
		assert.Equal(t, constvars.StatusConflict, exceptions.StatusCodeOf(err))
		assert.Zero(t, gateway.cancelCalls)
	})

	t.Run("Unknown appointment is a 404", func(t *testing.T) {
		gateway := &stubGateway{mine: []models.Appointment{pending}}
		uc := NewAppointmentUsecase(gateway, zap.NewNop())

		_, err := uc.CancelAsPatient(context.Background(), patientSession(), "appt-404", true)
		require.Error(t, err)
		assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCodeOf(err))
	})
}

func TestUpdateStatus(t *testing.T) {
	t.Run("Doctor goes through the doctor endpoint", func(t *testing.T) {
		gateway := &stubGateway{}
		uc := NewAppointmentUsecase(gateway, zap.NewNop())
		session := &models.Session{Role: constvars.RoleDoctor, HospitalToken: "tok"}

		result, err := uc.UpdateStatus(context.Background(), session, "appt-1", constvars.AppointmentStatusCompleted)
		require.NoError(t, err)
		assert.Equal(t, "doctor", gateway.statusPath)
		assert.Equal(t, constvars.AppointmentStatusCompleted, result.Status)
	})

	t.Run("Admin goes through the admin endpoint", func(t *testing.T) {
		gateway := &stubGateway{}
		uc := NewAppointmentUsecase(gateway, zap.NewNop())
		session := &models.Session{Role: constvars.RoleAdmin, HospitalToken: "tok"}

		_, err := uc.UpdateStatus(context.Background(), session, "appt-1", constvars.AppointmentStatusCancelled)
		require.NoError(t, err)
		assert.Equal(t, "admin", gateway.statusPath)
	})

	t.Run("Patient role is refused", func(t *testing.T) {
		gateway := &stubGateway{}
		uc := NewAppointmentUsecase(gateway, zap.NewNop())

		_, err := uc.UpdateStatus(context.Background(), patientSession(), "appt-1", constvars.AppointmentStatusCompleted)
		require.Error(t, err)
		assert.Equal(t, constvars.StatusForbidden, exceptions.StatusCodeOf(err))
	})
}

func TestListForAdminAppliesOptions(t *testing.T) {
	gateway := &stubGateway{mine: []models.Appointment{
		{ID: "appt-1", Patient: models.PersonRef{Name: "Meera Nair"}, Date: "2030-01-12", Time: "10:00"},
		{ID: "appt-2", Patient: models.PersonRef{Name: "Arjun Menon"}, Date: "2030-01-11", Time: "09:00"},
	}}
	uc := NewAppointmentUsecase(gateway, zap.NewNop())
	session := &models.Session{Role: constvars.RoleAdmin, HospitalToken: "tok"}

	list, err := uc.ListForAdmin(context.Background(), session, nil, &requests.ListOptions{
		Search:  "me",
		SortKey: constvars.SortKeyDateTime,
		SortDir: constvars.SortAscending,
	})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "appt-2", list[0].ID)
}
