package booking

import (
	"context"
	"errors"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubSlotFetcher struct {
	slots []string
	err   error
	calls int
	// hook runs inside the fetch, between BeginSlotFetch and ApplySlots.
	hook func()
}

func (s *stubSlotFetcher) AvailableSlots(ctx context.Context, token, doctorID, date string) ([]string, error) {
	s.calls++
	if s.hook != nil {
		s.hook()
	}
	return s.slots, s.err
}

type stubBooker struct {
	appointment *models.Appointment
	err         error
	lastPayload *requests.CreateAppointment
}

func (s *stubBooker) Create(ctx context.Context, token string, request *requests.CreateAppointment) (*models.Appointment, error) {
	s.lastPayload = request
	return s.appointment, s.err
}

type stubDoctorFinder struct {
	doctors map[string]*models.Doctor
}

func (s *stubDoctorFinder) FindDoctor(ctx context.Context, token, doctorID string) (*models.Doctor, error) {
	return s.doctors[doctorID], nil
}

func strPtr(s string) *string { return &s }

func newTestUsecase(slots *stubSlotFetcher, booker *stubBooker, finder *stubDoctorFinder, now time.Time) (*bookingUsecase, *models.Session) {
	uc := NewBookingUsecase(slots, booker, finder, zap.NewNop()).(*bookingUsecase)
	uc.now = func() time.Time { return now }
	session := &models.Session{SessionID: "sess-1", Role: "patient", HospitalToken: "upstream-token"}
	return uc, session
}

func TestUpdateDraft(t *testing.T) {
	finder := &stubDoctorFinder{doctors: map[string]*models.Doctor{
		"doc-1": {ID: "doc-1", Name: "Asha Rao", Specialization: "Cardiology"},
	}}
	now := time.Date(2030, 1, 10, 9, 0, 0, 0, time.Local)

	t.Run("Unknown doctor is rejected", func(t *testing.T) {
		uc, session := newTestUsecase(&stubSlotFetcher{}, &stubBooker{}, finder, now)

		_, err := uc.UpdateDraft(context.Background(), session, &requests.UpdateBookingDraft{DoctorID: strPtr("doc-404")})
		assert.Error(t, err)
	})

	t.Run("Known doctor fills in the department", func(t *testing.T) {
		uc, session := newTestUsecase(&stubSlotFetcher{}, &stubBooker{}, finder, now)

		draft, err := uc.UpdateDraft(context.Background(), session, &requests.UpdateBookingDraft{DoctorID: strPtr("doc-1")})
		require.NoError(t, err)
		assert.Equal(t, "Cardiology", draft.Department)
	})

	t.Run("Drafts are isolated per session", func(t *testing.T) {
		uc, session := newTestUsecase(&stubSlotFetcher{}, &stubBooker{}, finder, now)
		other := &models.Session{SessionID: "sess-2", Role: "patient"}

		_, err := uc.UpdateDraft(context.Background(), session, &requests.UpdateBookingDraft{DoctorID: strPtr("doc-1")})
		require.NoError(t, err)

		assert.Empty(t, uc.GetDraft(context.Background(), other).DoctorID)
	})

	t.Run("DiscardDraft starts the next draft empty", func(t *testing.T) {
		uc, session := newTestUsecase(&stubSlotFetcher{}, &stubBooker{}, finder, now)

		_, err := uc.UpdateDraft(context.Background(), session, &requests.UpdateBookingDraft{DoctorID: strPtr("doc-1")})
		require.NoError(t, err)

		uc.DiscardDraft(session)
		assert.Empty(t, uc.GetDraft(context.Background(), session).DoctorID)
	})
}

func TestResolveSlots(t *testing.T) {
	finder := &stubDoctorFinder{doctors: map[string]*models.Doctor{
		"doc-1": {ID: "doc-1", Specialization: "Cardiology"},
	}}
	now := time.Date(2030, 1, 10, 14, 0, 0, 0, time.Local)

	selectDoctorAndDate := func(t *testing.T, uc *bookingUsecase, session *models.Session, date string) {
		t.Helper()
		_, err := uc.UpdateDraft(context.Background(), session, &requests.UpdateBookingDraft{
			DoctorID: strPtr("doc-1"),
			Date:     strPtr(date),
		})
		require.NoError(t, err)
	}

	t.Run("Missing doctor or date resolves to loaded empty", func(t *testing.T) {
		fetcher := &stubSlotFetcher{}
		uc, session := newTestUsecase(fetcher, &stubBooker{}, finder, now)

		result, err := uc.ResolveSlots(context.Background(), session)
		require.NoError(t, err)
		assert.NotNil(t, result.Slots)
		assert.Empty(t, result.Slots)
		assert.Zero(t, fetcher.calls, "no upstream request without a full pair")
	})

	t.Run("Past date is rejected before fetching", func(t *testing.T) {
		fetcher := &stubSlotFetcher{}
		uc, session := newTestUsecase(fetcher, &stubBooker{}, finder, now)
		selectDoctorAndDate(t, uc, session, "2030-01-09")

		_, err := uc.ResolveSlots(context.Background(), session)
		assert.Error(t, err)
		assert.Zero(t, fetcher.calls)
	})

	t.Run("Future date returns the sorted upstream slots unfiltered", func(t *testing.T) {
		fetcher := &stubSlotFetcher{slots: []string{"15:00", "09:00", "10:00"}}
		uc, session := newTestUsecase(fetcher, &stubBooker{}, finder, now)
		selectDoctorAndDate(t, uc, session, "2030-01-11")

		result, err := uc.ResolveSlots(context.Background(), session)
		require.NoError(t, err)
		assert.Equal(t, []string{"09:00", "10:00", "15:00"}, result.Slots)
	})

	t.Run("Today drops elapsed slots", func(t *testing.T) {
		fetcher := &stubSlotFetcher{slots: []string{"09:00", "14:00", "15:00"}}
		uc, session := newTestUsecase(fetcher, &stubBooker{}, finder, now)
		selectDoctorAndDate(t, uc, session, "2030-01-10")

		result, err := uc.ResolveSlots(context.Background(), session)
		require.NoError(t, err)
		assert.Equal(t, []string{"15:00"}, result.Slots)
	})

	t.Run("Fetch failure ends loading and surfaces the error", func(t *testing.T) {
		fetcher := &stubSlotFetcher{err: errors.New("upstream down")}
		uc, session := newTestUsecase(fetcher, &stubBooker{}, finder, now)
		selectDoctorAndDate(t, uc, session, "2030-01-11")

		_, err := uc.ResolveSlots(context.Background(), session)
		assert.Error(t, err)
		assert.False(t, uc.GetDraft(context.Background(), session).SlotsLoading)
	})

	t.Run("Result for a superseded selection is marked stale", func(t *testing.T) {
		fetcher := &stubSlotFetcher{slots: []string{"09:00"}}
		uc, session := newTestUsecase(fetcher, &stubBooker{}, finder, now)
		selectDoctorAndDate(t, uc, session, "2030-01-11")

		// The date changes while the fetch is in flight.
		fetcher.hook = func() {
			draft := uc.draftFor(session)
			draft.SelectDate("2030-01-12")
		}

		result, err := uc.ResolveSlots(context.Background(), session)
		require.NoError(t, err)
		assert.True(t, result.Stale)
		assert.Empty(t, result.Slots)
		assert.Empty(t, uc.GetDraft(context.Background(), session).Slots, "stale result never lands in the draft")
	})
}

func TestSubmit(t *testing.T) {
	finder := &stubDoctorFinder{doctors: map[string]*models.Doctor{
		"doc-1": {ID: "doc-1", Specialization: "Cardiology"},
	}}
	now := time.Date(2030, 1, 10, 9, 0, 0, 0, time.Local)

	fillDraft := func(t *testing.T, uc *bookingUsecase, session *models.Session) {
		t.Helper()
		_, err := uc.UpdateDraft(context.Background(), session, &requests.UpdateBookingDraft{
			DoctorID: strPtr("doc-1"),
			Date:     strPtr("2030-01-11"),
		})
		require.NoError(t, err)
		_, err = uc.ResolveSlots(context.Background(), session)
		require.NoError(t, err)
		_, err = uc.UpdateDraft(context.Background(), session, &requests.UpdateBookingDraft{
			Time:     strPtr("10:00"),
			Symptoms: strPtr("chest pain"),
		})
		require.NoError(t, err)
	}

	t.Run("Successful submit resets the draft", func(t *testing.T) {
		booker := &stubBooker{appointment: &models.Appointment{ID: "appt-1", Status: "pending"}}
		uc, session := newTestUsecase(&stubSlotFetcher{slots: []string{"10:00"}}, booker, finder, now)
		fillDraft(t, uc, session)

		appointment, err := uc.Submit(context.Background(), session)
		require.NoError(t, err)
		assert.Equal(t, "appt-1", appointment.ID)
		assert.Equal(t, "Cardiology", booker.lastPayload.Department)
		assert.Empty(t, uc.GetDraft(context.Background(), session).DoctorID)
	})

	t.Run("Upstream rejection preserves the draft", func(t *testing.T) {
		booker := &stubBooker{err: errors.New("slot already booked")}
		uc, session := newTestUsecase(&stubSlotFetcher{slots: []string{"10:00"}}, booker, finder, now)
		fillDraft(t, uc, session)

		_, err := uc.Submit(context.Background(), session)
		assert.Error(t, err)

		draft := uc.GetDraft(context.Background(), session)
		assert.Equal(t, "doc-1", draft.DoctorID)
		assert.Equal(t, "10:00", draft.Time)
	})

	t.Run("Incomplete draft never reaches the upstream", func(t *testing.T) {
		booker := &stubBooker{}
		uc, session := newTestUsecase(&stubSlotFetcher{}, booker, finder, now)

		_, err := uc.Submit(context.Background(), session)
		assert.Error(t, err)
		assert.Nil(t, booker.lastPayload)
	})
}
