package booking

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

type bookingUsecase struct {
	slots   SlotFetcher
	booker  AppointmentBooker
	doctors DoctorFinder
	logger  *zap.Logger
	now     func() time.Time

	mu     sync.Mutex
	drafts map[string]*Draft
}

func NewBookingUsecase(slots SlotFetcher, booker AppointmentBooker, doctors DoctorFinder, logger *zap.Logger) BookingUsecase {
	return &bookingUsecase{
		slots:   slots,
		booker:  booker,
		doctors: doctors,
		logger:  logger,
		now:     time.Now,
		drafts:  make(map[string]*Draft),
	}
}

// draftFor returns the per-session draft, creating it on first use. Each
// session owns exactly one draft; there are no concurrent writers besides the
// session's own requests.
func (uc *bookingUsecase) draftFor(session *models.Session) *Draft {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	draft, ok := uc.drafts[session.SessionID]
	if !ok {
		draft = &Draft{}
		uc.drafts[session.SessionID] = draft
	}
	return draft
}

func (uc *bookingUsecase) GetDraft(ctx context.Context, session *models.Session) *responses.BookingDraft {
	return uc.draftFor(session).Snapshot()
}

func (uc *bookingUsecase) DiscardDraft(session *models.Session) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.drafts, session.SessionID)
}

func (uc *bookingUsecase) UpdateDraft(ctx context.Context, session *models.Session, request *requests.UpdateBookingDraft) (*responses.BookingDraft, error) {
	draft := uc.draftFor(session)

	if request.DoctorID != nil {
		if *request.DoctorID == "" {
			draft.ClearDoctor()
		} else {
			doctor, err := uc.doctors.FindDoctor(ctx, session.HospitalToken, *request.DoctorID)
			if err != nil {
				return nil, err
			}
			if doctor == nil {
				return nil, exceptions.ErrUnknownDoctor()
			}
			draft.SelectDoctor(doctor)
		}
	}

	if request.Date != nil {
		draft.SelectDate(*request.Date)
	}

	if request.Time != nil {
		if err := draft.SelectTime(*request.Time); err != nil {
			return nil, err
		}
	}

	if request.Symptoms != nil {
		draft.SetSymptoms(*request.Symptoms)
	}

	return draft.Snapshot(), nil
}

// ResolveSlots runs the fetch-then-filter sequence for the draft's current
// (doctor, date) pair. The upstream list is already availability minus
// bookings; the only local computation is dropping today's elapsed times.
func (uc *bookingUsecase) ResolveSlots(ctx context.Context, session *models.Session) (*responses.AvailableSlots, error) {
	draft := uc.draftFor(session)
	snapshot := draft.Snapshot()

	if snapshot.DoctorID == "" || snapshot.Date == "" {
		return &responses.AvailableSlots{
			DoctorID: snapshot.DoctorID,
			Date:     snapshot.Date,
			Slots:    []string{},
		}, nil
	}

	day, err := utils.ParseCalendarDate(snapshot.Date)
	if err != nil {
		return nil, exceptions.ErrInvalidDate(err)
	}
	now := uc.now()
	if utils.IsBeforeToday(day, now) {
		return nil, exceptions.ErrDateInPast()
	}

	doctorID, date, generation := draft.BeginSlotFetch()

	slots, err := uc.slots.AvailableSlots(ctx, session.HospitalToken, doctorID, date)
	if err != nil {
		draft.FailSlots(generation)
		uc.logger.Warn("slot fetch failed",
			zap.String("doctor_id", doctorID),
			zap.String("date", date),
			zap.Error(err),
		)
		return nil, err
	}

	if utils.IsSameCalendarDay(day, now) {
		slots = FilterElapsedSlots(slots, now)
	}
	SortSlots(slots)

	if !draft.ApplySlots(generation, slots) {
		// The draft moved on to a different doctor or date while this fetch
		// was in flight; the result is discarded, never shown.
		return &responses.AvailableSlots{DoctorID: doctorID, Date: date, Slots: []string{}, Stale: true}, nil
	}

	return &responses.AvailableSlots{DoctorID: doctorID, Date: date, Slots: slots}, nil
}

func (uc *bookingUsecase) Submit(ctx context.Context, session *models.Session) (*models.Appointment, error) {
	draft := uc.draftFor(session)

	payload, err := draft.BuildPayload()
	if err != nil {
		return nil, err
	}

	day, err := utils.ParseCalendarDate(payload.Date)
	if err != nil {
		return nil, exceptions.ErrInvalidDate(err)
	}
	if utils.IsBeforeToday(day, uc.now()) {
		return nil, exceptions.ErrDateInPast()
	}

	appointment, err := uc.booker.Create(ctx, session.HospitalToken, payload)
	if err != nil {
		// Draft state is preserved so the caller can correct and retry; a
		// slot taken between fetch and submit surfaces here verbatim.
		return nil, err
	}

	draft.Reset()
	return appointment, nil
}
