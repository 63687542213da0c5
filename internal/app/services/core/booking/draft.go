package booking

import (
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"sync"
)

// Draft is the server-side booking form state machine for one session.
//
// The generation counter is what makes slot fetches last-request-wins: every
// doctor or date change and every new fetch bumps it, and a fetch result is
// only applied while its captured generation is still current. A response to
// an outdated (doctor, date) pair can therefore never overwrite the state of
// a newer selection, no matter how the responses are ordered on the wire.
type Draft struct {
	mu sync.Mutex

	doctorID   string
	date       string
	timeSlot   string
	symptoms   string
	department string

	slots        []string
	slotsLoading bool
	generation   uint64
}

// SelectDoctor records the doctor and copies their specialization into the
// department field at selection time. The department is deliberately not
// re-derived at submission, so a later change to the doctor record cannot
// alter what this draft will send.
func (d *Draft) SelectDoctor(doctor *models.Doctor) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.doctorID = doctor.ID
	d.department = doctor.Specialization
	d.invalidateSlotsLocked()
}

// ClearDoctor empties the doctor selection and its derived department.
func (d *Draft) ClearDoctor() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.doctorID = ""
	d.department = ""
	d.invalidateSlotsLocked()
}

func (d *Draft) SelectDate(date string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.date = date
	d.invalidateSlotsLocked()
}

// invalidateSlotsLocked clears the chosen time and the resolved slot list and
// bumps the generation so any in-flight fetch result arrives stale.
func (d *Draft) invalidateSlotsLocked() {
	d.timeSlot = ""
	d.slots = nil
	d.slotsLoading = false
	d.generation++
}

// SelectTime accepts only values present in the currently resolved slot list.
func (d *Draft) SelectTime(timeSlot string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if timeSlot == "" {
		d.timeSlot = ""
		return nil
	}
	for _, slot := range d.slots {
		if slot == timeSlot {
			d.timeSlot = timeSlot
			return nil
		}
	}
	return exceptions.ErrTimeNotInSlots()
}

func (d *Draft) SetSymptoms(symptoms string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.symptoms = symptoms
}

// BeginSlotFetch captures the (doctor, date) pair and a fresh generation for
// one fetch, and flips the draft into its loading state.
func (d *Draft) BeginSlotFetch() (doctorID, date string, generation uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.generation++
	d.slots = nil
	d.timeSlot = ""
	d.slotsLoading = true
	return d.doctorID, d.date, d.generation
}

// ApplySlots installs a fetch result. It reports false, leaving the draft
// untouched, when the generation is no longer current.
func (d *Draft) ApplySlots(generation uint64, slots []string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if generation != d.generation {
		return false
	}
	d.slots = slots
	d.slotsLoading = false
	return true
}

// FailSlots ends the loading state after a failed fetch. The slot list stays
// empty and the form remains usable; changing doctor or date retries.
func (d *Draft) FailSlots(generation uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if generation != d.generation {
		return false
	}
	d.slotsLoading = false
	return true
}

func (d *Draft) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.doctorID = ""
	d.date = ""
	d.symptoms = ""
	d.department = ""
	d.invalidateSlotsLocked()
}

func (d *Draft) Snapshot() *responses.BookingDraft {
	d.mu.Lock()
	defer d.mu.Unlock()
	slots := make([]string, len(d.slots))
	copy(slots, d.slots)
	return &responses.BookingDraft{
		DoctorID:     d.doctorID,
		Date:         d.date,
		Time:         d.timeSlot,
		Symptoms:     d.symptoms,
		Department:   d.department,
		Slots:        slots,
		SlotsLoading: d.slotsLoading,
	}
}

// BuildPayload validates the draft against the submission rules and returns
// the exact payload the hospital backend expects.
func (d *Draft) BuildPayload() (*requests.CreateAppointment, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	switch {
	case d.doctorID == "":
		return nil, exceptions.ErrBookingDraftIncomplete(constvars.ErrClientNoDoctorSelected)
	case d.date == "":
		return nil, exceptions.ErrBookingDraftIncomplete("Please choose a date")
	case d.timeSlot == "":
		return nil, exceptions.ErrBookingDraftIncomplete("Please choose a time slot")
	case d.symptoms == "":
		return nil, exceptions.ErrBookingDraftIncomplete("Please describe your symptoms")
	}
	return &requests.CreateAppointment{
		DoctorID:   d.doctorID,
		Date:       d.date,
		Time:       d.timeSlot,
		Symptoms:   d.symptoms,
		Department: d.department,
	}, nil
}
