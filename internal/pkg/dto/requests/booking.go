package requests

// UpdateBookingDraft mutates one or more fields of the caller's booking draft.
// Only the provided fields are applied; doctor and date changes clear the
// previously chosen time and invalidate any in-flight slot fetch.
type UpdateBookingDraft struct {
	DoctorID *string `json:"doctorId,omitempty"`
	Date     *string `json:"date,omitempty" validate:"omitempty,iso_date"`
	Time     *string `json:"time,omitempty" validate:"omitempty,clock_time"`
	Symptoms *string `json:"symptoms,omitempty"`
}

// CreateAppointment is the payload forwarded to the hospital backend on submit.
type CreateAppointment struct {
	DoctorID   string `json:"doctorId" validate:"required"`
	Date       string `json:"date" validate:"required,iso_date"`
	Time       string `json:"time" validate:"required,clock_time"`
	Symptoms   string `json:"symptoms" validate:"required"`
	Department string `json:"department"`
}
