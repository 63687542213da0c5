package models

// PersonRef is the denormalized display copy of a patient or doctor carried on
// an appointment record. The hospital backend fills these at booking time.
type PersonRef struct {
	ID             string `json:"_id"`
	Name           string `json:"name"`
	Phone          string `json:"phone,omitempty"`
	Specialization string `json:"specialization,omitempty"`
}

type Appointment struct {
	ID      string    `json:"_id"`
	Patient PersonRef `json:"patient"`
	Doctor  PersonRef `json:"doctor"`
	// Date is an ISO calendar date, Time a 24-hour "HH:MM" string. Both are
	// local to the clinic; no timezone conversion happens anywhere.
	Date       string `json:"date"`
	Time       string `json:"time"`
	Department string `json:"department"`
	Symptoms   string `json:"symptoms"`
	Status     string `json:"status"`
	CreatedAt  string `json:"createdAt,omitempty"`
}
