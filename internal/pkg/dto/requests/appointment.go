package requests

// AppointmentFilters are forwarded to the hospital backend as query params.
// ListOptions narrow and order the fetched list locally.
type AppointmentFilters struct {
	Status      string `json:"status" validate:"omitempty,appointment_status"`
	Date        string `json:"date" validate:"omitempty,iso_date"`
	PatientName string `json:"patientName"`
}

type ListOptions struct {
	Search  string `json:"search"`
	SortKey string `json:"sortKey" validate:"omitempty,oneof=dateTime patientName"`
	SortDir string `json:"sortDir" validate:"omitempty,oneof=asc desc"`
}

type UpdateAppointmentStatus struct {
	Status string `json:"status" validate:"required,appointment_status"`
}

// CancelAppointment carries the explicit confirmation step required before a
// patient-initiated cancellation is sent upstream.
type CancelAppointment struct {
	Confirm bool `json:"confirm"`
}
