package constvars

const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"

	// Wall-clock formats shared with the hospital backend. The whole system
	// assumes a single clinic timezone, so no offset is ever attached.
	ClockFormat = "15:04"
	DateFormat  = "2006-01-02"

	SortKeyDateTime    = "dateTime"
	SortKeyPatientName = "patientName"

	SortAscending  = "asc"
	SortDescending = "desc"
)

// DaysOfWeek is the fixed order the availability editor always operates on.
var DaysOfWeek = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}
