package models

type Doctor struct {
	ID             string `json:"_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Gender         string `json:"gender"`
	Specialization string `json:"specialization"`
	Experience     int    `json:"experience"`
}

// AvailabilityDay is one weekday row of a doctor's weekly schedule. Empty
// start/end strings mean the doctor is unavailable that day.
type AvailabilityDay struct {
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}
