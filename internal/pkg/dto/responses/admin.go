package responses

type AdminStats struct {
	TotalDoctors      int `json:"totalDoctors"`
	TotalPatients     int `json:"totalPatients"`
	TotalAppointments int `json:"totalAppointments"`
	PendingCount      int `json:"pendingCount"`
	CompletedCount    int `json:"completedCount"`
	CancelledCount    int `json:"cancelledCount"`
}

type DoctorDashboard struct {
	TodayAppointments    int `json:"todayAppointments"`
	UpcomingAppointments int `json:"upcomingAppointments"`
	TotalPatients        int `json:"totalPatients"`
}
