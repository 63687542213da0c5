package constvars

const (
	LoginSuccess            = "Logged in successfully"
	LogoutSuccess           = "Logged out successfully"
	RegisterSuccess         = "Account created successfully"
	ProfileGetSuccess       = "Profile fetched successfully"
	ProfileUpdatedSuccess   = "Profile updated successfully"
	DoctorsGetSuccess       = "Doctors fetched successfully"
	SlotsGetSuccess         = "Available slots fetched successfully"
	BookingDraftSuccess     = "Booking draft updated"
	AppointmentBookSuccess  = "Appointment booked successfully"
	AppointmentsGetSuccess  = "Appointments fetched successfully"
	AppointmentCancelled    = "Your appointment has been cancelled"
	StatusUpdatedSuccess    = "Appointment status updated"
	AvailabilityGetSuccess  = "Availability fetched successfully"
	AvailabilitySaveSuccess = "Availability updated successfully"
	PatientsGetSuccess      = "Patients fetched successfully"
	PatientDeletedSuccess   = "Patient deleted successfully"
	DoctorAddedSuccess      = "Doctor added successfully"
	DoctorUpdatedSuccess    = "Doctor updated successfully"
	DoctorDeletedSuccess    = "Doctor deleted successfully"
	ContactsGetSuccess      = "Contact messages fetched successfully"
	ContactDeletedSuccess   = "Contact message deleted successfully"
	ContactSentSuccess      = "Message sent successfully"
	StatsGetSuccess         = "Statistics fetched successfully"
	DashboardGetSuccess     = "Dashboard fetched successfully"
)
