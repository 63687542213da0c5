package constvars

// Upstream hospital API resource paths, relative to HOSPITAL_BASE_URL.
const (
	HospitalPathPatientLogin    = "/patients/login"
	HospitalPathPatientRegister = "/patients/register"
	HospitalPathDoctorLogin     = "/doctor/login"
	HospitalPathAdminLogin      = "/admin/login"

	HospitalPathDoctors            = "/patients/doctors"
	HospitalPathDoctorProfile      = "/doctor/profile"
	HospitalPathDoctorDashboard    = "/doctor/dashboard"
	HospitalPathDoctorAvailability = "/doctor/availability"
	HospitalPathDoctorAppointments = "/doctor/appointments"
	HospitalPathDoctorPatients     = "/doctor/patients"

	HospitalPathPatientProfile    = "/patients/profile"
	HospitalPathAppointments      = "/appointments"
	HospitalPathMyAppointments    = "/appointments/my-appointments"
	HospitalPathRecentAppointment = "/appointments/recent"
	HospitalPathAvailableSlots    = "/appointments/slots"
	HospitalPathCancelAppointment = "/appointments/cancel"

	HospitalPathAdminStats           = "/admin/stats"
	HospitalPathAdminDoctors         = "/admin/doctors"
	HospitalPathAdminDoctorRegister  = "/admin/doctor/register"
	HospitalPathAdminPatients        = "/admin/patients"
	HospitalPathAdminAppointments    = "/admin/appointments"
	HospitalPathAdminPublicContacts  = "/admin/contacts/public"
	HospitalPathAdminPatientContacts = "/admin/contacts/patient"
	HospitalPathPublicContact        = "/public/contact"

	ContactAudiencePublic = "public"

	ResourceDoctor       = "Doctor"
	ResourcePatient      = "Patient"
	ResourceAppointment  = "Appointment"
	ResourceSlot         = "Slot"
	ResourceAvailability = "Availability"
	ResourceContact      = "Contact"
	ResourceStats        = "Stats"
	ResourceAuth         = "Auth"
)
