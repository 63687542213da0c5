package constvars

const (
	ErrClientSomethingWrongWithApplication = "Something went wrong, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process request, please check your input"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "Your session has expired, please log in again"
	ErrClientInvalidCredentials            = "Invalid email or password"
	ErrClientHospitalUnreachable           = "The hospital service is currently unavailable, please try again later"
	ErrClientSlotNoLongerAvailable         = "The selected time slot is no longer available"
	ErrClientAppointmentNotFound           = "Appointment not found"
	ErrClientCancelOnlyPending             = "Only pending appointments can be cancelled"
	ErrClientCancelNotConfirmed            = "Cancellation requires confirmation"
	ErrClientDateInPast                    = "Date cannot be in the past"
	ErrClientNoDoctorSelected              = "Please select a doctor first"
	ErrClientTimeNotInSlots                = "The selected time is not an available slot"
	ErrClientServerLongRespond             = "The server took too long to respond, please retry"

	ErrDevCreateHTTPRequest       = "failed to create http request"
	ErrDevSendHTTPRequest         = "failed to send http request"
	ErrDevDecodeResponse          = "failed to decode %s response"
	ErrDevHospitalRejected        = "hospital api rejected %s request"
	ErrDevCannotParseJSON         = "failed to parse json request body"
	ErrDevCannotMarshalJSON       = "failed to marshal json"
	ErrDevValidationFailed        = "request validation failed"
	ErrDevInvalidInput            = "invalid input"
	ErrDevAuthTokenMissing        = "authorization token is missing"
	ErrDevAuthTokenInvalid        = "authorization token is invalid"
	ErrDevAuthSigningMethod       = "unexpected jwt signing method"
	ErrDevAuthGenerateToken       = "failed to generate jwt"
	ErrDevSessionNotFound         = "session not found in store"
	ErrDevSessionRoleMismatch     = "session role is not allowed for this endpoint"
	ErrDevRedisSet                = "failed to set redis key"
	ErrDevRedisGet                = "failed to get redis key"
	ErrDevRedisDelete             = "failed to delete redis key"
	ErrDevInvalidDateFormat       = "date is not a valid calendar date"
	ErrDevInvalidClockFormat      = "time is not a valid HH:MM clock value"
	ErrDevDateInPast              = "requested date is before today"
	ErrDevStatusNotAllowed        = "requested status transition is not allowed for this role"
	ErrDevServerDeadlineExceeded  = "handler deadline exceeded"
	ErrDevAvailabilityWindow      = "availability window start is not before end"
	ErrDevBookingDraftIncomplete  = "booking draft is missing required fields"
	ErrDevUnknownDoctor           = "doctor id does not reference a known doctor"
	ErrDevDirectoryCacheCorrupted = "cached doctor directory could not be decoded"
)
