package models

// Session is the explicit session record created at login and destroyed at
// logout. It is stored as JSON in Redis keyed by SessionID and referenced by
// the JWT handed to the caller. HospitalToken is the upstream bearer credential;
// hospital clients receive it per call instead of looking it up ambiently.
type Session struct {
	SessionID     string `json:"session_id"`
	Role          string `json:"role"`
	UserID        string `json:"user_id"`
	Fullname      string `json:"fullname"`
	HospitalToken string `json:"hospital_token"`
	CreatedAt     string `json:"created_at"`
}
