package responses

type Login struct {
	Token    string `json:"token"`
	Role     string `json:"role"`
	Fullname string `json:"fullname"`
}

// HospitalLogin is the shape returned by the upstream role login endpoints.
type HospitalLogin struct {
	Token string `json:"token"`
	ID    string `json:"_id"`
	Name  string `json:"name"`
}
