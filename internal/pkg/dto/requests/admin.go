package requests

type CreateDoctor struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	Phone          string `json:"phone" validate:"required"`
	Gender         string `json:"gender" validate:"required,oneof=male female other"`
	Specialization string `json:"specialization" validate:"required"`
	Experience     int    `json:"experience" validate:"gte=0"`
}

type UpdateDoctor struct {
	Name           string `json:"name,omitempty"`
	Email          string `json:"email,omitempty" validate:"omitempty,email"`
	Phone          string `json:"phone,omitempty"`
	Specialization string `json:"specialization,omitempty"`
	Experience     *int   `json:"experience,omitempty" validate:"omitempty,gte=0"`
}

type UpdateDoctorProfile struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
}
