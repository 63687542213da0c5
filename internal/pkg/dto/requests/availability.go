package requests

import "medibook-service/internal/app/models"

// SaveAvailability replaces the whole week at once; partial updates are not
// supported by the upstream contract.
type SaveAvailability struct {
	Availability []models.AvailabilityDay `json:"availability" validate:"required,len=7"`
}
