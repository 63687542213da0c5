package hospital

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
)

type AvailabilityClient struct {
	api *Client
}

func NewAvailabilityClient(api *Client) *AvailabilityClient {
	return &AvailabilityClient{api: api}
}

// GetWeek may return fewer than seven days; the availability usecase merges
// the gaps with empty defaults.
func (c *AvailabilityClient) GetWeek(ctx context.Context, token string) ([]models.AvailabilityDay, error) {
	req, err := c.api.newRequest(ctx, constvars.MethodGet, constvars.HospitalPathDoctorAvailability, token, nil)
	if err != nil {
		return nil, err
	}

	var result struct {
		Availability []models.AvailabilityDay `json:"availability"`
	}
	if err := c.api.do(req, &result, constvars.ResourceAvailability); err != nil {
		return nil, err
	}
	return result.Availability, nil
}

// ReplaceWeek overwrites the whole seven-day schedule; there is no partial
// update in the upstream contract.
func (c *AvailabilityClient) ReplaceWeek(ctx context.Context, token string, week []models.AvailabilityDay) error {
	payload := requests.SaveAvailability{Availability: week}
	req, err := c.api.newRequest(ctx, constvars.MethodPut, constvars.HospitalPathDoctorAvailability, token, payload)
	if err != nil {
		return err
	}
	return c.api.do(req, nil, constvars.ResourceAvailability)
}
