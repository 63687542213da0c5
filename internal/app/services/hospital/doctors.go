package hospital

import (
	"context"
	"fmt"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type DoctorClient struct {
	api *Client
}

func NewDoctorClient(api *Client) *DoctorClient {
	return &DoctorClient{api: api}
}

// ListDoctors returns the bookable doctor directory.
func (c *DoctorClient) ListDoctors(ctx context.Context, token string) ([]models.Doctor, error) {
	req, err := c.api.newRequest(ctx, constvars.MethodGet, constvars.HospitalPathDoctors, token, nil)
	if err != nil {
		return nil, err
	}

	var result []models.Doctor
	if err := c.api.do(req, &result, constvars.ResourceDoctor); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *DoctorClient) GetProfile(ctx context.Context, token string) (*models.Doctor, error) {
	req, err := c.api.newRequest(ctx, constvars.MethodGet, constvars.HospitalPathDoctorProfile, token, nil)
	if err != nil {
		return nil, err
	}

	result := new(models.Doctor)
	if err := c.api.do(req, result, constvars.ResourceDoctor); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *DoctorClient) UpdateProfile(ctx context.Context, token string, request *requests.UpdateDoctorProfile) (*models.Doctor, error) {
	req, err := c.api.newRequest(ctx, constvars.MethodPut, constvars.HospitalPathDoctorProfile, token, request)
	if err != nil {
		return nil, err
	}

	result := new(models.Doctor)
	if err := c.api.do(req, result, constvars.ResourceDoctor); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *DoctorClient) GetDashboard(ctx context.Context, token string) (*responses.DoctorDashboard, error) {
	req, err := c.api.newRequest(ctx, constvars.MethodGet, constvars.HospitalPathDoctorDashboard, token, nil)
	if err != nil {
		return nil, err
	}

	result := new(responses.DoctorDashboard)
	if err := c.api.do(req, result, constvars.ResourceDoctor); err != nil {
		return nil, err
	}
	return result, nil
}

// Admin-scoped operations below. The upstream enforces the role; the gateway
// only routes them behind the admin guard.

func (c *DoctorClient) ListAllDoctors(ctx context.Context, token string) ([]models.Doctor, error) {
	req, err := c.api.newRequest(ctx, constvars.MethodGet, constvars.HospitalPathAdminDoctors, token, nil)
	if err != nil {
		return nil, err
	}

	var result []models.Doctor
	if err := c.api.do(req, &result, constvars.ResourceDoctor); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *DoctorClient) AddDoctor(ctx context.Context, token string, request *requests.CreateDoctor) (*models.Doctor, error) {
	req, err := c.api.newRequest(ctx, constvars.MethodPost, constvars.HospitalPathAdminDoctorRegister, token, request)
	if err != nil {
		return nil, err
	}

	result := new(models.Doctor)
	if err := c.api.do(req, result, constvars.ResourceDoctor); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *DoctorClient) UpdateDoctor(ctx context.Context, token, doctorID string, request *requests.UpdateDoctor) (*models.Doctor, error) {
	req, err := c.api.newRequest(ctx, constvars.MethodPut, fmt.Sprintf("%s/%s", constvars.HospitalPathAdminDoctors, doctorID), token, request)
	if err != nil {
		return nil, err
	}

	result := new(models.Doctor)
	if err := c.api.do(req, result, constvars.ResourceDoctor); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *DoctorClient) DeleteDoctor(ctx context.Context, token, doctorID string) error {
	req, err := c.api.newRequest(ctx, constvars.MethodDelete, fmt.Sprintf("%s/%s", constvars.HospitalPathAdminDoctors, doctorID), token, nil)
	if err != nil {
		return err
	}
	return c.api.do(req, nil, constvars.ResourceDoctor)
}
