package hospital

import (
	"context"
	"fmt"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
)

type PatientClient struct {
	api *Client
}

func NewPatientClient(api *Client) *PatientClient {
	return &PatientClient{api: api}
}

func (c *PatientClient) GetProfile(ctx context.Context, token string) (*models.Patient, error) {
	req, err := c.api.newRequest(ctx, constvars.MethodGet, constvars.HospitalPathPatientProfile, token, nil)
	if err != nil {
		return nil, err
	}

	result := new(models.Patient)
	if err := c.api.do(req, result, constvars.ResourcePatient); err != nil {
		return nil, err
	}
	return result, nil
}

// UpcomingAppointment returns nil when the upstream reports 404: having no
// upcoming appointment is an empty state, not an error.
func (c *PatientClient) UpcomingAppointment(ctx context.Context, token string) (*models.Appointment, error) {
	req, err := c.api.newRequest(ctx, constvars.MethodGet, constvars.HospitalPathRecentAppointment, token, nil)
	if err != nil {
		return nil, err
	}

	result := new(models.Appointment)
	if err := c.api.do(req, result, constvars.ResourceAppointment); err != nil {
		if exceptions.StatusCodeOf(err) == constvars.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	return result, nil
}

// ListDoctorPatients returns the patients who booked with the calling doctor.
func (c *PatientClient) ListDoctorPatients(ctx context.Context, token string) ([]models.Patient, error) {
	req, err := c.api.newRequest(ctx, constvars.MethodGet, constvars.HospitalPathDoctorPatients, token, nil)
	if err != nil {
		return nil, err
	}

	var result []models.Patient
	if err := c.api.do(req, &result, constvars.ResourcePatient); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *PatientClient) ListAllPatients(ctx context.Context, token string) ([]models.Patient, error) {
	req, err := c.api.newRequest(ctx, constvars.MethodGet, constvars.HospitalPathAdminPatients, token, nil)
	if err != nil {
		return nil, err
	}

	var result []models.Patient
	if err := c.api.do(req, &result, constvars.ResourcePatient); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *PatientClient) DeletePatient(ctx context.Context, token, patientID string) error {
	req, err := c.api.newRequest(ctx, constvars.MethodDelete, fmt.Sprintf("%s/%s", constvars.HospitalPathAdminPatients, patientID), token, nil)
	if err != nil {
		return err
	}
	return c.api.do(req, nil, constvars.ResourcePatient)
}
