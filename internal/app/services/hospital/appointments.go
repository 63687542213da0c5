package hospital

import (
	"context"
	"fmt"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"net/url"
)

type AppointmentClient struct {
	api *Client
}

func NewAppointmentClient(api *Client) *AppointmentClient {
	return &AppointmentClient{api: api}
}

func appointmentFilterQuery(filters *requests.AppointmentFilters) string {
	if filters == nil {
		return ""
	}
	params := url.Values{}
	if filters.Status != "" {
		params.Set("status", filters.Status)
	}
	if filters.Date != "" {
		params.Set("date", filters.Date)
	}
	if filters.PatientName != "" {
		params.Set("patientName", filters.PatientName)
	}
	if len(params) == 0 {
		return ""
	}
	return "?" + params.Encode()
}

func (c *AppointmentClient) Create(ctx context.Context, token string, request *requests.CreateAppointment) (*models.Appointment, error) {
	req, err := c.api.newRequest(ctx, constvars.MethodPost, constvars.HospitalPathAppointments, token, request)
	if err != nil {
		return nil, err
	}

	result := new(models.Appointment)
	if err := c.api.do(req, result, constvars.ResourceAppointment); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *AppointmentClient) ListMine(ctx context.Context, token string, filters *requests.AppointmentFilters) ([]models.Appointment, error) {
	path := constvars.HospitalPathMyAppointments + appointmentFilterQuery(filters)
	return c.list(ctx, token, path)
}

func (c *AppointmentClient) ListForDoctor(ctx context.Context, token string, filters *requests.AppointmentFilters) ([]models.Appointment, error) {
	path := constvars.HospitalPathDoctorAppointments + appointmentFilterQuery(filters)
	return c.list(ctx, token, path)
}

func (c *AppointmentClient) ListAll(ctx context.Context, token string, filters *requests.AppointmentFilters) ([]models.Appointment, error) {
	path := constvars.HospitalPathAdminAppointments + appointmentFilterQuery(filters)
	return c.list(ctx, token, path)
}

func (c *AppointmentClient) list(ctx context.Context, token, path string) ([]models.Appointment, error) {
	req, err := c.api.newRequest(ctx, constvars.MethodGet, path, token, nil)
	if err != nil {
		return nil, err
	}

	var result struct {
		Appointments []models.Appointment `json:"appointments"`
	}
	if err := c.api.do(req, &result, constvars.ResourceAppointment); err != nil {
		return nil, err
	}
	return result.Appointments, nil
}

// Cancel is the patient-scoped cancellation; the upstream rejects it unless
// the appointment is still pending and owned by the caller.
func (c *AppointmentClient) Cancel(ctx context.Context, token, appointmentID string) (*models.Appointment, error) {
	req, err := c.api.newRequest(ctx, constvars.MethodPut, fmt.Sprintf("%s/%s", constvars.HospitalPathCancelAppointment, appointmentID), token, nil)
	if err != nil {
		return nil, err
	}

	result := new(models.Appointment)
	if err := c.api.do(req, result, constvars.ResourceAppointment); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *AppointmentClient) UpdateStatusAsDoctor(ctx context.Context, token, appointmentID, status string) (*models.Appointment, error) {
	path := fmt.Sprintf("%s/%s/status", constvars.HospitalPathDoctorAppointments, appointmentID)
	return c.updateStatus(ctx, token, path, status)
}

func (c *AppointmentClient) UpdateStatusAsAdmin(ctx context.Context, token, appointmentID, status string) (*models.Appointment, error) {
	path := fmt.Sprintf("%s/%s/status", constvars.HospitalPathAdminAppointments, appointmentID)
	return c.updateStatus(ctx, token, path, status)
}

func (c *AppointmentClient) updateStatus(ctx context.Context, token, path, status string) (*models.Appointment, error) {
	payload := requests.UpdateAppointmentStatus{Status: status}
	req, err := c.api.newRequest(ctx, constvars.MethodPatch, path, token, payload)
	if err != nil {
		return nil, err
	}

	result := new(models.Appointment)
	if err := c.api.do(req, result, constvars.ResourceAppointment); err != nil {
		return nil, err
	}
	return result, nil
}
