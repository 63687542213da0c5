package hospital

import (
	"context"
	"fmt"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type ContactClient struct {
	api *Client
}

func NewContactClient(api *Client) *ContactClient {
	return &ContactClient{api: api}
}

func contactPath(audience string) string {
	if audience == constvars.RolePatient {
		return constvars.HospitalPathAdminPatientContacts
	}
	return constvars.HospitalPathAdminPublicContacts
}

func (c *ContactClient) ListContacts(ctx context.Context, token, audience string) ([]models.ContactMessage, error) {
	req, err := c.api.newRequest(ctx, constvars.MethodGet, contactPath(audience), token, nil)
	if err != nil {
		return nil, err
	}

	var result []models.ContactMessage
	if err := c.api.do(req, &result, constvars.ResourceContact); err != nil {
		return nil, err
	}
	return result, nil
}

// CreateContact submits a visitor message. The upstream endpoint is open to
// the public, so no token is attached.
func (c *ContactClient) CreateContact(ctx context.Context, request *requests.CreateContact) (*models.ContactMessage, error) {
	req, err := c.api.newRequest(ctx, constvars.MethodPost, constvars.HospitalPathPublicContact, "", request)
	if err != nil {
		return nil, err
	}

	result := new(models.ContactMessage)
	if err := c.api.do(req, result, constvars.ResourceContact); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *ContactClient) DeleteContact(ctx context.Context, token, audience, contactID string) error {
	req, err := c.api.newRequest(ctx, constvars.MethodDelete, fmt.Sprintf("%s/%s", contactPath(audience), contactID), token, nil)
	if err != nil {
		return err
	}
	return c.api.do(req, nil, constvars.ResourceContact)
}

type StatsClient struct {
	api *Client
}

func NewStatsClient(api *Client) *StatsClient {
	return &StatsClient{api: api}
}

func (c *StatsClient) GetStats(ctx context.Context, token string) (*responses.AdminStats, error) {
	req, err := c.api.newRequest(ctx, constvars.MethodGet, constvars.HospitalPathAdminStats, token, nil)
	if err != nil {
		return nil, err
	}

	result := new(responses.AdminStats)
	if err := c.api.do(req, result, constvars.ResourceStats); err != nil {
		return nil, err
	}
	return result, nil
}
