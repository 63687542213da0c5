package hospital

import (
	"context"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
)

type AuthClient struct {
	api *Client
}

func NewAuthClient(api *Client) *AuthClient {
	return &AuthClient{api: api}
}

var loginPaths = map[string]string{
	constvars.RolePatient: constvars.HospitalPathPatientLogin,
	constvars.RoleDoctor:  constvars.HospitalPathDoctorLogin,
	constvars.RoleAdmin:   constvars.HospitalPathAdminLogin,
}

// Login exchanges role credentials for the upstream bearer token. The upstream
// rejects bad credentials with a 4xx; that is normalized to a uniform
// invalid-credentials error so the response never leaks which field was wrong.
func (c *AuthClient) Login(ctx context.Context, role string, request *requests.Login) (*responses.HospitalLogin, error) {
	path, ok := loginPaths[role]
	if !ok {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	req, err := c.api.newRequest(ctx, constvars.MethodPost, path, "", request)
	if err != nil {
		return nil, err
	}

	result := new(responses.HospitalLogin)
	if err := c.api.do(req, result, constvars.ResourceAuth); err != nil {
		if exceptions.StatusCodeOf(err) < constvars.StatusInternalServerError {
			return nil, exceptions.ErrInvalidCredentials(err)
		}
		return nil, err
	}
	return result, nil
}

func (c *AuthClient) RegisterPatient(ctx context.Context, request *requests.RegisterPatient) error {
	req, err := c.api.newRequest(ctx, constvars.MethodPost, constvars.HospitalPathPatientRegister, "", request)
	if err != nil {
		return err
	}
	return c.api.do(req, nil, constvars.ResourceAuth)
}
