package auth

import (
	"context"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubAuthGateway struct {
	result     *responses.HospitalLogin
	err        error
	lastRole   string
	registered *requests.RegisterPatient
}

func (s *stubAuthGateway) Login(ctx context.Context, role string, request *requests.Login) (*responses.HospitalLogin, error) {
	s.lastRole = role
	return s.result, s.err
}

func (s *stubAuthGateway) RegisterPatient(ctx context.Context, request *requests.RegisterPatient) error {
	s.registered = request
	return nil
}

type memorySessionService struct {
	sessions map[string]*models.Session
}

func (m *memorySessionService) CreateSession(ctx context.Context, session *models.Session) error {
	m.sessions[session.SessionID] = session
	return nil
}

func (m *memorySessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	session, ok := m.sessions[sessionID]
	if !ok {
		return nil, exceptions.ErrSessionNotFound(nil)
	}
	return session, nil
}

func (m *memorySessionService) DestroySession(ctx context.Context, sessionID string) error {
	delete(m.sessions, sessionID)
	return nil
}

type stubDraftDiscarder struct {
	discarded []string
}

func (s *stubDraftDiscarder) DiscardDraft(session *models.Session) {
	s.discarded = append(s.discarded, session.SessionID)
}

const testSecret = "test-secret"

func newTestAuthUsecase(gateway *stubAuthGateway) (AuthUsecase, *memorySessionService, *stubDraftDiscarder) {
	sessions := &memorySessionService{sessions: make(map[string]*models.Session)}
	drafts := &stubDraftDiscarder{}
	cfg := &config.InternalConfig{JWT: config.JWT{Secret: testSecret, ExpTimeInHour: 1}}
	return NewAuthUsecase(gateway, sessions, drafts, cfg, zap.NewNop()), sessions, drafts
}

func TestLogin(t *testing.T) {
	gateway := &stubAuthGateway{result: &responses.HospitalLogin{
		Token: "upstream-token",
		ID:    "user-1",
		Name:  "Meera Nair",
	}}

	t.Run("Creates a session holding the upstream token", func(t *testing.T) {
		uc, sessions, _ := newTestAuthUsecase(gateway)

		result, err := uc.Login(context.Background(), constvars.RolePatient, &requests.Login{
			Email:    "meera@example.com",
			Password: "secret123",
		})
		require.NoError(t, err)

		assert.Equal(t, constvars.RolePatient, result.Role)
		assert.Equal(t, "Meera Nair", result.Fullname)
		assert.NotEqual(t, "upstream-token", result.Token, "upstream token must never reach the caller")

		sessionID, err := utils.ParseJWT(result.Token, testSecret)
		require.NoError(t, err)

		stored, err := sessions.GetSession(context.Background(), sessionID)
		require.NoError(t, err)
		assert.Equal(t, "upstream-token", stored.HospitalToken)
		assert.Equal(t, "user-1", stored.UserID)
	})

	t.Run("Role is forwarded to the gateway", func(t *testing.T) {
		uc, _, _ := newTestAuthUsecase(gateway)

		_, err := uc.Login(context.Background(), constvars.RoleAdmin, &requests.Login{
			Email:    "admin@example.com",
			Password: "secret123",
		})
		require.NoError(t, err)
		assert.Equal(t, constvars.RoleAdmin, gateway.lastRole)
	})

	t.Run("Gateway failure creates no session", func(t *testing.T) {
		failing := &stubAuthGateway{err: exceptions.ErrInvalidCredentials(nil)}
		uc, sessions, _ := newTestAuthUsecase(failing)

		_, err := uc.Login(context.Background(), constvars.RolePatient, &requests.Login{
			Email:    "meera@example.com",
			Password: "wrong",
		})
		assert.Error(t, err)
		assert.Empty(t, sessions.sessions)
	})
}

func TestLogout(t *testing.T) {
	gateway := &stubAuthGateway{result: &responses.HospitalLogin{Token: "upstream-token", ID: "user-1", Name: "Meera Nair"}}
	uc, sessions, drafts := newTestAuthUsecase(gateway)

	result, err := uc.Login(context.Background(), constvars.RolePatient, &requests.Login{
		Email:    "meera@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	sessionID, err := utils.ParseJWT(result.Token, testSecret)
	require.NoError(t, err)
	session, err := sessions.GetSession(context.Background(), sessionID)
	require.NoError(t, err)

	require.NoError(t, uc.Logout(context.Background(), session))

	_, err = sessions.GetSession(context.Background(), sessionID)
	assert.Error(t, err, "session must be gone after logout")
	assert.Equal(t, []string{sessionID}, drafts.discarded, "booking draft is dropped with the session")
}

func TestRegisterPatient(t *testing.T) {
	gateway := &stubAuthGateway{}
	uc, _, _ := newTestAuthUsecase(gateway)

	request := &requests.RegisterPatient{
		Name:     "Meera Nair",
		Email:    "meera@example.com",
		Password: "secret123",
		Phone:    "9876543210",
		Gender:   "female",
		Dob:      "1995-04-02",
	}
	require.NoError(t, uc.RegisterPatient(context.Background(), request))
	assert.Equal(t, request, gateway.registered)
}
