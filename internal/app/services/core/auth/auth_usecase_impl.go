package auth

import (
	"context"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type authUsecase struct {
	gateway        AuthGateway
	sessionService contracts.SessionService
	drafts         DraftDiscarder
	config         *config.InternalConfig
	logger         *zap.Logger
}

func NewAuthUsecase(gateway AuthGateway, sessionService contracts.SessionService, drafts DraftDiscarder, internalConfig *config.InternalConfig, logger *zap.Logger) AuthUsecase {
	return &authUsecase{
		gateway:        gateway,
		sessionService: sessionService,
		drafts:         drafts,
		config:         internalConfig,
		logger:         logger,
	}
}

// Login exchanges credentials with the upstream for a bearer token, stores it
// inside a fresh session record and hands back a JWT that only carries the
// session id. The upstream token never reaches the caller.
func (uc *authUsecase) Login(ctx context.Context, role string, request *requests.Login) (*responses.Login, error) {
	upstream, err := uc.gateway.Login(ctx, role, request)
	if err != nil {
		return nil, err
	}

	session := &models.Session{
		SessionID:     utils.GenerateSessionID(),
		Role:          role,
		UserID:        upstream.ID,
		Fullname:      upstream.Name,
		HospitalToken: upstream.Token,
		CreatedAt:     time.Now().Format(time.RFC3339),
	}
	if err := uc.sessionService.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	expTime := time.Duration(uc.config.JWT.ExpTimeInHour) * time.Hour
	token, err := utils.GenerateJWT(session.SessionID, uc.config.JWT.Secret, expTime)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("session created",
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
		zap.String(constvars.LoggingRoleKey, role),
	)

	return &responses.Login{
		Token:    token,
		Role:     session.Role,
		Fullname: session.Fullname,
	}, nil
}

func (uc *authUsecase) RegisterPatient(ctx context.Context, request *requests.RegisterPatient) error {
	return uc.gateway.RegisterPatient(ctx, request)
}

// Logout destroys the session record and drops any booking draft tied to it.
// After this the JWT still parses but resolves to no session, which the
// middleware treats as not logged in.
func (uc *authUsecase) Logout(ctx context.Context, session *models.Session) error {
	uc.drafts.DiscardDraft(session)

	if err := uc.sessionService.DestroySession(ctx, session.SessionID); err != nil {
		return err
	}

	uc.logger.Info("session destroyed",
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)
	return nil
}
