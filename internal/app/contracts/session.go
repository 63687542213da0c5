package contracts

import (
	"context"
	"medibook-service/internal/app/models"
)

// SessionService owns the session lifecycle: created once at login, read on
// every authenticated request, destroyed once at logout.
type SessionService interface {
	CreateSession(ctx context.Context, session *models.Session) error
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	DestroySession(ctx context.Context, sessionID string) error
}
