package middlewares

import (
	"context"
	"errors"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"net/http"
	"strings"
)

// Authenticate resolves the bearer JWT into the session record it references.
// A token that parses but points at a destroyed session is rejected the same
// way as a missing token: the session store is the single source of truth.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(constvars.HeaderAuthorization)
		if !strings.HasPrefix(header, constvars.BearerPrefix) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(errors.New("missing bearer token")))
			return
		}

		tokenString := strings.TrimPrefix(header, constvars.BearerPrefix)
		sessionID, err := utils.ParseJWT(tokenString, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		session, err := m.SessionService.GetSession(r.Context(), sessionID)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.ContextSessionKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRoles guards a route group behind the given session roles. It must
// run after Authenticate.
func (m *Middlewares) RequireRoles(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := r.Context().Value(constvars.ContextSessionKey).(*models.Session)
			if !ok || session == nil {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionNotFound(errors.New("no session in context")))
				return
			}
			if _, ok := allowed[session.Role]; !ok {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrRoleNotAllowed(errors.New("role "+session.Role+" not allowed")))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
