package middleware

import (
	"net/http"
	"strings"

	"agroalerta/internal/domain/entity"
	"agroalerta/internal/domain/repository"
	"agroalerta/internal/domain/service"
	"agroalerta/internal/errors"

	"github.com/labstack/echo/v4"
)

// KeySession is the echo.Context key the authenticated session is stored
// under for handlers.
const KeySession = "session"

// AuthMiddleware validates the session bearer token and resolves it against
// the stored session.
type AuthMiddleware struct {
	tokenSvc    service.TokenService
	sessionRepo repository.SessionRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, sessionRepo repository.SessionRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, sessionRepo: sessionRepo}
}

// Authenticate is the core middleware function that validates the bearer
// token and loads the session it refers to. A token for a session that no
// longer exists (logout, new login) is rejected.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		sessionID, err := m.tokenSvc.ParseSessionToken(tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		session, err := m.sessionRepo.Find(c.Request().Context())
		if err != nil {
			if errors.Is(err, repository.ErrSessionNotFound) {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "No active session"})
			}

			return errors.Wrap(err, "failed to load session")
		}

		if session.ID != sessionID || !session.IsAuthenticated {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Session no longer valid"})
		}

		c.Set(KeySession, session)

		return next(c)
	}
}

// SessionFromContext returns the session Authenticate stored on the context.
func SessionFromContext(c echo.Context) (*entity.Session, bool) {
	session, ok := c.Get(KeySession).(*entity.Session)

	return session, ok
}
