// Package auth provides concrete implementations for authentication-related
// domain services.
package auth

import (
	"time"

	"agroalerta/config"
	"agroalerta/internal/domain/service"
	"agroalerta/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const sessionTokenTTL = 24 * time.Hour

// jwtService signs and verifies the session bearer tokens using the JWT
// standard. The token only carries the session id; the session itself stays
// in the local store.
type jwtService struct {
	secret []byte
	clock  service.Clock
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config, clock service.Clock) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session token secret must be provided")
	}

	return &jwtService{secret: []byte(cfg.SecretKey.Session), clock: clock}, nil
}

// GenerateSessionToken signs a token carrying the session id.
func (s *jwtService) GenerateSessionToken(sessionID string) (string, error) {
	now := s.clock.Now()
	claims := jwt.MapClaims{
		"sub": sessionID,
		"iat": now.Unix(),
		"exp": now.Add(sessionTokenTTL).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return token, nil
}

// ParseSessionToken verifies a token and returns the session id it carries.
func (s *jwtService) ParseSessionToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithTimeFunc(s.clock.Now))
	if err != nil {
		return "", errors.Wrap(err, "failed to parse session token")
	}
	if !token.Valid {
		return "", errors.New("invalid session token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("unexpected session token claims")
	}

	sessionID, ok := claims["sub"].(string)
	if !ok || sessionID == "" {
		return "", errors.New("session id missing from token")
	}

	return sessionID, nil
}
