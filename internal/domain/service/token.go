package service

// TokenService issues and verifies the bearer tokens the HTTP layer uses to
// recognize the active session between requests.
type TokenService interface {
	// GenerateSessionToken signs a token carrying the session id.
	GenerateSessionToken(sessionID string) (string, error)

	// ParseSessionToken verifies a token and returns the session id it carries.
	ParseSessionToken(token string) (string, error)
}
