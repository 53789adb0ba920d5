package ports

import "context"

// Credentials is the payload the upstream authentication endpoint expects.
type Credentials struct {
	Login string `json:"login"`
	Senha string `json:"senha"`
}

// AuthResult is the upstream authentication endpoint's success response.
type AuthResult struct {
	Token string `json:"token"`
	Login string `json:"login"`
	Role  string `json:"role"`
}

// Authenticator validates credentials against the upstream ponto backend.
// Implementations return domain.ErrInvalidCredentials when the backend reports
// unauthorized and domain.ErrUpstreamUnavailable for any other fault.
type Authenticator interface {
	Authenticate(ctx context.Context, creds Credentials) (*AuthResult, error)
}
