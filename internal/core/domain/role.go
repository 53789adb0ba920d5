package domain

// Role classifies what an authenticated actor may do. The tags are the exact
// strings the upstream backend emits; comparisons are case-sensitive and no
// normalisation is performed.
type Role string

const (
	RoleAdmin       Role = "ROLE_ADMIN"
	RoleFuncionario Role = "ROLE_FUNCIONARIO"
)

// ParseRole validates a raw role tag at the points where role data enters the
// system (login response, session hydration). Unknown tags are rejected rather
// than being carried around as free-form strings.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleFuncionario:
		return RoleFuncionario, nil
	default:
		return "", ErrUnknownRole
	}
}

// DefaultPath returns the landing screen for a role: admins go to the punch
// approval screen, everyone else to their own profile.
func DefaultPath(r Role) string {
	if r == RoleAdmin {
		return PathAprovacaoPontos
	}
	return PathMeuPerfil
}
