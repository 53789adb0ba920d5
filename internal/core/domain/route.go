package domain

// Console screen paths. The guard, the landing redirector and the route table
// all reference these constants so a renamed screen cannot drift out of sync.
const (
	PathLogin           = "/login"
	PathCadastro        = "/cadastro"
	PathRegistroPonto   = "/registro-ponto"
	PathMeuPerfil       = "/meu-perfil"
	PathAprovacaoPontos = "/aprovacao-pontos"
	PathFuncionarios    = "/funcionarios"
	PathSedes           = "/sedes"
	PathFuncoes         = "/funcoes"
)

// RouteRule declares who may reach a navigable path. Rules are built once at
// startup and never mutated. An empty Roles set admits any authenticated role.
type RouteRule struct {
	Path         string
	RequiresAuth bool
	Roles        []Role
}

// Allows reports whether the rule's role set admits the given role.
func (r RouteRule) Allows(role Role) bool {
	if len(r.Roles) == 0 {
		return true
	}
	for _, allowed := range r.Roles {
		if allowed == role {
			return true
		}
	}
	return false
}

// CanAccess is the pure authorization predicate: may this session render the
// screen the rule protects?
func CanAccess(s *Session, rule RouteRule) bool {
	if !rule.RequiresAuth {
		return true
	}
	if !s.Authenticated() {
		return false
	}
	return rule.Allows(s.Role)
}

// Decision is the outcome of evaluating one navigation against a rule.
type Decision struct {
	Kind     DecisionKind
	Redirect string
}

type DecisionKind int

const (
	// DecisionAllow renders the requested screen.
	DecisionAllow DecisionKind = iota
	// DecisionLoginRedirect sends the anonymous visitor to the login screen.
	DecisionLoginRedirect
	// DecisionFallbackRedirect sends an authenticated but unauthorized visitor
	// to the default screen for their role.
	DecisionFallbackRedirect
)

// Decide evaluates a navigation to path under rule for the given session.
// Evaluation is stateless: the guard re-runs it on every navigation.
//
// When the role-based fallback would point back at the path being evaluated,
// the screen is rendered anyway. Redirecting would loop forever; rendering is
// the deliberate escape hatch. NewRouteTable catches the misconfigurations
// that could reach this branch, so at runtime it is defense in depth.
func Decide(rule RouteRule, s *Session, path string) Decision {
	if !rule.RequiresAuth {
		return Decision{Kind: DecisionAllow}
	}
	if !s.Authenticated() {
		return Decision{Kind: DecisionLoginRedirect, Redirect: PathLogin}
	}
	if !rule.Allows(s.Role) {
		fallback := DefaultPath(s.Role)
		if fallback == path {
			return Decision{Kind: DecisionAllow}
		}
		return Decision{Kind: DecisionFallbackRedirect, Redirect: fallback}
	}
	return Decision{Kind: DecisionAllow}
}
