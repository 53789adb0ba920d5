package domain

import (
	"strings"
	"testing"
)

func validRules() []RouteRule {
	return []RouteRule{
		{Path: PathLogin},
		{Path: PathMeuPerfil, RequiresAuth: true},
		{Path: PathAprovacaoPontos, RequiresAuth: true, Roles: []Role{RoleAdmin}},
	}
}

func TestNewRouteTable_Valid(t *testing.T) {
	table, err := NewRouteTable(validRules())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rule, ok := table.Rule(PathAprovacaoPontos)
	if !ok {
		t.Fatalf("rule for %s missing", PathAprovacaoPontos)
	}
	if !rule.RequiresAuth || len(rule.Roles) != 1 {
		t.Fatalf("unexpected rule: %+v", rule)
	}
}

func TestNewRouteTable_RejectsDuplicatePath(t *testing.T) {
	rules := append(validRules(), RouteRule{Path: PathLogin})
	if _, err := NewRouteTable(rules); err == nil {
		t.Fatalf("expected duplicate path error")
	}
}

func TestNewRouteTable_RejectsMissingDefaultScreen(t *testing.T) {
	rules := []RouteRule{
		{Path: PathLogin},
		{Path: PathMeuPerfil, RequiresAuth: true},
		// no rule for /aprovacao-pontos, the admin default
	}
	_, err := NewRouteTable(rules)
	if err == nil || !strings.Contains(err.Error(), PathAprovacaoPontos) {
		t.Fatalf("expected missing default screen error, got %v", err)
	}
}

func TestNewRouteTable_RejectsRoleDeniedOwnDefault(t *testing.T) {
	// At runtime the guard's loop-prevention rule would silently render this
	// misconfiguration; the table rejects it at startup instead.
	rules := []RouteRule{
		{Path: PathLogin},
		{Path: PathMeuPerfil, RequiresAuth: true, Roles: []Role{RoleAdmin}},
		{Path: PathAprovacaoPontos, RequiresAuth: true, Roles: []Role{RoleAdmin}},
	}
	_, err := NewRouteTable(rules)
	if err == nil || !strings.Contains(err.Error(), string(RoleFuncionario)) {
		t.Fatalf("expected own-default-screen error, got %v", err)
	}
}
