package api

import (
	"testing"

	"github.com/pontocloud/ponto-console/internal/core/domain"
)

func TestConsoleRouteTable_Builds(t *testing.T) {
	if _, err := ConsoleRouteTable(); err != nil {
		t.Fatalf("route table should build: %v", err)
	}
}

func TestConsoleRouteTable_PublicScreens(t *testing.T) {
	table, err := ConsoleRouteTable()
	if err != nil {
		t.Fatalf("route table: %v", err)
	}

	for _, path := range []string{domain.PathLogin, domain.PathCadastro, domain.PathRegistroPonto} {
		rule, ok := table.Rule(path)
		if !ok {
			t.Fatalf("missing rule for %s", path)
		}
		if rule.RequiresAuth {
			t.Fatalf("%s must be reachable without a session", path)
		}
	}
}

func TestConsoleRouteTable_AdminScreens(t *testing.T) {
	table, err := ConsoleRouteTable()
	if err != nil {
		t.Fatalf("route table: %v", err)
	}

	admin := []string{
		domain.PathAprovacaoPontos,
		domain.PathFuncionarios,
		domain.PathSedes,
		domain.PathFuncoes,
	}
	for _, path := range admin {
		rule, ok := table.Rule(path)
		if !ok {
			t.Fatalf("missing rule for %s", path)
		}
		if !rule.RequiresAuth || !rule.Allows(domain.RoleAdmin) || rule.Allows(domain.RoleFuncionario) {
			t.Fatalf("%s must be admin-only, got %+v", path, rule)
		}
	}
}

func TestConsoleRouteTable_SharedScreens(t *testing.T) {
	table, err := ConsoleRouteTable()
	if err != nil {
		t.Fatalf("route table: %v", err)
	}

	for _, path := range []string{"/", domain.PathMeuPerfil} {
		rule, ok := table.Rule(path)
		if !ok {
			t.Fatalf("missing rule for %s", path)
		}
		if !rule.RequiresAuth {
			t.Fatalf("%s must require a session", path)
		}
		if !rule.Allows(domain.RoleAdmin) || !rule.Allows(domain.RoleFuncionario) {
			t.Fatalf("%s must admit both roles, got %+v", path, rule)
		}
	}
}
