package handler

import (
	"net/http"
	"testing"

	appmiddleware "github.com/pontocloud/ponto-console/internal/api/middleware"
	"github.com/pontocloud/ponto-console/internal/core/domain"
)

func TestLandingHandler_AdminGoesToApproval(t *testing.T) {
	h := NewLandingHandler()
	c, rec := newTestContext(t, http.MethodGet, "/", "")
	appmiddleware.SetSession(c, &domain.Session{Login: "chefe", Role: domain.RoleAdmin, Token: "tok"})

	if err := h.Redirect(c); err != nil {
		t.Fatalf("redirect failed: %v", err)
	}
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != domain.PathAprovacaoPontos {
		t.Fatalf("expected 302 to %s, got %d %s", domain.PathAprovacaoPontos, rec.Code, rec.Header().Get("Location"))
	}
}

func TestLandingHandler_FuncionarioGoesToProfile(t *testing.T) {
	h := NewLandingHandler()
	c, rec := newTestContext(t, http.MethodGet, "/", "")
	appmiddleware.SetSession(c, &domain.Session{Login: "jdoe", Role: domain.RoleFuncionario, Token: "tok"})

	if err := h.Redirect(c); err != nil {
		t.Fatalf("redirect failed: %v", err)
	}
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != domain.PathMeuPerfil {
		t.Fatalf("expected 302 to %s, got %d %s", domain.PathMeuPerfil, rec.Code, rec.Header().Get("Location"))
	}
}

func TestLandingHandler_AnonymousGoesToLogin(t *testing.T) {
	h := NewLandingHandler()
	c, rec := newTestContext(t, http.MethodGet, "/", "")

	if err := h.Redirect(c); err != nil {
		t.Fatalf("redirect failed: %v", err)
	}
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != domain.PathLogin {
		t.Fatalf("expected 302 to %s, got %d %s", domain.PathLogin, rec.Code, rec.Header().Get("Location"))
	}
}
