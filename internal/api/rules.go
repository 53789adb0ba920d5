package api

import "github.com/pontocloud/ponto-console/internal/core/domain"

// ConsoleRouteTable declares every navigable console screen and who may reach
// it. This is the single declarative table the route guard consults; screens
// are never guarded ad hoc. NewRouteTable rejects a table that would deny a
// role its own default screen.
func ConsoleRouteTable() (*domain.RouteTable, error) {
	admin := []domain.Role{domain.RoleAdmin}

	return domain.NewRouteTable([]domain.RouteRule{
		// Public screens: login, self-registration and the punch-clock kiosk.
		{Path: domain.PathLogin},
		{Path: domain.PathCadastro},
		{Path: domain.PathRegistroPonto},

		// Any authenticated role.
		{Path: "/", RequiresAuth: true},
		{Path: domain.PathMeuPerfil, RequiresAuth: true},

		// Administrator screens.
		{Path: domain.PathAprovacaoPontos, RequiresAuth: true, Roles: admin},
		{Path: domain.PathFuncionarios, RequiresAuth: true, Roles: admin},
		{Path: domain.PathFuncionarios + "/:id", RequiresAuth: true, Roles: admin},
		{Path: domain.PathFuncionarios + "/:id/editar", RequiresAuth: true, Roles: admin},
		{Path: domain.PathSedes, RequiresAuth: true, Roles: admin},
		{Path: domain.PathSedes + "/nova", RequiresAuth: true, Roles: admin},
		{Path: domain.PathSedes + "/:id/editar", RequiresAuth: true, Roles: admin},
		{Path: domain.PathFuncoes, RequiresAuth: true, Roles: admin},
	})
}
