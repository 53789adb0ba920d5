package domain

import "fmt"

// RouteTable is the static, validated set of Route Rules the guard consults.
type RouteTable struct {
	rules map[string]RouteRule
}

// NewRouteTable validates and indexes the rules. It rejects tables where a
// known role would be denied its own default screen: that misconfiguration is
// otherwise masked at runtime by the guard's loop-prevention rule, which
// renders the screen instead of redirecting forever.
func NewRouteTable(rules []RouteRule) (*RouteTable, error) {
	indexed := make(map[string]RouteRule, len(rules))
	for _, rule := range rules {
		if rule.Path == "" {
			return nil, fmt.Errorf("route rule with empty path")
		}
		if _, dup := indexed[rule.Path]; dup {
			return nil, fmt.Errorf("duplicate route rule for %s", rule.Path)
		}
		indexed[rule.Path] = rule
	}

	for _, role := range []Role{RoleAdmin, RoleFuncionario} {
		fallback := DefaultPath(role)
		rule, ok := indexed[fallback]
		if !ok {
			return nil, fmt.Errorf("no route rule for %s, the default screen of %s", fallback, role)
		}
		if rule.RequiresAuth && !rule.Allows(role) {
			return nil, fmt.Errorf("role %s is denied its own default screen %s", role, fallback)
		}
	}

	return &RouteTable{rules: indexed}, nil
}

// Rule returns the rule registered for path.
func (t *RouteTable) Rule(path string) (RouteRule, bool) {
	rule, ok := t.rules[path]
	return rule, ok
}

// Paths returns every path the table declares, in no particular order.
func (t *RouteTable) Paths() []string {
	paths := make([]string, 0, len(t.rules))
	for p := range t.rules {
		paths = append(paths, p)
	}
	return paths
}
