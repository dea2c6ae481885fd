package navigation

import (
	"errors"
	"reflect"
	"testing"
)

func mustRoute(t *testing.T, pattern string, target Target) RouteDefinition {
	t.Helper()
	route, err := NewRouteDefinition(pattern, target, false)
	if err != nil {
		t.Fatalf("NewRouteDefinition(%q) error = %v", pattern, err)
	}
	return route
}

func TestParsePattern(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		tokens  []Token
		params  []string
	}{
		{
			name:    "root",
			pattern: "/",
			tokens:  []Token{},
		},
		{
			name:    "placeholder",
			pattern: "/products/:productId",
			tokens: []Token{
				{Kind: TokenLiteral, Value: "products"},
				{Kind: TokenPlaceholder, Value: "productId"},
			},
			params: []string{"productId"},
		},
		{
			name:    "unnamed wildcard",
			pattern: "*",
			tokens:  []Token{{Kind: TokenWildcard, Value: "*"}},
			params:  []string{"*"},
		},
		{
			name:    "named wildcard",
			pattern: "/files/*path",
			tokens: []Token{
				{Kind: TokenLiteral, Value: "files"},
				{Kind: TokenWildcard, Value: "path"},
			},
			params: []string{"path"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, params, err := ParsePattern(tt.pattern)
			if err != nil {
				t.Fatalf("ParsePattern(%q) error = %v", tt.pattern, err)
			}
			if !reflect.DeepEqual(tokens, tt.tokens) {
				t.Errorf("tokens = %+v; want %+v", tokens, tt.tokens)
			}
			if !reflect.DeepEqual(params, tt.params) {
				t.Errorf("params = %v; want %v", params, tt.params)
			}
		})
	}
}

func TestParsePatternErrors(t *testing.T) {
	for _, pattern := range []string{"/products/:", "/a/:id/b/:id", "/*/tail"} {
		t.Run(pattern, func(t *testing.T) {
			if _, _, err := ParsePattern(pattern); !errors.Is(err, ErrInvalidPattern) {
				t.Errorf("ParsePattern(%q) error = %v; want ErrInvalidPattern", pattern, err)
			}
		})
	}
}

func TestNewRouteTableRejectsShadowedRoutes(t *testing.T) {
	notFound := mustRoute(t, "*", TargetNotFound)

	tests := []struct {
		name   string
		routes []RouteDefinition
	}{
		{
			name: "placeholder before static sibling",
			routes: []RouteDefinition{
				mustRoute(t, "/products/:productId", TargetProductDetail),
				mustRoute(t, "/products/featured", TargetProducts),
			},
		},
		{
			name: "prefix wildcard before nested route",
			routes: []RouteDefinition{
				mustRoute(t, "/products/*rest", TargetProducts),
				mustRoute(t, "/products/:productId", TargetProductDetail),
			},
		},
		{
			name: "duplicate pattern",
			routes: []RouteDefinition{
				mustRoute(t, "/about", TargetAbout),
				mustRoute(t, "/about/", TargetAbout),
			},
		},
		{
			name: "catch-all among declared routes",
			routes: []RouteDefinition{
				mustRoute(t, "/about", TargetAbout),
				mustRoute(t, "/*", TargetNotFound),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewRouteTable(notFound, tt.routes...); !errors.Is(err, ErrInvalidRouteTable) {
				t.Errorf("NewRouteTable() error = %v; want ErrInvalidRouteTable", err)
			}
		})
	}
}

func TestNewRouteTableAcceptsSpecificBeforeGeneral(t *testing.T) {
	notFound := mustRoute(t, "*", TargetNotFound)
	routes := []RouteDefinition{
		mustRoute(t, "/products/featured", TargetProducts),
		mustRoute(t, "/products/:productId", TargetProductDetail),
		mustRoute(t, "/products/*rest", TargetProducts),
	}

	table, err := NewRouteTable(notFound, routes...)
	if err != nil {
		t.Fatalf("NewRouteTable() error = %v", err)
	}

	got := table.Routes()
	for i := range routes {
		if got[i].Pattern != routes[i].Pattern {
			t.Errorf("route %d = %q; want %q (order must be kept)", i, got[i].Pattern, routes[i].Pattern)
		}
	}
}

func TestNewRouteTableRequiresCatchAllNotFound(t *testing.T) {
	home := mustRoute(t, "/", TargetHome)

	if _, err := NewRouteTable(mustRoute(t, "/404", TargetNotFound), home); !errors.Is(err, ErrInvalidRouteTable) {
		t.Errorf("static not-found: error = %v; want ErrInvalidRouteTable", err)
	}
	if _, err := NewRouteTable(mustRoute(t, "*", TargetHome), home); !errors.Is(err, ErrInvalidRouteTable) {
		t.Errorf("wrong not-found target: error = %v; want ErrInvalidRouteTable", err)
	}
}

func TestDefaultRouteTable(t *testing.T) {
	table, err := DefaultRouteTable()
	if err != nil {
		t.Fatalf("DefaultRouteTable() error = %v", err)
	}

	var protected []string
	for _, route := range table.Routes() {
		if route.Protected {
			protected = append(protected, route.Pattern)
		}
	}
	if !reflect.DeepEqual(protected, []string{"/dashboard"}) {
		t.Errorf("protected routes = %v; want [/dashboard]", protected)
	}
	if table.NotFound().Target != TargetNotFound {
		t.Errorf("not-found target = %s", table.NotFound().Target)
	}
}
