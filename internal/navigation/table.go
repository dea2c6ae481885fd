package navigation

import (
	"errors"
	"fmt"
)

// ErrInvalidRouteTable is returned when route declaration order would make a route unreachable
var ErrInvalidRouteTable = errors.New("invalid route table")

// RouteTable is an ordered, immutable list of route definitions.
// The not-found route is kept apart and is logically the last entry.
type RouteTable struct {
	routes   []RouteDefinition
	notFound RouteDefinition
}

// NewRouteTable validates declaration order and builds a table.
// Routes are never reordered: a route shadowed by an earlier one is rejected instead.
func NewRouteTable(notFound RouteDefinition, routes ...RouteDefinition) (*RouteTable, error) {
	if !notFound.IsCatchAll() {
		return nil, fmt.Errorf("%w: not-found route %q must be a bare wildcard", ErrInvalidRouteTable, notFound.Pattern)
	}
	if notFound.Target != TargetNotFound {
		return nil, fmt.Errorf("%w: not-found route must target %s, got %s", ErrInvalidRouteTable, TargetNotFound, notFound.Target)
	}

	for i, route := range routes {
		if !route.Target.Valid() {
			return nil, fmt.Errorf("%w: route %d (%q) has no target", ErrInvalidRouteTable, i, route.Pattern)
		}
		if route.IsCatchAll() {
			return nil, fmt.Errorf("%w: catch-all %q is reserved for the not-found route", ErrInvalidRouteTable, route.Pattern)
		}
		for _, earlier := range routes[:i] {
			if earlier.shadows(route) {
				return nil, fmt.Errorf("%w: %q is unreachable after %q", ErrInvalidRouteTable, route.Pattern, earlier.Pattern)
			}
		}
	}

	copied := make([]RouteDefinition, len(routes))
	copy(copied, routes)
	return &RouteTable{routes: copied, notFound: notFound}, nil
}

// Routes returns the declared routes in order
func (t *RouteTable) Routes() []RouteDefinition {
	routes := make([]RouteDefinition, len(t.routes))
	copy(routes, t.routes)
	return routes
}

// NotFound returns the fallback route
func (t *RouteTable) NotFound() RouteDefinition {
	return t.notFound
}

// DefaultRouteTable builds the site's route table
func DefaultRouteTable() (*RouteTable, error) {
	declared := []struct {
		pattern   string
		target    Target
		protected bool
	}{
		// Public routes
		{"/", TargetHome, false},
		{"/about", TargetAbout, false},
		{"/products", TargetProducts, false},
		{"/products/:productId", TargetProductDetail, false},
		{"/contact", TargetContact, false},
		{"/login", TargetLogin, false},

		// Protected routes
		{"/dashboard", TargetDashboard, true},
	}

	routes := make([]RouteDefinition, 0, len(declared))
	for _, d := range declared {
		route, err := NewRouteDefinition(d.pattern, d.target, d.protected)
		if err != nil {
			return nil, err
		}
		routes = append(routes, route)
	}

	notFound, err := NewRouteDefinition("*", TargetNotFound, false)
	if err != nil {
		return nil, err
	}
	return NewRouteTable(notFound, routes...)
}
