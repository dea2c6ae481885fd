package navigation

// Param is one bound path parameter
type Param struct {
	Name  string
	Value string
}

// Params holds bound parameters in pattern declaration order
type Params []Param

// Get returns the value bound to name
func (p Params) Get(name string) (string, bool) {
	for _, param := range p {
		if param.Name == name {
			return param.Value, true
		}
	}
	return "", false
}

// Map returns the parameters keyed by name
func (p Params) Map() map[string]string {
	m := make(map[string]string, len(p))
	for _, param := range p {
		m[param.Name] = param.Value
	}
	return m
}

// MatchResult is the outcome of Resolve. The zero value is NoMatch.
type MatchResult struct {
	Matched bool
	Route   RouteDefinition
	Params  Params
}

// NoMatch is the result for a path no declared route accepts
var NoMatch = MatchResult{}

// Resolution is a match with the not-found fallback already applied
type Resolution struct {
	Route  RouteDefinition
	Params Params
	// Path is the normalized requested path, echoed by the not-found view
	Path  string
	Found bool
}

// Router resolves paths against a RouteTable
type Router struct {
	table *RouteTable
}

// NewRouter creates a Router over table
func NewRouter(table *RouteTable) *Router {
	return &Router{table: table}
}

// Table returns the router's route table
func (r *Router) Table() *RouteTable {
	return r.table
}

// Resolve returns the first declared route accepting path, or NoMatch.
// The not-found fallback is never returned here.
func (r *Router) Resolve(path string) MatchResult {
	segments := splitPath(path)

	// Routes are declared in priority order, first match wins
	for _, route := range r.table.routes {
		if params, ok := route.match(segments); ok {
			return MatchResult{Matched: true, Route: route, Params: params}
		}
	}
	return NoMatch
}

// Navigate resolves path and maps NoMatch to the table's not-found route
func (r *Router) Navigate(path string) Resolution {
	normalized := NormalizePath(path)
	match := r.Resolve(normalized)
	if !match.Matched {
		return Resolution{Route: r.table.notFound, Path: normalized}
	}
	return Resolution{Route: match.Route, Params: match.Params, Path: normalized, Found: true}
}
