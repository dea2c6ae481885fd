package navigation

// DecisionKind is the guard's verdict
type DecisionKind int

const (
	Admit DecisionKind = iota
	Redirect
)

// Decision is returned by Guard.Admit.
// Target is set when admitted, Location when redirected.
type Decision struct {
	Kind     DecisionKind
	Target   Target
	Location string
}

// SessionState is the single flag the guard consults
type SessionState interface {
	IsAuthenticated() bool
}

// Guard admits or redirects navigation to protected routes.
// It holds no state of its own.
type Guard struct {
	LoginPath string
}

// NewGuard creates a Guard redirecting to loginPath
func NewGuard(loginPath string) Guard {
	if loginPath == "" {
		loginPath = "/login"
	}
	return Guard{LoginPath: loginPath}
}

// Admit decides whether route may be rendered for the given session.
// The redirect does not carry the requested path.
func (g Guard) Admit(route RouteDefinition, session SessionState) Decision {
	if !route.Protected {
		return Decision{Kind: Admit, Target: route.Target}
	}
	if session != nil && session.IsAuthenticated() {
		return Decision{Kind: Admit, Target: route.Target}
	}
	return Decision{Kind: Redirect, Location: g.LoginPath}
}
