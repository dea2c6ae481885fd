package navigation

import "testing"

type stubSession bool

func (s stubSession) IsAuthenticated() bool { return bool(s) }

func TestGuardAdmit(t *testing.T) {
	guard := NewGuard("/login")
	public := RouteDefinition{Pattern: "/about", Target: TargetAbout}
	protected := RouteDefinition{Pattern: "/dashboard", Target: TargetDashboard, Protected: true}

	tests := []struct {
		name    string
		route   RouteDefinition
		session SessionState
		want    Decision
	}{
		{
			name:    "public route, anonymous",
			route:   public,
			session: stubSession(false),
			want:    Decision{Kind: Admit, Target: TargetAbout},
		},
		{
			name:    "public route, authenticated",
			route:   public,
			session: stubSession(true),
			want:    Decision{Kind: Admit, Target: TargetAbout},
		},
		{
			name:    "protected route, anonymous",
			route:   protected,
			session: stubSession(false),
			want:    Decision{Kind: Redirect, Location: "/login"},
		},
		{
			name:    "protected route, authenticated",
			route:   protected,
			session: stubSession(true),
			want:    Decision{Kind: Admit, Target: TargetDashboard},
		},
		{
			name:  "protected route, no session",
			route: protected,
			want:  Decision{Kind: Redirect, Location: "/login"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := guard.Admit(tt.route, tt.session); got != tt.want {
				t.Errorf("Admit() = %+v; want %+v", got, tt.want)
			}
		})
	}
}

func TestNewGuardDefaultsLoginPath(t *testing.T) {
	if got := NewGuard("").LoginPath; got != "/login" {
		t.Errorf("LoginPath = %q; want /login", got)
	}
}
