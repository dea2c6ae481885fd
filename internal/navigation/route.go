package navigation

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPattern is returned when a route pattern cannot be parsed
var ErrInvalidPattern = errors.New("invalid route pattern")

// TokenKind classifies a single pattern segment
type TokenKind int

const (
	TokenLiteral TokenKind = iota
	TokenPlaceholder
	TokenWildcard
)

// Token is one segment of a route pattern.
// For placeholders and wildcards Value holds the bound parameter name.
type Token struct {
	Kind  TokenKind
	Value string
}

// RouteDefinition maps a path pattern to a view target
type RouteDefinition struct {
	Pattern    string
	Tokens     []Token
	ParamNames []string
	Target     Target
	Protected  bool
}

// NewRouteDefinition parses pattern and builds a route for target
func NewRouteDefinition(pattern string, target Target, protected bool) (RouteDefinition, error) {
	tokens, names, err := ParsePattern(pattern)
	if err != nil {
		return RouteDefinition{}, err
	}
	if !target.Valid() {
		return RouteDefinition{}, fmt.Errorf("route %q: unknown target %d", pattern, target)
	}
	return RouteDefinition{
		Pattern:    pattern,
		Tokens:     tokens,
		ParamNames: names,
		Target:     target,
		Protected:  protected,
	}, nil
}

// ParsePattern splits a pattern such as "/products/:productId" or "/docs/*rest"
// into tokens and the ordered list of parameter names it binds.
func ParsePattern(pattern string) ([]Token, []string, error) {
	segments := splitPath(pattern)
	tokens := make([]Token, 0, len(segments))
	var names []string
	seen := make(map[string]bool)

	bind := func(name string) error {
		if seen[name] {
			return fmt.Errorf("%w: %q binds %q twice", ErrInvalidPattern, pattern, name)
		}
		seen[name] = true
		names = append(names, name)
		return nil
	}

	for i, segment := range segments {
		switch {
		case strings.HasPrefix(segment, ":"):
			name := segment[1:]
			if name == "" {
				return nil, nil, fmt.Errorf("%w: %q has an unnamed placeholder", ErrInvalidPattern, pattern)
			}
			if err := bind(name); err != nil {
				return nil, nil, err
			}
			tokens = append(tokens, Token{Kind: TokenPlaceholder, Value: name})
		case strings.HasPrefix(segment, "*"):
			if i != len(segments)-1 {
				return nil, nil, fmt.Errorf("%w: %q has a wildcard before the last segment", ErrInvalidPattern, pattern)
			}
			name := segment[1:]
			if name == "" {
				name = "*"
			}
			if err := bind(name); err != nil {
				return nil, nil, err
			}
			tokens = append(tokens, Token{Kind: TokenWildcard, Value: name})
		default:
			tokens = append(tokens, Token{Kind: TokenLiteral, Value: segment})
		}
	}

	return tokens, names, nil
}

// IsStatic reports whether the route has only literal tokens
func (r RouteDefinition) IsStatic() bool {
	for _, tok := range r.Tokens {
		if tok.Kind != TokenLiteral {
			return false
		}
	}
	return true
}

// IsCatchAll reports whether the route is a bare wildcard matching any non-root path
func (r RouteDefinition) IsCatchAll() bool {
	return len(r.Tokens) == 1 && r.Tokens[0].Kind == TokenWildcard
}

func (r RouteDefinition) hasWildcard() bool {
	n := len(r.Tokens)
	return n > 0 && r.Tokens[n-1].Kind == TokenWildcard
}

// match compares already split path segments against the route tokens
func (r RouteDefinition) match(segments []string) (Params, bool) {
	if r.hasWildcard() {
		// the wildcard itself needs at least one segment
		if len(segments) < len(r.Tokens) {
			return nil, false
		}
	} else if len(segments) != len(r.Tokens) {
		return nil, false
	}

	var params Params
	for i, tok := range r.Tokens {
		switch tok.Kind {
		case TokenLiteral:
			if segments[i] != tok.Value {
				return nil, false
			}
		case TokenPlaceholder:
			params = append(params, Param{Name: tok.Value, Value: segments[i]})
		case TokenWildcard:
			params = append(params, Param{Name: tok.Value, Value: strings.Join(segments[i:], "/")})
			return params, true
		}
	}
	return params, true
}

// shadows reports whether every path accepted by later is already accepted by r,
// which would make later unreachable under first-match-wins.
func (r RouteDefinition) shadows(later RouteDefinition) bool {
	prefix := len(r.Tokens)
	if r.hasWildcard() {
		prefix--
		if len(later.Tokens) < len(r.Tokens) {
			return false
		}
	} else if later.hasWildcard() || len(later.Tokens) != len(r.Tokens) {
		return false
	}

	for i := 0; i < prefix; i++ {
		if !r.Tokens[i].covers(later.Tokens[i]) {
			return false
		}
	}
	return true
}

func (t Token) covers(other Token) bool {
	switch t.Kind {
	case TokenPlaceholder:
		return other.Kind != TokenWildcard
	case TokenLiteral:
		return other.Kind == TokenLiteral && other.Value == t.Value
	default:
		return true
	}
}

// splitPath returns the non-empty segments of path
func splitPath(path string) []string {
	parts := strings.Split(path, "/")
	segments := parts[:0]
	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

// NormalizePath collapses empty segments so "", "//" and "/a//b/" become "/" and "/a/b"
func NormalizePath(path string) string {
	return "/" + strings.Join(splitPath(path), "/")
}
