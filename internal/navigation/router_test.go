package navigation

import (
	"reflect"
	"testing"
)

func newTestRouter(t *testing.T) *Router {
	t.Helper()
	table, err := DefaultRouteTable()
	if err != nil {
		t.Fatalf("DefaultRouteTable() error = %v", err)
	}
	return NewRouter(table)
}

func TestResolveStaticRoutes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		path   string
		target Target
	}{
		{"/", TargetHome},
		{"/about", TargetAbout},
		{"/products", TargetProducts},
		{"/contact", TargetContact},
		{"/login", TargetLogin},
		{"/dashboard", TargetDashboard},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			match := router.Resolve(tt.path)
			if !match.Matched {
				t.Fatalf("Resolve(%q) = NoMatch; want %s", tt.path, tt.target)
			}
			if match.Route.Target != tt.target {
				t.Errorf("Resolve(%q) target = %s; want %s", tt.path, match.Route.Target, tt.target)
			}
			if len(match.Params) != 0 {
				t.Errorf("Resolve(%q) params = %v; want none", tt.path, match.Params)
			}
		})
	}
}

func TestResolveParameterizedRoute(t *testing.T) {
	router := newTestRouter(t)

	match := router.Resolve("/products/3")
	if !match.Matched || match.Route.Target != TargetProductDetail {
		t.Fatalf("Resolve(/products/3) = %+v; want product detail", match)
	}
	want := Params{{Name: "productId", Value: "3"}}
	if !reflect.DeepEqual(match.Params, want) {
		t.Errorf("params = %v; want %v", match.Params, want)
	}
	if id, ok := match.Params.Get("productId"); !ok || id != "3" {
		t.Errorf("Get(productId) = %q, %v", id, ok)
	}
}

func TestResolveNormalizesSlashes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		path   string
		target Target
	}{
		{"", TargetHome},
		{"//", TargetHome},
		{"/about/", TargetAbout},
		{"//products//7/", TargetProductDetail},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			match := router.Resolve(tt.path)
			if !match.Matched || match.Route.Target != tt.target {
				t.Errorf("Resolve(%q) = %+v; want %s", tt.path, match, tt.target)
			}
		})
	}
}

func TestResolveNoMatch(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/unknown/path", "/About", "/products/3/reviews", "/dashboard/x"} {
		t.Run(path, func(t *testing.T) {
			if match := router.Resolve(path); match.Matched {
				t.Errorf("Resolve(%q) matched %q; want NoMatch", path, match.Route.Pattern)
			}
		})
	}
}

func TestNavigateFallsBackToNotFound(t *testing.T) {
	router := newTestRouter(t)

	res := router.Navigate("/unknown//path/")
	if res.Found {
		t.Fatalf("Navigate() Found = true; want false")
	}
	if res.Route.Target != TargetNotFound {
		t.Errorf("target = %s; want %s", res.Route.Target, TargetNotFound)
	}
	if res.Path != "/unknown/path" {
		t.Errorf("path = %q; want /unknown/path", res.Path)
	}

	res = router.Navigate("/products/3")
	if !res.Found || res.Route.Target != TargetProductDetail {
		t.Errorf("Navigate(/products/3) = %+v", res)
	}
}

func TestResolveMultipleParamsKeepDeclarationOrder(t *testing.T) {
	route, err := NewRouteDefinition("/shops/:shopId/items/:itemId", TargetProductDetail, false)
	if err != nil {
		t.Fatal(err)
	}
	notFound, _ := NewRouteDefinition("*", TargetNotFound, false)
	table, err := NewRouteTable(notFound, route)
	if err != nil {
		t.Fatal(err)
	}

	match := NewRouter(table).Resolve("/shops/s1/items/i9")
	want := Params{{Name: "shopId", Value: "s1"}, {Name: "itemId", Value: "i9"}}
	if !reflect.DeepEqual(match.Params, want) {
		t.Errorf("params = %v; want %v", match.Params, want)
	}
}

func TestResolveWildcardBindsRemainder(t *testing.T) {
	docs, _ := NewRouteDefinition("/docs/*page", TargetAbout, false)
	notFound, _ := NewRouteDefinition("*", TargetNotFound, false)
	table, err := NewRouteTable(notFound, docs)
	if err != nil {
		t.Fatal(err)
	}
	router := NewRouter(table)

	match := router.Resolve("/docs/guide/routing")
	if !match.Matched {
		t.Fatal("Resolve(/docs/guide/routing) = NoMatch")
	}
	if page, _ := match.Params.Get("page"); page != "guide/routing" {
		t.Errorf("page = %q; want guide/routing", page)
	}

	// the wildcard needs at least one segment
	if match := router.Resolve("/docs"); match.Matched {
		t.Errorf("Resolve(/docs) matched; want NoMatch")
	}
}

func TestNormalizePath(t *testing.T) {
	tests := map[string]string{
		"":           "/",
		"/":          "/",
		"//":         "/",
		"/a//b/":     "/a/b",
		"products/3": "/products/3",
	}
	for in, want := range tests {
		if got := NormalizePath(in); got != want {
			t.Errorf("NormalizePath(%q) = %q; want %q", in, got, want)
		}
	}
}
