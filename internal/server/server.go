package server

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"spa_router_echo/internal/catalog"
	"spa_router_echo/internal/config"
	"spa_router_echo/internal/content"
	"spa_router_echo/internal/handlers"
	"spa_router_echo/internal/middleware"
	"spa_router_echo/internal/navigation"
	"spa_router_echo/internal/services"
	"spa_router_echo/internal/session"
)

// Deps are the collaborators the HTTP server is built from
type Deps struct {
	Config   config.Config
	Log      *zap.Logger
	Store    session.Store
	Catalog  catalog.Catalog
	Pages    *content.Pages
	Registry *prometheus.Registry
}

// New builds the echo instance: route table, guard, session middleware and handlers
func New(d Deps) (*echo.Echo, error) {
	table, err := navigation.DefaultRouteTable()
	if err != nil {
		return nil, err
	}
	router := navigation.NewRouter(table)
	guard := navigation.NewGuard("/login")
	labels := navigation.DefaultLabels()

	registry := d.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	metrics := services.NewMetrics(registry)
	sessions := session.NewManager(d.Store)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.CustomErrorHandler(d.Log)

	// Middleware
	e.Use(middleware.RequestLogger(d.Log))
	e.Use(echomw.Recover())
	e.Use(middleware.LoadSession(sessions, d.Config.IsProduction(), d.Log))

	// Static file serving, bounded to the /static/ segment
	e.Static("/static/", "web/static")
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	navHandler := handlers.NewNavigationHandler(router, guard, labels, d.Catalog, d.Pages, metrics, d.Log)
	authHandler := handlers.NewAuthHandler(sessions, guard, d.Config.DefaultAfterLogin, labels, metrics, d.Log)

	// Session actions
	e.POST("/login", authHandler.HandleLogin)
	e.POST("/logout", authHandler.HandleLogout)

	// Every other GET or HEAD is a navigation event resolved by the route table.
	// Other methods on these paths get 405 from the router.
	for _, path := range []string{"/", "/*"} {
		e.GET(path, navHandler.Navigate)
		e.HEAD(path, navHandler.Navigate)
	}

	return e, nil
}
