package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"spa_router_echo/internal/catalog"
	"spa_router_echo/internal/content"
	"spa_router_echo/internal/middleware"
	"spa_router_echo/internal/navigation"
	"spa_router_echo/internal/services"
	"spa_router_echo/internal/views"
)

// NavigationHandler turns every GET request into one navigation event:
// resolve, guard, then render the target view.
type NavigationHandler struct {
	router  *navigation.Router
	guard   navigation.Guard
	labels  navigation.Labels
	catalog catalog.Catalog
	pages   *content.Pages
	metrics *services.Metrics
	log     *zap.Logger
}

// NewNavigationHandler creates a NavigationHandler
func NewNavigationHandler(
	router *navigation.Router,
	guard navigation.Guard,
	labels navigation.Labels,
	products catalog.Catalog,
	pages *content.Pages,
	metrics *services.Metrics,
	log *zap.Logger,
) *NavigationHandler {
	return &NavigationHandler{
		router:  router,
		guard:   guard,
		labels:  labels,
		catalog: products,
		pages:   pages,
		metrics: metrics,
		log:     log,
	}
}

// Navigate handles GET for any path
func (h *NavigationHandler) Navigate(c echo.Context) error {
	res := h.router.Navigate(c.Request().URL.EscapedPath())
	state := middleware.SessionFromContext(c)

	decision := h.guard.Admit(res.Route, state)
	if decision.Kind == navigation.Redirect {
		h.metrics.Navigation(res.Route.Target.String(), services.OutcomeRedirected)
		h.log.Debug("navigation redirected",
			zap.String("path", res.Path),
			zap.String("location", decision.Location))
		return c.Redirect(http.StatusSeeOther, decision.Location)
	}

	outcome := services.OutcomeAdmitted
	if !res.Found {
		outcome = services.OutcomeNotFound
	}
	h.metrics.Navigation(decision.Target.String(), outcome)

	status, view, err := h.view(c, decision.Target, res)
	if err != nil {
		return err
	}
	return render(c, status, view)
}

// view picks the page for target. Every Target value has a case.
func (h *NavigationHandler) view(c echo.Context, target navigation.Target, res navigation.Resolution) (int, templ.Component, error) {
	props := func(title string) views.PageProps {
		return pageProps(c, res.Path, title, h.labels)
	}

	switch target {
	case navigation.TargetHome:
		return http.StatusOK, views.StaticPage(props("Home"), h.pages.HTML("home")), nil

	case navigation.TargetAbout:
		return http.StatusOK, views.StaticPage(props("About"), h.pages.HTML("about")), nil

	case navigation.TargetContact:
		return http.StatusOK, views.StaticPage(props("Contact"), h.pages.HTML("contact")), nil

	case navigation.TargetProducts:
		products, err := h.catalog.List(c.Request().Context())
		if err != nil {
			return 0, nil, fmt.Errorf("list products: %w", err)
		}
		return http.StatusOK, views.Products(props("Products"), products), nil

	case navigation.TargetProductDetail:
		id, _ := res.Params.Get("productId")
		product, err := h.catalog.Get(c.Request().Context(), id)
		if errors.Is(err, catalog.ErrProductNotFound) {
			return http.StatusNotFound, views.ProductNotFound(props("Product Not Found")), nil
		}
		if err != nil {
			return 0, nil, fmt.Errorf("get product %q: %w", id, err)
		}
		return http.StatusOK, views.ProductDetail(props(product.Name), product), nil

	case navigation.TargetLogin:
		return http.StatusOK, views.Login(props("Login"), views.LoginForm{}), nil

	case navigation.TargetDashboard:
		return http.StatusOK, views.Dashboard(props("Dashboard"), h.pages.HTML("dashboard")), nil

	case navigation.TargetNotFound:
		return http.StatusNotFound, views.NotFound(props("Page Not Found"), res.Path), nil
	}

	return 0, nil, echo.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("no view for target %s", target))
}
