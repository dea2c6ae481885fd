package handlers

import (
	"fmt"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"spa_router_echo/internal/middleware"
	"spa_router_echo/internal/navigation"
	"spa_router_echo/internal/views"
)

// pageProps builds the layout data for path using the session loaded by middleware
func pageProps(c echo.Context, path, title string, labels navigation.Labels) views.PageProps {
	state := middleware.SessionFromContext(c)
	return views.PageProps{
		Title:         title,
		Menu:          navigation.BuildMenu(path, state.Authenticated),
		Breadcrumbs:   navigation.BuildBreadcrumbs(path, labels),
		Authenticated: state.Authenticated,
	}
}

// render writes view as an HTML response with the given status.
// Nothing is committed until the view has rendered into the buffer.
func render(c echo.Context, status int, view templ.Component) error {
	buf := templ.GetBuffer()
	defer templ.ReleaseBuffer(buf)

	if err := view.Render(c.Request().Context(), buf); err != nil {
		return fmt.Errorf("render view: %w", err)
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	if c.Request().Method == http.MethodHead {
		return nil
	}
	_, err := c.Response().Write(buf.Bytes())
	return err
}
