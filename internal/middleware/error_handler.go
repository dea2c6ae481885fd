package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"spa_router_echo/internal/navigation"
	"spa_router_echo/internal/views"
)

// CustomErrorHandler creates an echo error handler that renders the error page
func CustomErrorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		errorTitle := "Internal Server Error"
		errorMessage := ""

		// Check if it's an Echo HTTPError
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code

			// Try to extract message from HTTPError
			if msg, ok := he.Message.(string); ok && msg != "" {
				errorMessage = msg
			}

			// Set title and default message if no custom message provided
			switch code {
			case http.StatusNotFound:
				errorTitle = "Page Not Found"
				if errorMessage == "" {
					errorMessage = "The page you're looking for doesn't exist."
				}
			case http.StatusMethodNotAllowed:
				errorTitle = "Method Not Allowed"
				if errorMessage == "" {
					errorMessage = "This page cannot be requested that way."
				}
			case http.StatusBadRequest:
				errorTitle = "Bad Request"
				if errorMessage == "" {
					errorMessage = "The request could not be processed."
				}
			default:
				if errorMessage == "" {
					errorMessage = "Something went wrong. Please try again later."
				}
			}
		} else {
			errorMessage = "Something went wrong. Please try again later."
		}

		if code >= http.StatusInternalServerError {
			log.Error("request failed", zap.Error(err), zap.String("path", c.Request().URL.Path))
		} else {
			log.Debug("request rejected", zap.Error(err), zap.Int("status", code))
		}

		state := SessionFromContext(c)
		props := views.PageProps{
			Title: errorTitle,
			Menu:  navigation.BuildMenu(c.Request().URL.Path, state.Authenticated),
			Breadcrumbs: []navigation.BreadcrumbEntry{
				{Label: "Home", Path: "/"},
				{Label: "Error", IsCurrent: true},
			},
			Authenticated: state.Authenticated,
		}

		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
		c.Response().WriteHeader(code)
		if c.Request().Method == http.MethodHead {
			return
		}

		page := views.ErrorPage(props, views.ErrorProps{ErrorTitle: errorTitle, ErrorMessage: errorMessage})
		if renderErr := page.Render(c.Request().Context(), c.Response()); renderErr != nil {
			log.Error("failed to render error page", zap.Error(renderErr))
		}
	}
}
