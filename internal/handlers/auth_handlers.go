package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"spa_router_echo/internal/middleware"
	"spa_router_echo/internal/navigation"
	"spa_router_echo/internal/services"
	"spa_router_echo/internal/session"
	"spa_router_echo/internal/views"
)

// AuthHandler handles the login and logout actions
type AuthHandler struct {
	sessions   *session.Manager
	loginPath  string
	afterLogin string
	labels     navigation.Labels
	metrics    *services.Metrics
	log        *zap.Logger
}

// NewAuthHandler creates a new AuthHandler.
// Successful logins always land on afterLogin; the page that triggered the login is not remembered.
func NewAuthHandler(sessions *session.Manager, guard navigation.Guard, afterLogin string, labels navigation.Labels, metrics *services.Metrics, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		sessions:   sessions,
		loginPath:  guard.LoginPath,
		afterLogin: afterLogin,
		labels:     labels,
		metrics:    metrics,
		log:        log,
	}
}

// HandleLogin accepts any non-empty username and password
func (h *AuthHandler) HandleLogin(c echo.Context) error {
	creds := session.Credentials{
		Username: c.FormValue("username"),
		Password: c.FormValue("password"),
	}

	_, err := h.sessions.Login(c.Request().Context(), middleware.SessionIDFromContext(c), creds)
	if errors.Is(err, session.ErrMissingCredentials) {
		props := pageProps(c, h.loginPath, "Login", h.labels)
		form := views.LoginForm{Username: creds.Username, Error: "Please enter username and password"}
		return render(c, http.StatusUnprocessableEntity, views.Login(props, form))
	}
	if err != nil {
		return err
	}

	h.metrics.SessionTransition("login")
	h.log.Info("session authenticated")
	return c.Redirect(http.StatusSeeOther, h.afterLogin)
}

// HandleLogout clears the persisted flag and returns to the login page
func (h *AuthHandler) HandleLogout(c echo.Context) error {
	if _, err := h.sessions.Logout(c.Request().Context(), middleware.SessionIDFromContext(c)); err != nil {
		return err
	}

	h.metrics.SessionTransition("logout")
	h.log.Info("session signed out")
	return c.Redirect(http.StatusSeeOther, h.loginPath)
}
