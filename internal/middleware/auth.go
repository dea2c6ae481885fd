package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"spa_router_echo/internal/session"
)

// Cookie and echo context keys shared with the handlers
const (
	SessionCookieName = "session"
	ContextSessionID  = "sessionID"
	ContextSession    = "session"
)

// cookie lifetime mirrors browser storage: it outlives restarts
const sessionCookieMaxAge = 365 * 24 * 60 * 60

// LoadSession identifies the browser by its session cookie, issuing one when
// missing, and puts the loaded session.State into the echo context.
func LoadSession(manager *session.Manager, secure bool, log *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := ""
			if cookie, err := c.Cookie(SessionCookieName); err == nil {
				if _, err := uuid.Parse(cookie.Value); err == nil {
					id = cookie.Value
				}
			}

			if id == "" {
				id = uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     SessionCookieName,
					Value:    id,
					MaxAge:   sessionCookieMaxAge,
					HttpOnly: true,
					Secure:   secure,
					Path:     "/",
					SameSite: http.SameSiteLaxMode,
				})
			}

			state, err := manager.Load(c.Request().Context(), id)
			if err != nil {
				// An unreadable session is treated as signed out
				log.Warn("failed to load session", zap.Error(err))
				state = session.State{}
			}

			c.Set(ContextSessionID, id)
			c.Set(ContextSession, state)
			return next(c)
		}
	}
}

// SessionFromContext returns the state stored by LoadSession
func SessionFromContext(c echo.Context) session.State {
	state, _ := c.Get(ContextSession).(session.State)
	return state
}

// SessionIDFromContext returns the browser's session id
func SessionIDFromContext(c echo.Context) string {
	id, _ := c.Get(ContextSessionID).(string)
	return id
}
