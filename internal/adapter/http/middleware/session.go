package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/flight-booking-system/internal/adapter/http/response"
	"github.com/flight-search/flight-booking-system/internal/domain"
	"github.com/flight-search/flight-booking-system/internal/store"
)

const (
	// SessionParam is the route parameter holding the session id.
	SessionParam = "sessionId"

	sessionIDKey = "session_id"
)

// SessionLookup resolves a session id to its store.
type SessionLookup interface {
	Get(id string) (*store.Store, error)
}

// SessionBinder returns middleware that resolves the :sessionId route
// parameter and binds the session store to the request context, where
// handlers read it back with store.FromContext. Unknown or expired sessions
// are answered with 404.
func SessionBinder(sessions SessionLookup) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Param(SessionParam)

			s, err := sessions.Get(id)
			if errors.Is(err, domain.ErrSessionNotFound) {
				return response.SessionNotFound(c)
			}
			if err != nil {
				return err
			}

			c.Set(sessionIDKey, id)
			req := c.Request()
			c.SetRequest(req.WithContext(store.NewContext(req.Context(), s)))

			return next(c)
		}
	}
}

// GetSessionID retrieves the bound session id from the echo context.
// Returns an empty string outside a session route.
func GetSessionID(c echo.Context) string {
	if id, ok := c.Get(sessionIDKey).(string); ok {
		return id
	}
	return ""
}
