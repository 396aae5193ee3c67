package auth

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"landmarks-backend/internal/models"
)

// Context keys for storing user data
const (
	ContextKeyUser    = "user"
	ContextKeySession = "session"
)

// CookieName is the session cookie set on login
const CookieName = "session_token"

// RequireAuth middleware checks for valid authentication on JSON routes
func RequireAuth(authSvc *Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := TokenFromRequest(c)
			if token == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "authentication required",
				})
			}

			user, session, err := authSvc.ValidateToken(token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "invalid or expired session",
				})
			}

			// Store user and session in context for handlers
			c.Set(ContextKeyUser, user)
			c.Set(ContextKeySession, session)

			return next(c)
		}
	}
}

// RequirePageAuth is the page-route variant of RequireAuth: instead of a
// JSON 401 it redirects the browser to the login page with the original
// path as the post-login target.
func RequirePageAuth(authSvc *Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := TokenFromRequest(c)
			if token != "" {
				user, session, err := authSvc.ValidateToken(token)
				if err == nil {
					c.Set(ContextKeyUser, user)
					c.Set(ContextKeySession, session)
					return next(c)
				}
			}

			target := "/login?next=" + url.QueryEscape(c.Request().URL.Path)
			return c.Redirect(http.StatusFound, target)
		}
	}
}

// OptionalAuth middleware attempts to authenticate but doesn't require it
// Sets user in context if authenticated, otherwise continues without user
func OptionalAuth(authSvc *Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := TokenFromRequest(c)
			if token != "" {
				user, session, err := authSvc.ValidateToken(token)
				if err == nil {
					c.Set(ContextKeyUser, user)
					c.Set(ContextKeySession, session)
				}
			}
			return next(c)
		}
	}
}

// TokenFromRequest extracts the session token from the request
func TokenFromRequest(c echo.Context) string {
	// Try cookie first: browser clients authenticate this way
	cookie, err := c.Cookie(CookieName)
	if err == nil && cookie.Value != "" {
		return cookie.Value
	}

	// Try Authorization header (Bearer token)
	authHeader := c.Request().Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return ""
}

// GetUserFromContext retrieves the authenticated user from the context
func GetUserFromContext(c echo.Context) *models.User {
	user, ok := c.Get(ContextKeyUser).(*models.User)
	if !ok {
		return nil
	}
	return user
}

// GetSessionFromContext retrieves the current session from the context
func GetSessionFromContext(c echo.Context) *models.Session {
	session, ok := c.Get(ContextKeySession).(*models.Session)
	if !ok {
		return nil
	}
	return session
}
