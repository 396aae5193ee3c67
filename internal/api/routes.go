package api

import (
	"github.com/labstack/echo/v4"

	"landmarks-backend/internal/auth"
)

// RegisterRoutes sets up all routes
func RegisterRoutes(e *echo.Echo, h *Handlers) {
	// Health check (public)
	e.GET("/healthz", healthCheck)

	// Pages
	e.GET("/", h.homePage, auth.OptionalAuth(h.auth))
	e.GET("/register", h.registerPage)
	e.POST("/register", h.registerSubmit)
	e.GET("/login", h.loginPage)
	e.POST("/login", h.loginSubmit, h.loginLimiter.Middleware())
	e.GET("/logout", h.logoutPage, auth.RequirePageAuth(h.auth))

	// Landmark lookup (public JSON)
	e.GET("/get_landmarks", h.getLandmarks)

	// Favorites (session-gated JSON)
	favorites := e.Group("", auth.RequireAuth(h.auth))
	favorites.POST("/add_favorite", h.addFavorite)
	favorites.POST("/remove_favorite", h.removeFavorite)
	favorites.GET("/get_favorites", h.getFavorites)
}
