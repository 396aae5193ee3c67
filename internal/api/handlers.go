package api

import (
	"html/template"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"landmarks-backend/internal/auth"
	"landmarks-backend/internal/database"
	"landmarks-backend/internal/geosearch"
)

// Handlers bundles the dependencies of all route handlers. It is built
// once at startup and threaded through route registration, so tests can
// swap in fakes (a stub Searcher in particular).
type Handlers struct {
	auth         *auth.Service
	favorites    *database.FavoriteRepo
	search       geosearch.Searcher
	loginLimiter *auth.RateLimiter
}

// NewHandlers creates the handler set
func NewHandlers(authSvc *auth.Service, favorites *database.FavoriteRepo, search geosearch.Searcher, loginLimiter *auth.RateLimiter) *Handlers {
	return &Handlers{
		auth:         authSvc,
		favorites:    favorites,
		search:       search,
		loginLimiter: loginLimiter,
	}
}

// Renderer adapts html/template to echo's Renderer interface
type Renderer struct {
	templates *template.Template
}

// NewRenderer wraps parsed templates for echo
func NewRenderer(templates *template.Template) *Renderer {
	return &Renderer{templates: templates}
}

// Render implements echo.Renderer
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// healthCheck handles GET /healthz
func healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
