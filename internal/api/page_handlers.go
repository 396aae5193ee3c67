package api

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"landmarks-backend/internal/auth"
	"landmarks-backend/internal/models"
)

// pageData is passed to every page template
type pageData struct {
	User       *models.User
	Error      string
	Next       string
	Registered bool
}

// homePage handles GET /
func (h *Handlers) homePage(c echo.Context) error {
	return c.Render(http.StatusOK, "index.html", pageData{
		User: auth.GetUserFromContext(c),
	})
}

// registerPage handles GET /register
func (h *Handlers) registerPage(c echo.Context) error {
	return c.Render(http.StatusOK, "register.html", pageData{
		Error: c.QueryParam("error"),
	})
}

// registerSubmit handles POST /register
func (h *Handlers) registerSubmit(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return redirectWithError(c, "/register", "invalid form submission")
	}

	if _, err := h.auth.Register(req.Username, req.Password); err != nil {
		switch {
		case errors.Is(err, auth.ErrUsernameTaken):
			return redirectWithError(c, "/register", "username already taken")
		case errors.Is(err, auth.ErrWeakCredentials):
			return redirectWithError(c, "/register", "username must be at least 3 and password at least 4 characters")
		default:
			c.Logger().Error("register error: ", err)
			return redirectWithError(c, "/register", "registration failed, try again")
		}
	}

	return c.Redirect(http.StatusFound, "/login?registered=1")
}

// loginPage handles GET /login
func (h *Handlers) loginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", pageData{
		Error:      c.QueryParam("error"),
		Next:       sanitizeNext(c.QueryParam("next")),
		Registered: c.QueryParam("registered") != "",
	})
}

// loginSubmit handles POST /login
func (h *Handlers) loginSubmit(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return redirectWithError(c, "/login", "invalid form submission")
	}
	next := sanitizeNext(c.FormValue("next"))

	resp, err := h.auth.Login(req, c.RealIP(), c.Request().UserAgent())
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			target := "/login?error=" + url.QueryEscape("invalid username or password")
			if next != "/" {
				target += "&next=" + url.QueryEscape(next)
			}
			return c.Redirect(http.StatusFound, target)
		}
		c.Logger().Error("login error: ", err)
		return redirectWithError(c, "/login", "login failed, try again")
	}

	h.loginLimiter.RecordSuccess(c.RealIP())

	// Set token in cookie (HttpOnly for security)
	c.SetCookie(&http.Cookie{
		Name:     auth.CookieName,
		Value:    resp.Token,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.Request().TLS != nil, // Secure if HTTPS
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(h.auth.SessionTTL().Seconds()),
	})

	return c.Redirect(http.StatusFound, next)
}

// logoutPage handles GET /logout
func (h *Handlers) logoutPage(c echo.Context) error {
	if token := auth.TokenFromRequest(c); token != "" {
		if err := h.auth.Logout(token); err != nil {
			c.Logger().Error("logout error: ", err)
		}
	}

	// Clear cookie
	c.SetCookie(&http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	return c.Redirect(http.StatusFound, "/")
}

func redirectWithError(c echo.Context, path, msg string) error {
	return c.Redirect(http.StatusFound, path+"?error="+url.QueryEscape(msg))
}

// sanitizeNext keeps post-login redirects on this site. Only local
// absolute paths are accepted; anything else falls back to the home page.
func sanitizeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/"
	}
	return next
}
