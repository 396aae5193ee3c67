package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"landmarks-backend/internal/models"
)

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func TestRequireAuth_NoToken(t *testing.T) {
	svc := newTestService(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/get_favorites", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := RequireAuth(svc)(okHandler)(c)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"error": "authentication required"}`, rec.Body.String())
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	svc := newTestService(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/get_favorites", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "bogus"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := RequireAuth(svc)(okHandler)(c)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_ValidToken(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Register("alice", "pw123")
	require.NoError(t, err)
	resp, err := svc.Login(models.LoginRequest{Username: "alice", Password: "pw123"}, "", "")
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/get_favorites", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: resp.Token})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handlerErr := RequireAuth(svc)(func(c echo.Context) error {
		user := GetUserFromContext(c)
		require.NotNil(t, user)
		require.Equal(t, "alice", user.Username)
		require.NotNil(t, GetSessionFromContext(c))
		return c.String(http.StatusOK, "ok")
	})(c)
	require.NoError(t, handlerErr)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAuth_BearerHeader(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Register("alice", "pw123")
	require.NoError(t, err)
	resp, err := svc.Login(models.LoginRequest{Username: "alice", Password: "pw123"}, "", "")
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/get_favorites", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err = RequireAuth(svc)(okHandler)(c)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRequirePageAuth_RedirectsToLogin(t *testing.T) {
	svc := newTestService(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/logout")

	err := RequirePageAuth(svc)(okHandler)(c)
	require.NoError(t, err)
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/login?next=%2Flogout", rec.Header().Get("Location"))
}

func TestOptionalAuth_ContinuesWithoutToken(t *testing.T) {
	svc := newTestService(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := OptionalAuth(svc)(func(c echo.Context) error {
		require.Nil(t, GetUserFromContext(c))
		return c.String(http.StatusOK, "ok")
	})(c)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)
}
