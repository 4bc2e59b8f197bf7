package echoServer

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwtutil "movierental/util/jwt"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func callGate(t *testing.T, token string, mws ...echo.MiddlewareFunc) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/returns", nil)
	if token != "" {
		req.Header.Set("x-auth-token", token)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	require.NoError(t, h(c))
	return rec, c
}

func TestRequireAuth_NoToken(t *testing.T) {
	rec, _ := callGate(t, "", RequireAuth(jwtutil.NewVerifier(secret)))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_BadToken(t *testing.T) {
	rec, _ := callGate(t, "garbage", RequireAuth(jwtutil.NewVerifier(secret)))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequireAuth_ValidToken(t *testing.T) {
	tok, err := jwtutil.Issue(secret, "user-1", true, time.Hour)
	require.NoError(t, err)

	rec, c := callGate(t, tok, RequireAuth(jwtutil.NewVerifier(secret)))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "user-1", c.Get("user_id"))
	require.Equal(t, true, c.Get("is_admin"))
}

func TestRequireAdmin_Forbidden(t *testing.T) {
	tok, err := jwtutil.Issue(secret, "user-1", false, time.Hour)
	require.NoError(t, err)

	rec, _ := callGate(t, tok, RequireAuth(jwtutil.NewVerifier(secret)), RequireAdmin())
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAdmin_Allowed(t *testing.T) {
	tok, err := jwtutil.Issue(secret, "admin-1", true, time.Hour)
	require.NoError(t, err)

	rec, _ := callGate(t, tok, RequireAuth(jwtutil.NewVerifier(secret)), RequireAdmin())
	require.Equal(t, http.StatusOK, rec.Code)
}
