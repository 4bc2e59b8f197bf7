package auth_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"movierental/app/echoServer/controller/auth"
	"movierental/app/echoServer/validation"
	"movierental/model"
	authsvc "movierental/service/auth"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type svcMock struct {
	registerFn func(ctx context.Context, req model.RegisterReq) (*model.User, string, error)
	loginFn    func(ctx context.Context, req model.LoginReq) (*model.User, string, error)
}

var _ authsvc.Service = (*svcMock)(nil)

func (m *svcMock) Register(ctx context.Context, req model.RegisterReq) (*model.User, string, error) {
	if m.registerFn == nil {
		return &model.User{ID: "u-1"}, "tok", nil
	}
	return m.registerFn(ctx, req)
}

func (m *svcMock) Login(ctx context.Context, req model.LoginReq) (*model.User, string, error) {
	if m.loginFn == nil {
		return &model.User{ID: "u-1"}, "tok", nil
	}
	return m.loginFn(ctx, req)
}

// call runs a handler on an echo instance configured like main: the
// request validator is the echo-registered one, not a controller field.
func call(t *testing.T, svc authsvc.Service, h func(*auth.Controller) echo.HandlerFunc, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()

	ct := &auth.Controller{Svc: svc, Log: slog.New(slog.NewTextHandler(io.Discard, nil))}

	e := echo.New()
	e.Validator = validation.New()
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, h(ct)(e.NewContext(req, rec))
}

func register(ct *auth.Controller) echo.HandlerFunc { return ct.Register }
func login(ct *auth.Controller) echo.HandlerFunc    { return ct.Login }

func TestRegister_ValidatesViaEchoValidator(t *testing.T) {
	// email missing: must be rejected by the registered validator
	_, err := call(t, &svcMock{
		registerFn: func(ctx context.Context, req model.RegisterReq) (*model.User, string, error) {
			t.Fatal("service must not be reached on invalid payload")
			return nil, "", nil
		},
	}, register, `{"name":"Moishe Pippik","password":"supersecret"}`)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, http.StatusBadRequest, he.Code)
}

func TestRegister_Success(t *testing.T) {
	rec, err := call(t, &svcMock{}, register,
		`{"name":"Moishe Pippik","email":"user@example.com","password":"supersecret"}`)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "tok", rec.Header().Get("x-auth-token"))
}

func TestLogin_ValidatesViaEchoValidator(t *testing.T) {
	_, err := call(t, &svcMock{}, login, `{"email":"not-an-email","password":"pw"}`)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, http.StatusBadRequest, he.Code)
}

func TestLogin_InvalidCreds(t *testing.T) {
	_, err := call(t, &svcMock{
		loginFn: func(ctx context.Context, req model.LoginReq) (*model.User, string, error) {
			return nil, "", authsvc.ErrInvalidCreds
		},
	}, login, `{"email":"user@example.com","password":"wrong"}`)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, http.StatusUnauthorized, he.Code)
}
