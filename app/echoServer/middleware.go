// app/echoServer/middleware.go
package echoServer

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	jwtutil "movierental/util/jwt"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func RegisterMiddlewares(e *echo.Echo) {

	e.Use(middleware.Recover())

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))

	e.Use(Slog())
}

func Slog() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			lat := time.Since(start).Milliseconds()

			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			slog.Info("http",
				"method", c.Request().Method,
				"path", c.Path(),
				"status", c.Response().Status,
				"latency_ms", lat,
				"req_id", rid,
				"ip", c.RealIP(),
				"ua", c.Request().UserAgent(),
			)
			return err
		}
	}
}

// RequireAuth gates protected routes on a verified x-auth-token. An absent
// token is 401, a present-but-bad one is 400. On success the identity is
// attached to the request context only; nothing outlives the request.
func RequireAuth(v *jwtutil.Verifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := v.Verify(c.Request().Header.Get("x-auth-token"))
			if err != nil {
				if errors.Is(err, jwtutil.ErrMissingToken) {
					return c.JSON(http.StatusUnauthorized, echo.Map{"message": "access denied, no token provided"})
				}
				return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid token"})
			}
			c.Set("user_id", claims.Subject)
			c.Set("is_admin", claims.IsAdmin)
			return next(c)
		}
	}
}

// RequireAdmin runs after RequireAuth and additionally demands the
// elevated claim. Destructive catalog operations sit behind it.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if isAdmin, _ := c.Get("is_admin").(bool); !isAdmin {
				return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
			}
			return next(c)
		}
	}
}
