package rental

import (
	"log/slog"
	"net/http"

	rs "movierental/service/rental"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc rs.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /api/rentals
func (h *Controller) Create(c echo.Context) error {
	var req CreateRentalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  echo.Map{"customerId": "required uuid", "movieId": "required uuid"},
		})
	}

	rental, err := h.Svc.Issue(c.Request().Context(), req.CustomerID, req.MovieID)
	if err != nil {
		switch rs.Code(err) {
		case rs.ErrInvalidInput:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid customerId/movieId"})
		case rs.ErrCustomerNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "customer not found"})
		case rs.ErrMovieNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "movie not found"})
		case rs.ErrNoStock:
			return c.JSON(http.StatusConflict, echo.Map{"message": "movie not in stock"})
		default:
			h.Log.Error("rental create", "err", err,
				"req_id", c.Response().Header().Get(echo.HeaderXRequestID))
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, rental)
}

// GET /api/rentals
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("rental list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}
