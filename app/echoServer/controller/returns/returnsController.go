package returns

import (
	"log/slog"
	"net/http"

	"movierental/app/echoServer/jwtx"
	rs "movierental/service/rental"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc rs.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /api/returns
func (h *Controller) Create(c echo.Context) error {
	var req ReturnReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  echo.Map{"customerId": "required uuid", "movieId": "required uuid"},
		})
	}

	rental, warnings, err := h.Svc.Return(c.Request().Context(), req.CustomerID, req.MovieID)
	if err != nil {
		switch rs.Code(err) {
		case rs.ErrInvalidInput:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid customerId/movieId"})
		case rs.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "no rental found for this customer/movie"})
		case rs.ErrAlreadyReturned:
			return c.JSON(http.StatusConflict, echo.Map{"message": "rental already processed"})
		default:
			h.Log.Error("rental return", "err", err,
				"req_id", c.Response().Header().Get(echo.HeaderXRequestID))
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}

	uid, _ := jwtx.UserIDFromContext(c)
	h.Log.Info("rental returned",
		"rental_id", rental.ID,
		"customer_id", rental.Customer.ID,
		"movie_id", rental.Movie.ID,
		"by_user", uid,
	)

	return c.JSON(http.StatusOK, ReturnResp{
		Customer:     rental.Customer,
		Movie:        rental.Movie,
		DateOut:      rental.DateOut,
		DateReturned: *rental.DateReturned,
		RentalFee:    *rental.RentalFee,
		Warnings:     warnings,
	})
}
