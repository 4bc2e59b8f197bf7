package movie

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	moviesvc "movierental/service/movie"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc moviesvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /api/movies
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("movie list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /api/movies/:id
func (h *Controller) Detail(c echo.Context) error {
	m, err := h.Svc.Detail(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "movie not found"})
		}
		h.Log.Error("movie detail", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, m)
}

// POST /api/movies
func (h *Controller) Create(c echo.Context) error {
	var req MovieReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	m, err := h.Svc.Create(c.Request().Context(), req.Title, req.GenreID, req.NumberInStock, req.DailyRentalRate)
	if err != nil {
		if errors.Is(err, moviesvc.ErrGenreNotFound) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid genreId"})
		}
		h.Log.Error("movie create", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, m)
}

// PUT /api/movies/:id
func (h *Controller) Update(c echo.Context) error {
	var req MovieReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	m, err := h.Svc.Update(c.Request().Context(), c.Param("id"), req.Title, req.GenreID, req.NumberInStock, req.DailyRentalRate)
	if err != nil {
		switch {
		case errors.Is(err, moviesvc.ErrGenreNotFound):
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid genreId"})
		case errors.Is(err, sql.ErrNoRows):
			return c.JSON(http.StatusNotFound, echo.Map{"message": "movie not found"})
		default:
			h.Log.Error("movie update", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, m)
}

// DELETE /api/movies/:id  (admin)
func (h *Controller) Delete(c echo.Context) error {
	m, err := h.Svc.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "movie not found"})
		}
		h.Log.Error("movie delete", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, m)
}
