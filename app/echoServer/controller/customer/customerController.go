package customer

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"movierental/model"
	customersvc "movierental/service/customer"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc customersvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

type CustomerReq struct {
	Name   string `json:"name" validate:"required,min=5,max=50"`
	IsGold bool   `json:"isGold"`
	Phone  string `json:"phone" validate:"required,min=5,max=50"`
}

// GET /api/customers
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("customer list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /api/customers/:id
func (h *Controller) Detail(c echo.Context) error {
	cust, err := h.Svc.Detail(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "customer not found"})
		}
		h.Log.Error("customer detail", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, cust)
}

// POST /api/customers
func (h *Controller) Create(c echo.Context) error {
	var req CustomerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	cust := &model.Customer{Name: req.Name, IsGold: req.IsGold, Phone: req.Phone}
	if err := h.Svc.Create(c.Request().Context(), cust); err != nil {
		h.Log.Error("customer create", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, cust)
}

// PUT /api/customers/:id
func (h *Controller) Update(c echo.Context) error {
	var req CustomerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	cust, err := h.Svc.Update(c.Request().Context(), &model.Customer{
		ID: c.Param("id"), Name: req.Name, IsGold: req.IsGold, Phone: req.Phone,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "customer not found"})
		}
		h.Log.Error("customer update", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, cust)
}

// DELETE /api/customers/:id  (admin)
func (h *Controller) Delete(c echo.Context) error {
	cust, err := h.Svc.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "customer not found"})
		}
		h.Log.Error("customer delete", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, cust)
}
