package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vidly/rental-system/internal/core/domain"
	"github.com/vidly/rental-system/internal/core/ports"
)

// RentalHandler handles checkout and rental listing.
type RentalHandler struct {
	service ports.RentalService
}

func NewRentalHandler(service ports.RentalService) *RentalHandler {
	return &RentalHandler{service: service}
}

type createRentalRequest struct {
	MovieID    string `json:"movieId" validate:"required"`
	CustomerID string `json:"customerId" validate:"required"`
}

func (h *RentalHandler) List(c echo.Context) error {
	rentals, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rentals)
}

// Create handles POST /api/rentals: checks out a movie for a customer.
func (h *RentalHandler) Create(c echo.Context) error {
	var req createRentalRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}

	rental, err := h.service.Create(c.Request().Context(), req.MovieID, req.CustomerID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidMovie),
			errors.Is(err, domain.ErrInvalidCustomer),
			errors.Is(err, domain.ErrOutOfStock):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return err
	}

	return c.JSON(http.StatusCreated, rental)
}
