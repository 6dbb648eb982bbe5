package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vidly/rental-system/internal/core/domain"
	"github.com/vidly/rental-system/internal/core/ports"
)

// ReturnHandler handles return processing.
type ReturnHandler struct {
	service ports.RentalService
}

func NewReturnHandler(service ports.RentalService) *ReturnHandler {
	return &ReturnHandler{service: service}
}

type processReturnRequest struct {
	CustomerID string `json:"customerId" validate:"required"`
	MovieID    string `json:"movieId" validate:"required"`
}

// Process handles POST /api/returns: closes the open rental for the
// customer/movie pair.
func (h *ReturnHandler) Process(c echo.Context) error {
	var req processReturnRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}

	rental, err := h.service.Return(c.Request().Context(), req.CustomerID, req.MovieID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRentalNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		case errors.Is(err, domain.ErrAlreadyReturned):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return err
	}

	return c.JSON(http.StatusOK, rental)
}
