package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vidly/rental-system/internal/core/ports"
)

// MovieHandler handles HTTP requests for movie CRUD.
type MovieHandler struct {
	service ports.MovieService
}

func NewMovieHandler(service ports.MovieService) *MovieHandler {
	return &MovieHandler{service: service}
}

type movieRequest struct {
	Title           string  `json:"title" validate:"required,min=5,max=255"`
	GenreID         string  `json:"genreId" validate:"required"`
	NumberInStock   int     `json:"numberInStock" validate:"gte=0,lte=255"`
	DailyRentalRate float64 `json:"dailyRentalRate" validate:"gte=0,lte=255"`
}

func (r movieRequest) toInput() ports.MovieInput {
	return ports.MovieInput{
		Title:           r.Title,
		GenreID:         r.GenreID,
		NumberInStock:   r.NumberInStock,
		DailyRentalRate: r.DailyRentalRate,
	}
}

func (h *MovieHandler) List(c echo.Context) error {
	movies, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, movies)
}

func (h *MovieHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	movie, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, movie)
}

func (h *MovieHandler) Create(c echo.Context) error {
	var req movieRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	movie, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, movie)
}

func (h *MovieHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req movieRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	movie, err := h.service.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, movie)
}

func (h *MovieHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	movie, err := h.service.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, movie)
}
