package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// pathID extracts the :id path parameter and rejects values that are not
// well-formed ObjectIDs before any service call, so malformed identifiers
// read as 404 rather than a database error.
func pathID(c echo.Context) (string, error) {
	id := c.Param("id")
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return "", echo.NewHTTPError(http.StatusNotFound, "invalid id")
	}
	return id, nil
}
