package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"landmarks-backend/internal/geosearch"
	"landmarks-backend/internal/models"
)

// getLandmarks handles GET /get_landmarks?lat=<f>&lon=<f>&radius=<f>
//
// Success: 200 {"landmarks": [...]}. Failure: {"error": ...} with 400
// for bad input and 500 for provider failure. The provider is never
// called when validation fails.
func (h *Handlers) getLandmarks(c echo.Context) error {
	latParam := c.QueryParam("lat")
	lonParam := c.QueryParam("lon")
	if latParam == "" || lonParam == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "lat and lon parameters are required",
		})
	}

	lat, err := strconv.ParseFloat(latParam, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "lat must be a number",
		})
	}

	lon, err := strconv.ParseFloat(lonParam, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "lon must be a number",
		})
	}

	radius := float64(geosearch.MaxRadius)
	if radiusParam := c.QueryParam("radius"); radiusParam != "" {
		radius, err = strconv.ParseFloat(radiusParam, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "radius must be a number",
			})
		}
	}

	landmarks, err := h.search.SearchNearby(c.Request().Context(), lat, lon, radius)
	if err != nil {
		c.Logger().Error("geosearch error: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "landmark lookup failed",
		})
	}

	if landmarks == nil {
		landmarks = []models.Landmark{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"landmarks": landmarks,
	})
}
