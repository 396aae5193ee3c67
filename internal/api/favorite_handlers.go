package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"landmarks-backend/internal/auth"
	"landmarks-backend/internal/database"
	"landmarks-backend/internal/models"
)

// addFavorite handles POST /add_favorite
func (h *Handlers) addFavorite(c echo.Context) error {
	user := auth.GetUserFromContext(c)

	var req models.FavoriteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}
	if req.PageID <= 0 || req.Title == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "pageid and title are required",
		})
	}

	fav := &models.Favorite{
		UserID: user.ID,
		PageID: req.PageID,
		Title:  req.Title,
		Lat:    req.Lat,
		Lon:    req.Lon,
	}
	if err := h.favorites.Upsert(fav); err != nil {
		c.Logger().Error("add favorite error: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to save favorite",
		})
	}

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// removeFavorite handles POST /remove_favorite
func (h *Handlers) removeFavorite(c echo.Context) error {
	user := auth.GetUserFromContext(c)

	var req models.RemoveFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	if err := h.favorites.DeleteByPageID(user.ID, req.PageID); err != nil {
		if errors.Is(err, database.ErrFavoriteNotFound) {
			return c.JSON(http.StatusNotFound, map[string]bool{"success": false})
		}
		c.Logger().Error("remove favorite error: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to remove favorite",
		})
	}

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// getFavorites handles GET /get_favorites
func (h *Handlers) getFavorites(c echo.Context) error {
	user := auth.GetUserFromContext(c)

	favorites, err := h.favorites.ListByUserID(user.ID)
	if err != nil {
		c.Logger().Error("list favorites error: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to load favorites",
		})
	}

	landmarks := make([]models.Landmark, 0, len(favorites))
	for _, fav := range favorites {
		landmarks = append(landmarks, fav.Landmark())
	}

	return c.JSON(http.StatusOK, landmarks)
}
