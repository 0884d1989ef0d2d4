package handler

import (
	"net/http"
	"strconv"
	"time"

	"phrasemark/internal/domain"

	"github.com/gin-gonic/gin"
)

type createFavoriteRequest struct {
	TranslationID int64  `json:"translation_id"`
	UserID        string `json:"user_id"`
}

type favoriteResponse struct {
	ID            int64     `json:"id"`
	TranslationID int64     `json:"translation_id"`
	UserID        string    `json:"user_id"`
	CreatedAt     time.Time `json:"created_at"`
}

func toFavoriteResponse(m *domain.FavoriteMarker) favoriteResponse {
	return favoriteResponse{
		ID:            m.ID,
		TranslationID: m.TranslationID,
		UserID:        m.UserID,
		CreatedAt:     m.CreatedAt,
	}
}

// createFavorite handles POST /api/favorites
func (h *Handler) createFavorite(c *gin.Context) {
	var req createFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	marker, err := h.favoriteService.Create(req.TranslationID, req.UserID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toFavoriteResponse(marker))
}

// deleteFavorite handles DELETE /api/favorites. The response carries
// a success flag instead of an error: deleting a marker that was
// never there is not a failure.
func (h *Handler) deleteFavorite(c *gin.Context) {
	translationID, err := strconv.ParseInt(c.Query("translation_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "translation_id must be an integer"})
		return
	}
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	removed, err := h.favoriteService.Delete(translationID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": removed})
}

// listFavorites handles GET /api/favorites
func (h *Handler) listFavorites(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	limit, offset, err := parsePagination(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list, err := h.favoriteService.Favorites(userID, limit, offset)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorites": toAnnotatedResponses(list)})
}
