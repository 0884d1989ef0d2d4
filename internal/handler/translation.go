package handler

import (
	"net/http"
	"strconv"

	"phrasemark/internal/domain"

	"github.com/gin-gonic/gin"
)

type createTranslationRequest struct {
	SourceText     string  `json:"source_text"`
	SourceLanguage string  `json:"source_language"`
	TargetLanguage string  `json:"target_language"`
	UserID         *string `json:"user_id"`
}

// createTranslation handles POST /api/translations
func (h *Handler) createTranslation(c *gin.Context) {
	var req createTranslationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	t, err := h.translationService.Translate(
		req.SourceText,
		domain.Language(req.SourceLanguage),
		domain.Language(req.TargetLanguage),
		req.UserID,
	)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toTranslationResponse(t))
}

// listTranslations handles GET /api/translations. The owner filter
// has three states: no user params at all lists everything,
// anonymous=true (or an empty user_id) lists only ownerless rows, and
// a concrete user_id lists that user's own translations with their
// favorite flags.
func (h *Handler) listTranslations(c *gin.Context) {
	limit, offset, err := parsePagination(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	scope := domain.AllUsers()
	if c.Query("anonymous") == "true" {
		scope = domain.AnonymousUsers()
	} else if userID, ok := c.GetQuery("user_id"); ok {
		if userID == "" {
			scope = domain.AnonymousUsers()
		} else {
			scope = domain.Owner(userID)
		}
	}

	list, err := h.translationService.History(scope, limit, offset)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"translations": toAnnotatedResponses(list)})
}

// getTranslation handles GET /api/translations/:id. A translation
// hidden from the requester is indistinguishable from a missing one.
func (h *Handler) getTranslation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}

	var requester *string
	if userID := c.Query("user_id"); userID != "" {
		requester = &userID
	}

	t, err := h.translationService.GetByID(id, requester)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if t == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "translation not found"})
		return
	}

	c.JSON(http.StatusOK, toTranslationResponse(t))
}
