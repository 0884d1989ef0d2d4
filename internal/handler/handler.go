package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"time"

	"phrasemark/internal/domain"
	"phrasemark/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler bundles the services behind the HTTP API
type Handler struct {
	translationService *service.TranslationService
	favoriteService    *service.FavoriteService
	db                 *sql.DB
	logger             *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	translationService *service.TranslationService,
	favoriteService *service.FavoriteService,
	db *sql.DB,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		translationService: translationService,
		favoriteService:    favoriteService,
		db:                 db,
		logger:             logger,
	}
}

// RegisterRoutes registers all API routes
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/healthz", h.health)

	api := r.Group("/api")
	{
		api.POST("/translations", h.createTranslation)
		api.GET("/translations", h.listTranslations)
		api.GET("/translations/:id", h.getTranslation)

		api.POST("/favorites", h.createFavorite)
		api.DELETE("/favorites", h.deleteFavorite)
		api.GET("/favorites", h.listFavorites)
	}
}

func (h *Handler) health(c *gin.Context) {
	if err := h.db.Ping(); err != nil {
		h.logger.Error("Health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondError maps domain errors to HTTP status codes. Anything
// outside the known taxonomy is a 500 with a generic body.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrTranslationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrAlreadyFavorited):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// parsePagination reads limit/offset query params, applying the
// defaults when absent and rejecting out-of-range values
func parsePagination(c *gin.Context) (limit, offset int, err error) {
	limit = service.DefaultHistoryLimit
	offset = 0

	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return 0, 0, errors.New("limit must be a positive integer")
		}
	}
	if raw := c.Query("offset"); raw != "" {
		offset, err = strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return 0, 0, errors.New("offset must be a non-negative integer")
		}
	}
	return limit, offset, nil
}

// translationResponse is the JSON shape of a translation record
type translationResponse struct {
	ID             int64     `json:"id"`
	SourceText     string    `json:"source_text"`
	TranslatedText string    `json:"translated_text"`
	SourceLanguage string    `json:"source_language"`
	TargetLanguage string    `json:"target_language"`
	UserID         *string   `json:"user_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// annotatedResponse adds the requester-relative favorite flag
type annotatedResponse struct {
	translationResponse
	IsFavorite bool `json:"is_favorite"`
}

func toTranslationResponse(t *domain.Translation) translationResponse {
	return translationResponse{
		ID:             t.ID,
		SourceText:     t.SourceText,
		TranslatedText: t.TranslatedText,
		SourceLanguage: string(t.SourceLang),
		TargetLanguage: string(t.TargetLang),
		UserID:         t.OwnerID,
		CreatedAt:      t.CreatedAt,
	}
}

func toAnnotatedResponses(list []domain.TranslationWithFavorite) []annotatedResponse {
	result := make([]annotatedResponse, 0, len(list))
	for i := range list {
		result = append(result, annotatedResponse{
			translationResponse: toTranslationResponse(&list[i].Translation),
			IsFavorite:          list[i].IsFavorite,
		})
	}
	return result
}
