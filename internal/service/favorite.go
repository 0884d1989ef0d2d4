package service

import (
	"fmt"

	"phrasemark/internal/domain"
	"phrasemark/internal/repository"

	"go.uber.org/zap"
)

// FavoriteService handles favorite marker creation, deletion and
// listing
type FavoriteService struct {
	favoriteRepo    repository.FavoriteRepository
	translationRepo repository.TranslationRepository
	logger          *zap.Logger
}

// NewFavoriteService creates a new favorite service
func NewFavoriteService(
	favoriteRepo repository.FavoriteRepository,
	translationRepo repository.TranslationRepository,
	logger *zap.Logger,
) *FavoriteService {
	return &FavoriteService{
		favoriteRepo:    favoriteRepo,
		translationRepo: translationRepo,
		logger:          logger,
	}
}

// Create marks a translation as a favorite of the user. The
// translation must exist and the pair must not already be favorited;
// the store's uniqueness constraint backstops the duplicate check
// under concurrent identical requests.
func (s *FavoriteService) Create(translationID int64, userID string) (*domain.FavoriteMarker, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}

	t, err := s.translationRepo.GetByID(translationID)
	if err != nil {
		s.logger.Error("Failed to check translation existence", zap.Int64("translation_id", translationID), zap.Error(err))
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrTranslationNotFound
	}

	exists, err := s.favoriteRepo.Exists(translationID, userID)
	if err != nil {
		s.logger.Error("Failed to check existing favorite", zap.Int64("translation_id", translationID), zap.Error(err))
		return nil, err
	}
	if exists {
		return nil, domain.ErrAlreadyFavorited
	}

	marker, err := s.favoriteRepo.Create(translationID, userID)
	if err != nil {
		if err == domain.ErrAlreadyFavorited || err == domain.ErrTranslationNotFound {
			return nil, err
		}
		s.logger.Error("Failed to create favorite", zap.Int64("translation_id", translationID), zap.Error(err))
		return nil, err
	}
	return marker, nil
}

// Delete removes the user's marker for the translation and reports
// whether one existed. A missing translation, a never-favorited pair
// and another user's marker all yield false, never an error.
func (s *FavoriteService) Delete(translationID int64, userID string) (bool, error) {
	if userID == "" {
		return false, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}

	removed, err := s.favoriteRepo.Delete(translationID, userID)
	if err != nil {
		s.logger.Error("Failed to delete favorite", zap.Int64("translation_id", translationID), zap.Error(err))
		return false, err
	}
	return removed, nil
}

// Favorites returns the user's favorited translations ordered by when
// they were favorited, newest first. Every entry has IsFavorite set.
func (s *FavoriteService) Favorites(userID string, limit, offset int) ([]domain.TranslationWithFavorite, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if offset < 0 {
		offset = 0
	}

	result, err := s.favoriteRepo.ListForUser(userID, limit, offset)
	if err != nil {
		s.logger.Error("Failed to list favorites", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return result, nil
}
