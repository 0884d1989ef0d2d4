package repository

import (
	"phrasemark/internal/domain"
)

// TranslationRepository defines translation data operations
type TranslationRepository interface {
	Create(t *domain.Translation) (*domain.Translation, error)
	GetByID(id int64) (*domain.Translation, error)
	List(scope domain.UserScope, limit, offset int) ([]domain.TranslationWithFavorite, error)
}

// FavoriteRepository defines favorite marker data operations
type FavoriteRepository interface {
	Create(translationID int64, userID string) (*domain.FavoriteMarker, error)
	Exists(translationID int64, userID string) (bool, error)
	Delete(translationID int64, userID string) (bool, error)
	ListForUser(userID string, limit, offset int) ([]domain.TranslationWithFavorite, error)
}
