package testutil

import (
	"phrasemark/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockTranslationRepository is a mock for TranslationRepository
type MockTranslationRepository struct {
	mock.Mock
}

func (m *MockTranslationRepository) Create(t *domain.Translation) (*domain.Translation, error) {
	args := m.Called(t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Translation), args.Error(1)
}

func (m *MockTranslationRepository) GetByID(id int64) (*domain.Translation, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Translation), args.Error(1)
}

func (m *MockTranslationRepository) List(scope domain.UserScope, limit, offset int) ([]domain.TranslationWithFavorite, error) {
	args := m.Called(scope, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TranslationWithFavorite), args.Error(1)
}

// MockFavoriteRepository is a mock for FavoriteRepository
type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Create(translationID int64, userID string) (*domain.FavoriteMarker, error) {
	args := m.Called(translationID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FavoriteMarker), args.Error(1)
}

func (m *MockFavoriteRepository) Exists(translationID int64, userID string) (bool, error) {
	args := m.Called(translationID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteRepository) Delete(translationID int64, userID string) (bool, error) {
	args := m.Called(translationID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteRepository) ListForUser(userID string, limit, offset int) ([]domain.TranslationWithFavorite, error) {
	args := m.Called(userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TranslationWithFavorite), args.Error(1)
}
