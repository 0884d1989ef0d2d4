package service

import (
	"fmt"
	"strings"

	"phrasemark/internal/domain"
	"phrasemark/internal/repository"

	"go.uber.org/zap"
)

// DefaultHistoryLimit is the page size used when a listing request
// does not specify one
const DefaultHistoryLimit = 50

// TranslationService handles translation creation and visibility-aware
// reads
type TranslationService struct {
	translationRepo repository.TranslationRepository
	translator      *Translator
	logger          *zap.Logger
}

// NewTranslationService creates a new translation service
func NewTranslationService(
	translationRepo repository.TranslationRepository,
	translator *Translator,
	logger *zap.Logger,
) *TranslationService {
	return &TranslationService{
		translationRepo: translationRepo,
		translator:      translator,
		logger:          logger,
	}
}

// Translate validates the request, produces the mock translation and
// persists the record. A nil owner stores an anonymous (public)
// translation.
func (s *TranslationService) Translate(sourceText string, sourceLang, targetLang domain.Language, owner *string) (*domain.Translation, error) {
	if strings.TrimSpace(sourceText) == "" {
		return nil, fmt.Errorf("%w: source text cannot be empty", domain.ErrInvalidInput)
	}
	if !sourceLang.Valid() || !targetLang.Valid() {
		return nil, fmt.Errorf("%w: language must be one of zh, en", domain.ErrInvalidInput)
	}
	if sourceLang == targetLang {
		return nil, fmt.Errorf("%w: source and target language must differ", domain.ErrInvalidInput)
	}

	t := &domain.Translation{
		SourceText:     sourceText,
		TranslatedText: s.translator.Translate(sourceText, sourceLang, targetLang),
		SourceLang:     sourceLang,
		TargetLang:     targetLang,
		OwnerID:        owner,
	}

	stored, err := s.translationRepo.Create(t)
	if err != nil {
		s.logger.Error("Failed to persist translation", zap.Error(err))
		return nil, err
	}
	return stored, nil
}

// GetByID returns the translation if it exists and is visible to the
// requester, nil otherwise. An owned translation hidden from the
// requester yields the same nil result as a missing row, so private
// records do not leak their existence.
func (s *TranslationService) GetByID(id int64, requester *string) (*domain.Translation, error) {
	t, err := s.translationRepo.GetByID(id)
	if err != nil {
		s.logger.Error("Failed to fetch translation", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	if t == nil || !t.VisibleTo(requester) {
		return nil, nil
	}
	return t, nil
}

// History returns translations covered by the scope, newest first.
// Favorites are annotated only when the scope names an owner; for the
// all-users and anonymous scopes is_favorite is always false.
func (s *TranslationService) History(scope domain.UserScope, limit, offset int) ([]domain.TranslationWithFavorite, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if offset < 0 {
		offset = 0
	}

	result, err := s.translationRepo.List(scope, limit, offset)
	if err != nil {
		s.logger.Error("Failed to list translations", zap.Error(err))
		return nil, err
	}
	return result, nil
}
