package testutil

import (
	"time"

	"phrasemark/internal/domain"
)

// NewTestTranslation creates a translation for testing. A nil owner
// makes it anonymous.
func NewTestTranslation(id int64, sourceText, translatedText string, owner *string) *domain.Translation {
	return &domain.Translation{
		ID:             id,
		SourceText:     sourceText,
		TranslatedText: translatedText,
		SourceLang:     domain.LanguageEN,
		TargetLang:     domain.LanguageZH,
		OwnerID:        owner,
		CreatedAt:      time.Now(),
	}
}

// NewTestMarker creates a favorite marker for testing
func NewTestMarker(id, translationID int64, userID string) *domain.FavoriteMarker {
	return &domain.FavoriteMarker{
		ID:            id,
		TranslationID: translationID,
		UserID:        userID,
		CreatedAt:     time.Now(),
	}
}

// StringPtr returns a pointer to s
func StringPtr(s string) *string {
	return &s
}
