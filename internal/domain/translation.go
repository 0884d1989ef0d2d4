package domain

import "time"

// Language is one of the two supported translation languages
type Language string

const (
	LanguageZH Language = "zh"
	LanguageEN Language = "en"
)

// Valid reports whether l is a supported language
func (l Language) Valid() bool {
	return l == LanguageZH || l == LanguageEN
}

// Translation represents a stored translation record
type Translation struct {
	ID             int64
	SourceText     string
	TranslatedText string
	SourceLang     Language
	TargetLang     Language
	OwnerID        *string // nil means anonymous (publicly visible)
	CreatedAt      time.Time
}

// Public reports whether the translation has no owner
func (t *Translation) Public() bool {
	return t.OwnerID == nil
}

// VisibleTo reports whether the translation may be shown to the given
// requester (nil = anonymous caller). Public rows are visible to
// anyone; owned rows only to their exact owner.
func (t *Translation) VisibleTo(requester *string) bool {
	if t.OwnerID == nil {
		return true
	}
	return requester != nil && *requester == *t.OwnerID
}

// TranslationWithFavorite is a Translation annotated with the favorite
// status of a particular requesting user. It is derived per query and
// never stored.
type TranslationWithFavorite struct {
	Translation
	IsFavorite bool
}
