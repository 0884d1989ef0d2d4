package domain

import "errors"

var (
	// ErrInvalidInput marks a request rejected before reaching storage
	ErrInvalidInput = errors.New("invalid input")

	// ErrTranslationNotFound is returned when favoriting a translation
	// that does not exist
	ErrTranslationNotFound = errors.New("translation not found")

	// ErrAlreadyFavorited is returned when a (translation, user) pair
	// is favorited twice, whether caught by the service check or by
	// the store uniqueness constraint
	ErrAlreadyFavorited = errors.New("already favorited")
)
