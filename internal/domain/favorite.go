package domain

import "time"

// FavoriteMarker is a user's bookmark of a translation. At most one
// marker exists per (translation, user) pair.
type FavoriteMarker struct {
	ID            int64
	TranslationID int64
	UserID        string
	CreatedAt     time.Time
}
