package postgres

import (
	"database/sql"

	"phrasemark/internal/domain"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"
)

// Postgres error codes surfaced by the favorites constraints
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// FavoriteRepo implements repository.FavoriteRepository
type FavoriteRepo struct {
	db *sql.DB
}

// NewFavoriteRepo creates a new favorite repository
func NewFavoriteRepo(db *sql.DB) *FavoriteRepo {
	return &FavoriteRepo{db: db}
}

// Create inserts a favorite marker. The unique constraint on
// (translation_id, user_id) closes the duplicate race between
// concurrent identical requests; its violation is reported as
// domain.ErrAlreadyFavorited, same as the service-level check. A
// foreign key violation means the translation vanished between check
// and insert and maps to domain.ErrTranslationNotFound.
func (r *FavoriteRepo) Create(translationID int64, userID string) (*domain.FavoriteMarker, error) {
	query, args, err := psql.
		Insert("favorites").
		Columns("translation_id", "user_id").
		Values(translationID, userID).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	m := domain.FavoriteMarker{TranslationID: translationID, UserID: userID}
	if err := r.db.QueryRow(query, args...).Scan(&m.ID, &m.CreatedAt); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch string(pqErr.Code) {
			case pgUniqueViolation:
				return nil, domain.ErrAlreadyFavorited
			case pgForeignKeyViolation:
				return nil, domain.ErrTranslationNotFound
			}
		}
		return nil, err
	}
	return &m, nil
}

// Exists reports whether the user already has a marker for the
// translation
func (r *FavoriteRepo) Exists(translationID int64, userID string) (bool, error) {
	query, args, err := psql.
		Select("1").
		From("favorites").
		Where(sq.Eq{"translation_id": translationID, "user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, err
	}

	var one int
	err = r.db.QueryRow(query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes the marker matching both fields exactly and reports
// whether a row was removed. Markers of other users or translations
// are never touched.
func (r *FavoriteRepo) Delete(translationID int64, userID string) (bool, error) {
	query, args, err := psql.
		Delete("favorites").
		Where(sq.Eq{"translation_id": translationID, "user_id": userID}).
		ToSql()
	if err != nil {
		return false, err
	}

	result, err := r.db.Exec(query, args...)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// ListForUser returns the translations the user has favorited,
// ordered by the favorite's creation time (newest first), not the
// translation's
func (r *FavoriteRepo) ListForUser(userID string, limit, offset int) ([]domain.TranslationWithFavorite, error) {
	query, args, err := psql.
		Select(translationColumns).
		Column("TRUE AS is_favorite").
		From("translations t").
		Join("favorites f ON f.translation_id = t.id").
		Where(sq.Eq{"f.user_id": userID}).
		OrderBy("f.created_at DESC", "f.id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAnnotated(rows)
}
