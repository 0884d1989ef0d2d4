package postgres

import (
	"database/sql"

	"phrasemark/internal/domain"

	sq "github.com/Masterminds/squirrel"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const translationColumns = "t.id, t.source_text, t.translated_text, t.source_language, t.target_language, t.user_id, t.created_at"

// TranslationRepo implements repository.TranslationRepository
type TranslationRepo struct {
	db *sql.DB
}

// NewTranslationRepo creates a new translation repository
func NewTranslationRepo(db *sql.DB) *TranslationRepo {
	return &TranslationRepo{db: db}
}

// Create inserts a translation and returns it with the assigned id
// and timestamp
func (r *TranslationRepo) Create(t *domain.Translation) (*domain.Translation, error) {
	var owner sql.NullString
	if t.OwnerID != nil {
		owner = sql.NullString{String: *t.OwnerID, Valid: true}
	}

	query, args, err := psql.
		Insert("translations").
		Columns("source_text", "translated_text", "source_language", "target_language", "user_id").
		Values(t.SourceText, t.TranslatedText, string(t.SourceLang), string(t.TargetLang), owner).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	stored := *t
	if err := r.db.QueryRow(query, args...).Scan(&stored.ID, &stored.CreatedAt); err != nil {
		return nil, err
	}
	return &stored, nil
}

// GetByID returns the translation with the given id, or nil if no
// such row exists
func (r *TranslationRepo) GetByID(id int64) (*domain.Translation, error) {
	query, args, err := psql.
		Select(translationColumns).
		From("translations t").
		Where(sq.Eq{"t.id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var t domain.Translation
	var owner sql.NullString
	err = r.db.QueryRow(query, args...).Scan(
		&t.ID, &t.SourceText, &t.TranslatedText, &t.SourceLang, &t.TargetLang, &owner, &t.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if owner.Valid {
		t.OwnerID = &owner.String
	}
	return &t, nil
}

// List returns translations matching the scope, newest first, with
// the favorite annotation computed for the scope's user (always false
// unless the scope names an owner). The left join keeps each
// translation in the result exactly once.
func (r *TranslationRepo) List(scope domain.UserScope, limit, offset int) ([]domain.TranslationWithFavorite, error) {
	q := psql.
		Select(translationColumns).
		From("translations t").
		OrderBy("t.created_at DESC", "t.id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	switch scope.Kind {
	case domain.ScopeOwner:
		q = q.Column("f.id IS NOT NULL AS is_favorite").
			LeftJoin("favorites f ON f.translation_id = t.id AND f.user_id = ?", scope.ID).
			Where(sq.Eq{"t.user_id": scope.ID})
	case domain.ScopeAnonymous:
		q = q.Column("FALSE AS is_favorite").
			Where(sq.Eq{"t.user_id": nil})
	default:
		q = q.Column("FALSE AS is_favorite")
	}

	query, args, err := q.ToSql()
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

// scanAnnotated reads rows shaped as translationColumns + is_favorite
func scanAnnotated(rows *sql.Rows) ([]domain.TranslationWithFavorite, error) {
	var result []domain.TranslationWithFavorite
	for rows.Next() {
		var t domain.TranslationWithFavorite
		var owner sql.NullString
		if err := rows.Scan(
			&t.ID, &t.SourceText, &t.TranslatedText, &t.SourceLang, &t.TargetLang, &owner, &t.CreatedAt, &t.IsFavorite,
		); err != nil {
			return nil, err
		}
		if owner.Valid {
			t.OwnerID = &owner.String
		}
		result = append(result, t)
	}
	return result, rows.Err()
}
