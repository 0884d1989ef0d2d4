package postgres

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"phrasemark/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestFavoriteRepo_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewFavoriteRepo(db)

	createdAt := time.Now()
	mock.ExpectQuery("INSERT INTO favorites").
		WithArgs(int64(1), "user123").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(10, createdAt))

	marker, err := repo.Create(1, "user123")

	assert.NoError(t, err)
	assert.Equal(t, int64(10), marker.ID)
	assert.Equal(t, int64(1), marker.TranslationID)
	assert.Equal(t, "user123", marker.UserID)
	assert.Equal(t, createdAt, marker.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteRepo_Create_ConstraintViolations(t *testing.T) {
	tests := []struct {
		name          string
		driverError   error
		expectedError error
	}{
		{
			name:          "unique violation maps to already favorited",
			driverError:   &pq.Error{Code: "23505"},
			expectedError: domain.ErrAlreadyFavorited,
		},
		{
			name:          "foreign key violation maps to translation not found",
			driverError:   &pq.Error{Code: "23503"},
			expectedError: domain.ErrTranslationNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewFavoriteRepo(db)

			mock.ExpectQuery("INSERT INTO favorites").
				WithArgs(int64(1), "user123").
				WillReturnError(tt.driverError)

			marker, err := repo.Create(1, "user123")

			assert.ErrorIs(t, err, tt.expectedError)
			assert.Nil(t, marker)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestFavoriteRepo_Create_GenericError(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewFavoriteRepo(db)

	mock.ExpectQuery("INSERT INTO favorites").
		WillReturnError(fmt.Errorf("connection refused"))

	marker, err := repo.Create(1, "user123")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrAlreadyFavorited)
	assert.Nil(t, marker)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteRepo_Exists(t *testing.T) {
	query := `SELECT 1 FROM favorites WHERE translation_id = \$1 AND user_id = \$2 LIMIT 1`

	tests := []struct {
		name      string
		mockRows  *sqlmock.Rows
		mockError error
		expected  bool
		expectErr bool
	}{
		{
			name:     "marker exists",
			mockRows: sqlmock.NewRows([]string{"1"}).AddRow(1),
			expected: true,
		},
		{
			name:      "no marker",
			mockError: sql.ErrNoRows,
			expected:  false,
		},
		{
			name:      "database error",
			mockError: fmt.Errorf("connection refused"),
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewFavoriteRepo(db)

			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(int64(1), "user123").WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(int64(1), "user123").WillReturnRows(tt.mockRows)
			}

			exists, err := repo.Exists(1, "user123")

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, exists)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestFavoriteRepo_Delete(t *testing.T) {
	query := `DELETE FROM favorites WHERE translation_id = \$1 AND user_id = \$2`

	tests := []struct {
		name         string
		rowsAffected int64
		expected     bool
	}{
		{
			name:         "marker removed",
			rowsAffected: 1,
			expected:     true,
		},
		{
			name:         "nothing matched",
			rowsAffected: 0,
			expected:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewFavoriteRepo(db)

			mock.ExpectExec(query).
				WithArgs(int64(1), "user123").
				WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))

			removed, err := repo.Delete(1, "user123")

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, removed)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestFavoriteRepo_Delete_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewFavoriteRepo(db)

	mock.ExpectExec("DELETE FROM favorites").
		WillReturnError(fmt.Errorf("connection refused"))

	removed, err := repo.Delete(1, "user123")

	assert.Error(t, err)
	assert.False(t, removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteRepo_ListForUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewFavoriteRepo(db)

	now := time.Now()
	rows := sqlmock.NewRows(annotatedColumns).
		AddRow(1, "hello", "你好", "en", "zh", nil, now.Add(-2*time.Hour), true).
		AddRow(2, "goodbye", "再见", "en", "zh", "user123", now.Add(-time.Hour), true)

	// Ordered by the favorite's timestamp, filtered to the requested
	// user only
	mock.ExpectQuery(`SELECT .+, TRUE AS is_favorite FROM translations t JOIN favorites f ON f\.translation_id = t\.id WHERE f\.user_id = \$1 ORDER BY f\.created_at DESC, f\.id DESC LIMIT 50 OFFSET 0`).
		WithArgs("user123").
		WillReturnRows(rows)

	result, err := repo.ListForUser("user123", 50, 0)

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	for _, r := range result {
		assert.True(t, r.IsFavorite)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteRepo_ListForUser_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewFavoriteRepo(db)

	mock.ExpectQuery("SELECT .+ FROM translations t JOIN favorites f").
		WillReturnError(fmt.Errorf("connection refused"))

	result, err := repo.ListForUser("user123", 50, 0)

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}
