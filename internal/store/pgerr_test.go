package store

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"bookstore/internal/usecase"
)

func TestMapPgError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "unique violation",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: "books_isbn_key"},
			want: usecase.ErrDuplicate,
		},
		{
			name: "foreign key violation",
			err:  &pgconn.PgError{Code: "23503", ConstraintName: "books_author_id_fkey"},
			want: usecase.ErrInvalidReference,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapPgError(tt.err)
			assert.ErrorIs(t, got, tt.want)
			assert.Contains(t, got.Error(), "key", "constraint name kept for diagnostics")
		})
	}

	t.Run("other errors pass through", func(t *testing.T) {
		err := errors.New("connection reset")
		assert.Equal(t, err, mapPgError(err))
	})

	t.Run("other pg codes pass through", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "57014"}
		assert.Equal(t, error(pgErr), mapPgError(pgErr))
	})
}
