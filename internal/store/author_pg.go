package store

// Repository implementation (Postgres)

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookstore/internal/entity"
	"bookstore/internal/usecase"
)

type AuthorPG struct {
	db *pgxpool.Pool
}

func NewAuthorPG(db *pgxpool.Pool) *AuthorPG {
	return &AuthorPG{db: db}
}

func (r *AuthorPG) List(ctx context.Context) ([]entity.Author, error) {
	const query = `
	SELECT id, first_name, last_name, bio, row_version, created_at, updated_at
	FROM authors
	ORDER BY last_name, first_name
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var authors []entity.Author
	for rows.Next() {
		var a entity.Author
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Bio, &a.RowVersion, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return authors, nil
}

func (r *AuthorPG) GetByID(ctx context.Context, id int64) (entity.Author, error) {
	const query = `
	SELECT id, first_name, last_name, bio, row_version, created_at, updated_at
	FROM authors
	WHERE id = $1
	`
	var a entity.Author
	err := r.db.QueryRow(ctx, query, id).Scan(&a.ID, &a.FirstName, &a.LastName, &a.Bio, &a.RowVersion, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Author{}, usecase.ErrNotFound
		}
		return entity.Author{}, err
	}
	return a, nil
}

func (r *AuthorPG) Create(ctx context.Context, a *entity.Author) error {
	const query = `
	INSERT INTO authors (first_name, last_name, bio)
	VALUES ($1, $2, $3)
	RETURNING id, row_version, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, a.FirstName, a.LastName, a.Bio).
		Scan(&a.ID, &a.RowVersion, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return mapPgError(err)
	}
	return nil
}

// Update commits only when the row still carries the version loaded at
// read time. Zero matched rows means the row changed or vanished
// underneath us, surfaced as ErrConflict for the caller to resolve.
func (r *AuthorPG) Update(ctx context.Context, a *entity.Author) error {
	const query = `
	UPDATE authors
	SET first_name = $1, last_name = $2, bio = $3,
	    row_version = row_version + 1, updated_at = now()
	WHERE id = $4 AND row_version = $5
	RETURNING row_version, updated_at
	`
	err := r.db.QueryRow(ctx, query, a.FirstName, a.LastName, a.Bio, a.ID, a.RowVersion).
		Scan(&a.RowVersion, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return usecase.ErrConflict
		}
		return mapPgError(err)
	}
	return nil
}

func (r *AuthorPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return mapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

func (r *AuthorPG) CountBooks(ctx context.Context, authorID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM books WHERE author_id = $1`, authorID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
