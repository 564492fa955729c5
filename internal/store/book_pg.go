package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookstore/internal/entity"
	"bookstore/internal/usecase"
)

type BookPG struct {
	db *pgxpool.Pool
}

func NewBookPG(db *pgxpool.Pool) *BookPG {
	return &BookPG{db: db}
}

func (r *BookPG) List(ctx context.Context) ([]entity.BookListing, error) {
	const query = `
	SELECT b.id, b.title, b.year, b.isbn, b.summary, b.image, b.price, b.author_id,
	       a.first_name || ' ' || a.last_name AS author_name
	FROM books b
	JOIN authors a ON a.id = b.author_id
	ORDER BY b.title
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []entity.BookListing
	for rows.Next() {
		var b entity.BookListing
		if err := rows.Scan(&b.ID, &b.Title, &b.Year, &b.ISBN, &b.Summary, &b.Image, &b.Price, &b.AuthorID, &b.AuthorName); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *BookPG) GetByID(ctx context.Context, id int64) (entity.Book, error) {
	const query = `
	SELECT id, title, year, isbn, summary, image, price, author_id, row_version, created_at, updated_at
	FROM books
	WHERE id = $1
	`
	var b entity.Book
	err := r.db.QueryRow(ctx, query, id).Scan(&b.ID, &b.Title, &b.Year, &b.ISBN, &b.Summary, &b.Image, &b.Price, &b.AuthorID, &b.RowVersion, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Book{}, usecase.ErrNotFound
		}
		return entity.Book{}, err
	}
	return b, nil
}

func (r *BookPG) Create(ctx context.Context, b *entity.Book) error {
	const query = `
	INSERT INTO books (title, year, isbn, summary, image, price, author_id)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING id, row_version, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, b.Title, b.Year, b.ISBN, b.Summary, b.Image, b.Price, b.AuthorID).
		Scan(&b.ID, &b.RowVersion, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return mapPgError(err)
	}
	return nil
}

// Update has the same versioned-commit contract as AuthorPG.Update.
// The author_id column is not part of the SET list, a book is never
// re-homed through an update.
func (r *BookPG) Update(ctx context.Context, b *entity.Book) error {
	const query = `
	UPDATE books
	SET title = $1, year = $2, isbn = $3, summary = $4, image = $5, price = $6,
	    row_version = row_version + 1, updated_at = now()
	WHERE id = $7 AND row_version = $8
	RETURNING row_version, updated_at
	`
	err := r.db.QueryRow(ctx, query, b.Title, b.Year, b.ISBN, b.Summary, b.Image, b.Price, b.ID, b.RowVersion).
		Scan(&b.RowVersion, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return usecase.ErrConflict
		}
		return mapPgError(err)
	}
	return nil
}

func (r *BookPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return mapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}
