package usecase

import (
	"context"

	"bookstore/internal/entity"
)

// AuthorRepository defines the persistence contract for authors.
// Update is versioned: it only succeeds when the row still carries the
// RowVersion read at load time, and returns ErrConflict otherwise.
type AuthorRepository interface {
	List(ctx context.Context) ([]entity.Author, error)
	GetByID(ctx context.Context, id int64) (entity.Author, error)
	Create(ctx context.Context, a *entity.Author) error
	Update(ctx context.Context, a *entity.Author) error
	Delete(ctx context.Context, id int64) error
	CountBooks(ctx context.Context, authorID int64) (int, error)
}

// BookRepository defines the persistence contract for books.
// Update carries the same versioned semantics as AuthorRepository.Update.
type BookRepository interface {
	List(ctx context.Context) ([]entity.BookListing, error)
	GetByID(ctx context.Context, id int64) (entity.Book, error)
	Create(ctx context.Context, b *entity.Book) error
	Update(ctx context.Context, b *entity.Book) error
	Delete(ctx context.Context, id int64) error
}

// UserRepository is the credential store: identities, password hashes
// and role assignments.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User, roleName string) error
	GetByEmail(ctx context.Context, email string) (entity.User, error)
	GetByID(ctx context.Context, id string) (entity.User, error)
	RolesOf(ctx context.Context, userID string) ([]string, error)
}
