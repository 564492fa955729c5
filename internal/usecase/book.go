package usecase

import (
	"context"
	"errors"

	"bookstore/internal/entity"
)

type BookInput struct {
	Title    string
	Year     int
	ISBN     string
	Summary  string
	Image    string
	Price    float64
	AuthorID int64
}

// BookUpdateInput carries the mutable book fields. The author foreign
// key is deliberately absent: an update never re-homes a book.
type BookUpdateInput struct {
	ID      int64
	Title   string
	Year    int
	ISBN    string
	Summary string
	Image   string
	Price   float64
}

type BookService struct {
	repo BookRepository
}

func NewBookService(repo BookRepository) *BookService {
	return &BookService{repo: repo}
}

func (s *BookService) List(ctx context.Context) ([]entity.BookListing, error) {
	return s.repo.List(ctx)
}

func (s *BookService) Get(ctx context.Context, id int64) (entity.Book, error) {
	return s.repo.GetByID(ctx, id)
}

// Create relies on the store for ISBN uniqueness and the author foreign
// key, both surface as ErrDuplicate / ErrInvalidReference.
func (s *BookService) Create(ctx context.Context, in BookInput) (entity.Book, error) {
	book := entity.Book{
		Title:    in.Title,
		Year:     in.Year,
		ISBN:     in.ISBN,
		Summary:  in.Summary,
		Image:    in.Image,
		Price:    in.Price,
		AuthorID: in.AuthorID,
	}
	if err := s.repo.Create(ctx, &book); err != nil {
		return entity.Book{}, err
	}
	return book, nil
}

// Update is the same protocol as AuthorService.Update: guard, identify,
// apply mutable fields, commit against the loaded row version.
func (s *BookService) Update(ctx context.Context, id int64, in BookUpdateInput) error {
	if in.ID != id {
		return ErrIDMismatch
	}

	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	book.Title = in.Title
	book.Year = in.Year
	book.ISBN = in.ISBN
	book.Summary = in.Summary
	book.Image = in.Image
	book.Price = in.Price

	if err := s.repo.Update(ctx, &book); err != nil {
		if errors.Is(err, ErrConflict) {
			if _, getErr := s.repo.GetByID(ctx, id); errors.Is(getErr, ErrNotFound) {
				return ErrNotFound
			}
			return ErrConflict
		}
		return err
	}
	return nil
}

func (s *BookService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
