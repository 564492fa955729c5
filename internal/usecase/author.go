package usecase

import (
	"context"
	"errors"

	"bookstore/internal/entity"
)

type AuthorInput struct {
	FirstName string
	LastName  string
	Bio       string
}

type AuthorUpdateInput struct {
	ID int64
	AuthorInput
}

type AuthorService struct {
	repo AuthorRepository
}

func NewAuthorService(repo AuthorRepository) *AuthorService {
	return &AuthorService{repo: repo}
}

func (s *AuthorService) List(ctx context.Context) ([]entity.Author, error) {
	return s.repo.List(ctx)
}

func (s *AuthorService) Get(ctx context.Context, id int64) (entity.Author, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *AuthorService) Create(ctx context.Context, in AuthorInput) (entity.Author, error) {
	author := entity.Author{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Bio:       in.Bio,
	}
	if err := s.repo.Create(ctx, &author); err != nil {
		return entity.Author{}, err
	}
	return author, nil
}

// Update runs the read-modify-write cycle against the versioned store.
// The id guard fires before any store access. A lost version race is
// surfaced as ErrConflict, or ErrNotFound when the racing writer was a
// delete.
func (s *AuthorService) Update(ctx context.Context, id int64, in AuthorUpdateInput) error {
	if in.ID != id {
		return ErrIDMismatch
	}

	author, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	author.FirstName = in.FirstName
	author.LastName = in.LastName
	author.Bio = in.Bio

	if err := s.repo.Update(ctx, &author); err != nil {
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

// Delete rejects authors that still own books instead of cascading.
func (s *AuthorService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	count, err := s.repo.CountBooks(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrAuthorHasBooks
	}
	return s.repo.Delete(ctx, id)
}
