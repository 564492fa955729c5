package usecase

import "errors"

var (
	// ErrNotFound is returned when the referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a versioned update lost against a
	// concurrent writer. It is never retried here, the caller decides.
	ErrConflict = errors.New("concurrent update conflict")
	// ErrIDMismatch is returned when the payload id disagrees with the
	// path id, before any store access happens.
	ErrIDMismatch = errors.New("payload id does not match path id")
	// ErrDuplicate is returned when a unique constraint rejected a write.
	ErrDuplicate = errors.New("duplicate value for unique field")
	// ErrInvalidReference is returned when a foreign key points at a
	// row that does not exist.
	ErrInvalidReference = errors.New("referenced entity does not exist")
	// ErrAuthorHasBooks is returned when deleting an author that still
	// owns books.
	ErrAuthorHasBooks = errors.New("author still owns books")
	// ErrAlreadyExists is returned on registration with a taken email.
	ErrAlreadyExists = errors.New("user already exists")
)
