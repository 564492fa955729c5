package entity

import "time"

type Book struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Year       int       `json:"year"`
	ISBN       string    `json:"isbn"`
	Summary    string    `json:"summary"`
	Image      string    `json:"image"`
	Price      float64   `json:"price"`
	AuthorID   int64     `json:"author_id"`
	RowVersion int64     `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// BookListing is the read shape for list endpoints, the author
// name is denormalized from the owning author row.
type BookListing struct {
	ID         int64   `json:"id"`
	Title      string  `json:"title"`
	Year       int     `json:"year"`
	ISBN       string  `json:"isbn"`
	Summary    string  `json:"summary"`
	Image      string  `json:"image"`
	Price      float64 `json:"price"`
	AuthorID   int64   `json:"author_id"`
	AuthorName string  `json:"author_name"`
}
