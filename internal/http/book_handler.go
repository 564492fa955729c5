package http

import (
	"encoding/json"
	"net/http"

	"bookstore/internal/usecase"
)

type BookHandler struct {
	books *usecase.BookService
}

func NewBookHandler(books *usecase.BookService) *BookHandler {
	return &BookHandler{books: books}
}

type createBookReq struct {
	Title    string  `json:"title" validate:"required,max=50"`
	Year     int     `json:"year" validate:"required,gte=1000"`
	ISBN     string  `json:"isbn" validate:"required,isbn"`
	Summary  string  `json:"summary" validate:"required,min=10,max=250"`
	Image    string  `json:"image" validate:"max=50"`
	Price    float64 `json:"price" validate:"gte=0"`
	AuthorID int64   `json:"author_id" validate:"required"`
}

// updateBookReq has no author_id on purpose, an update never moves a
// book to another author.
type updateBookReq struct {
	ID      int64   `json:"id" validate:"required"`
	Title   string  `json:"title" validate:"required,max=50"`
	Year    int     `json:"year" validate:"required,gte=1000"`
	ISBN    string  `json:"isbn" validate:"required,isbn"`
	Summary string  `json:"summary" validate:"required,min=10,max=250"`
	Image   string  `json:"image" validate:"max=50"`
	Price   float64 `json:"price" validate:"gte=0"`
}

// @Summary List books
// @Description Books with their author name
// @Tags books
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /api/books [get]
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.books.List(r.Context())
	if err != nil {
		writeDomainError(w, "books.list", err)
		return
	}
	JSONSuccess(w, books)
}

// @Summary Get book by id
// @Tags books
// @Produce json
// @Param id path int true "Book id"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/books/{id} [get]
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	book, err := h.books.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, "books.get", err)
		return
	}
	JSONSuccess(w, book)
}

// @Summary Create book
// @Tags books
// @Accept json
// @Produce json
// @Security Bearer
// @Param book body createBookReq true "Book data"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/books [post]
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBookReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	book, err := h.books.Create(r.Context(), usecase.BookInput{
		Title:    req.Title,
		Year:     req.Year,
		ISBN:     req.ISBN,
		Summary:  req.Summary,
		Image:    req.Image,
		Price:    req.Price,
		AuthorID: req.AuthorID,
	})
	if err != nil {
		writeDomainError(w, "books.create", err)
		return
	}
	JSONSuccessCreated(w, book)
}

// @Summary Update book
// @Description Versioned update, concurrent edits surface as 409
// @Tags books
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Book id"
// @Param book body updateBookReq true "Book data"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/books/{id} [put]
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req updateBookReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	err := h.books.Update(r.Context(), id, usecase.BookUpdateInput{
		ID:      req.ID,
		Title:   req.Title,
		Year:    req.Year,
		ISBN:    req.ISBN,
		Summary: req.Summary,
		Image:   req.Image,
		Price:   req.Price,
	})
	if err != nil {
		writeDomainError(w, "books.update", err)
		return
	}
	JSONSuccessNoContent(w)
}

// @Summary Delete book
// @Tags books
// @Produce json
// @Security Bearer
// @Param id path int true "Book id"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /api/books/{id} [delete]
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.books.Delete(r.Context(), id); err != nil {
		writeDomainError(w, "books.delete", err)
		return
	}
	JSONSuccessNoContent(w)
}
