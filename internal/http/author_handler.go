package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"bookstore/internal/usecase"
)

type AuthorHandler struct {
	authors *usecase.AuthorService
}

func NewAuthorHandler(authors *usecase.AuthorService) *AuthorHandler {
	return &AuthorHandler{authors: authors}
}

type createAuthorReq struct {
	FirstName string `json:"first_name" validate:"required,max=50"`
	LastName  string `json:"last_name" validate:"required,max=50"`
	Bio       string `json:"bio" validate:"max=250"`
}

type updateAuthorReq struct {
	ID int64 `json:"id" validate:"required"`
	createAuthorReq
}

// @Summary List authors
// @Tags authors
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /api/authors [get]
func (h *AuthorHandler) List(w http.ResponseWriter, r *http.Request) {
	authors, err := h.authors.List(r.Context())
	if err != nil {
		writeDomainError(w, "authors.list", err)
		return
	}
	JSONSuccess(w, authors)
}

// @Summary Get author by id
// @Tags authors
// @Produce json
// @Param id path int true "Author id"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/authors/{id} [get]
func (h *AuthorHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	author, err := h.authors.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, "authors.get", err)
		return
	}
	JSONSuccess(w, author)
}

// @Summary Create author
// @Tags authors
// @Accept json
// @Produce json
// @Security Bearer
// @Param author body createAuthorReq true "Author data"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/authors [post]
func (h *AuthorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAuthorReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	author, err := h.authors.Create(r.Context(), usecase.AuthorInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
	})
	if err != nil {
		writeDomainError(w, "authors.create", err)
		return
	}
	JSONSuccessCreated(w, author)
}

// @Summary Update author
// @Description Versioned update, concurrent edits surface as 409
// @Tags authors
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Author id"
// @Param author body updateAuthorReq true "Author data"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/authors/{id} [put]
func (h *AuthorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req updateAuthorReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	err := h.authors.Update(r.Context(), id, usecase.AuthorUpdateInput{
		ID: req.ID,
		AuthorInput: usecase.AuthorInput{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Bio:       req.Bio,
		},
	})
	if err != nil {
		writeDomainError(w, "authors.update", err)
		return
	}
	JSONSuccessNoContent(w)
}

// @Summary Delete author
// @Description Rejected while the author still owns books
// @Tags authors
// @Produce json
// @Security Bearer
// @Param id path int true "Author id"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/authors/{id} [delete]
func (h *AuthorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.authors.Delete(r.Context(), id); err != nil {
		writeDomainError(w, "authors.delete", err)
		return
	}
	JSONSuccessNoContent(w)
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid id", nil)
		return 0, false
	}
	return id, true
}

// writeDomainError maps the usecase sentinels onto the response
// envelope. Unexpected store failures are logged with the operation
// name and surfaced without internal detail.
func writeDomainError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, usecase.ErrIDMismatch):
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Path id and payload id do not match", nil)
	case errors.Is(err, usecase.ErrNotFound):
		JSONError(w, http.StatusNotFound, "NOT_FOUND", "Record not found", nil)
	case errors.Is(err, usecase.ErrConflict):
		JSONError(w, http.StatusConflict, "CONFLICT", "The record was modified by another request, re-fetch and retry", nil)
	case errors.Is(err, usecase.ErrDuplicate):
		JSONError(w, http.StatusConflict, "DUPLICATE", "A record with the same unique value already exists", nil)
	case errors.Is(err, usecase.ErrInvalidReference):
		JSONError(w, http.StatusBadRequest, "INVALID_REFERENCE", "Referenced record does not exist", nil)
	case errors.Is(err, usecase.ErrAuthorHasBooks):
		JSONError(w, http.StatusConflict, "AUTHOR_HAS_BOOKS", "Author still owns books and cannot be deleted", nil)
	default:
		log.Printf("op=%s err=%v", op, err)
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}
