package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore/internal/auth"
	"bookstore/internal/entity"
	"bookstore/internal/store/mocks"
	"bookstore/internal/usecase"
)

var testBook = entity.Book{
	ID:         7,
	Title:      "Nineteen Eighty-Four",
	Year:       1949,
	ISBN:       "9780451524935",
	Summary:    "A dystopian novel about surveillance and control.",
	Price:      9.99,
	AuthorID:   42,
	RowVersion: 2,
}

const validBookBody = `{
	"id": 7,
	"title": "1984",
	"year": 1949,
	"isbn": "9780451524935",
	"summary": "Winston Smith rewrites history for the Ministry of Truth.",
	"price": 12.50
}`

func newTestTokens(t *testing.T) *auth.TokenService {
	t.Helper()
	tokens, err := auth.NewTokenService(auth.Config{
		Secret:   "test-secret-0123456789",
		Issuer:   "BookStoreApi",
		Audience: "BookStoreApiClient",
		Duration: time.Hour,
	})
	require.NoError(t, err)
	return tokens
}

func issueToken(t *testing.T, tokens *auth.TokenService, roles ...string) string {
	t.Helper()
	token, err := tokens.Issue(entity.User{
		ID:       "test-user-id",
		Email:    "test@bookstore.com",
		Username: "test@bookstore.com",
		Roles:    roles,
	}, nil)
	require.NoError(t, err)
	return token
}

func newBookRouter(repo usecase.BookRepository, tokens *auth.TokenService) http.Handler {
	h := NewBookHandler(usecase.NewBookService(repo))
	admin := RequireRoles(tokens, entity.RoleAdministrator)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/books", h.List)
	mux.HandleFunc("GET /api/books/{id}", h.Get)
	mux.Handle("POST /api/books", admin(http.HandlerFunc(h.Create)))
	mux.Handle("PUT /api/books/{id}", admin(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE /api/books/{id}", admin(http.HandlerFunc(h.Delete)))
	return mux
}

func TestBookHandler_Delete_RoleGate(t *testing.T) {
	tokens := newTestTokens(t)

	tests := []struct {
		name           string
		authorization  string
		setupMock      func(repo *mocks.MockBookRepository)
		expectedStatus int
	}{
		{
			name:          "administrator deletes existing book",
			authorization: "Bearer " + issueToken(t, tokens, entity.RoleAdministrator),
			setupMock: func(repo *mocks.MockBookRepository) {
				repo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(testBook, nil)
				repo.EXPECT().Delete(gomock.Any(), int64(7)).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "plain user is forbidden",
			authorization:  "Bearer " + issueToken(t, tokens, entity.RoleUser),
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "missing token is unauthenticated",
			authorization:  "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "garbage token is unauthenticated",
			authorization:  "Bearer not.a.token",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:          "administrator deleting missing book",
			authorization: "Bearer " + issueToken(t, tokens, entity.RoleAdministrator),
			setupMock: func(repo *mocks.MockBookRepository) {
				repo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(entity.Book{}, usecase.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mocks.NewMockBookRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}
			router := newBookRouter(repo, tokens)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodDelete, "/api/books/7", nil)
			if tt.authorization != "" {
				r.Header.Set("Authorization", tt.authorization)
			}
			router.ServeHTTP(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestBookHandler_Update(t *testing.T) {
	tokens := newTestTokens(t)
	adminToken := "Bearer " + issueToken(t, tokens, entity.RoleAdministrator)

	tests := []struct {
		name           string
		path           string
		body           string
		setupMock      func(repo *mocks.MockBookRepository)
		expectedStatus int
	}{
		{
			name: "success",
			path: "/api/books/7",
			body: validBookBody,
			setupMock: func(repo *mocks.MockBookRepository) {
				repo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(testBook, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			// payload declares id 7 but the path targets 5, the store
			// must never be touched
			name:           "id mismatch",
			path:           "/api/books/5",
			body:           validBookBody,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "lost update conflict",
			path: "/api/books/7",
			body: validBookBody,
			setupMock: func(repo *mocks.MockBookRepository) {
				repo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(testBook, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(usecase.ErrConflict)
				repo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(testBook, nil)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "validation failure",
			path:           "/api/books/7",
			body:           `{"id": 7, "title": "", "year": 10, "isbn": "nope", "summary": "x"}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mocks.NewMockBookRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}
			router := newBookRouter(repo, tokens)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPut, tt.path, strings.NewReader(tt.body))
			r.Header.Set("Authorization", adminToken)
			router.ServeHTTP(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestBookHandler_Create_DuplicateISBN(t *testing.T) {
	tokens := newTestTokens(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockBookRepository(ctrl)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(usecase.ErrDuplicate)
	router := newBookRouter(repo, tokens)

	body := `{
		"title": "Animal Farm",
		"year": 1945,
		"isbn": "9780451524935",
		"summary": "A satirical allegory of revolution and power.",
		"price": 7.99,
		"author_id": 42
	}`
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/books", strings.NewReader(body))
	r.Header.Set("Authorization", "Bearer "+issueToken(t, tokens, entity.RoleAdministrator))
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "DUPLICATE")
}

func TestBookHandler_Get_OpenToAnonymous(t *testing.T) {
	tokens := newTestTokens(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockBookRepository(ctrl)
	repo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(testBook, nil)
	router := newBookRouter(repo, tokens)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/books/7", nil)
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Nineteen Eighty-Four")
}

func TestBookHandler_List(t *testing.T) {
	tokens := newTestTokens(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockBookRepository(ctrl)
	repo.EXPECT().List(gomock.Any()).Return([]entity.BookListing{
		{ID: 7, Title: "Nineteen Eighty-Four", AuthorName: "George Orwell"},
	}, nil)
	router := newBookRouter(repo, tokens)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/books", nil)
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "George Orwell")
}
