package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"bookstore/internal/auth"
	"bookstore/internal/entity"
	"bookstore/internal/usecase"
)

type AuthHandler struct {
	users  usecase.UserRepository
	tokens *auth.TokenService
}

func NewAuthHandler(users usecase.UserRepository, tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

// credentials is the field group shared by login and registration.
type credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerReq struct {
	credentials
	FirstName string `json:"first_name" validate:"required,min=3"`
	LastName  string `json:"last_name" validate:"required,min=3"`
}

// @Summary Register a new user
// @Description Create a user account with the default User role
// @Tags authentication
// @Accept json
// @Produce json
// @Param user body registerReq true "Registration data"
// @Success 202 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Email = strings.TrimSpace(req.Email)

	log.Printf("registration attempt email=%s", req.Email)

	if details := ValidateStruct(req); len(details) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}
	if err := auth.ValidatePasswordStrength(req.Password); err != nil {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input",
			[]ErrorDetail{{Field: "password", Message: err.Error()}})
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Printf("register: hash password email=%s err=%v", req.Email, err)
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	newUser := &entity.User{
		Email:     req.Email,
		Username:  req.Email,
		Password:  hashed,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if err := h.users.Create(r.Context(), newUser, entity.RoleUser); err != nil {
		if errors.Is(err, usecase.ErrAlreadyExists) {
			JSONError(w, http.StatusConflict, "ALREADY_EXISTS", "Email already exists",
				[]ErrorDetail{{Field: "email", Message: "email is already taken"}})
			return
		}
		log.Printf("register: create user email=%s err=%v", req.Email, err)
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	JSONSuccessAccepted(w, map[string]any{
		"id":    newUser.ID,
		"email": newUser.Email,
	})
}

type loginReq struct {
	credentials
}

type loginResp struct {
	Email  string `json:"email"`
	Token  string `json:"token"`
	UserID string `json:"user_id"`
}

// @Summary Login
// @Description Verify credentials and issue a bearer token
// @Tags authentication
// @Accept json
// @Produce json
// @Param login body loginReq true "Login credentials"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Email = strings.TrimSpace(req.Email)

	log.Printf("login attempt email=%s", req.Email)

	if details := ValidateStruct(req); len(details) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	// The response never says which of email or password was wrong,
	// the logs keep the distinction.
	user, err := h.users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			log.Printf("login failed email=%s reason=unknown_email", req.Email)
		} else {
			log.Printf("login: lookup email=%s err=%v", req.Email, err)
		}
		JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid email or password", nil)
		return
	}
	if !auth.VerifyPassword(user.Password, req.Password) {
		log.Printf("login failed email=%s reason=invalid_password", req.Email)
		JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid email or password", nil)
		return
	}

	token, err := h.tokens.Issue(user, nil)
	if err != nil {
		log.Printf("login: issue token email=%s err=%v", req.Email, err)
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	JSONSuccess(w, loginResp{
		Email:  user.Email,
		Token:  token,
		UserID: user.ID,
	})
}
