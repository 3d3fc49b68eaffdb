package services

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/invoicepay/backend/internal/models"
	"github.com/rs/zerolog/log"
)

// UserService is a paywalled in-memory user store. Every route it serves
// sits behind the admission gate, so it doubles as a second protected
// resource family alongside the catalog.
type UserService struct {
	mu        sync.RWMutex
	users     map[string]*models.User
	validator *ValidationHelper
}

func NewUserService() *UserService {
	return &UserService{
		users: map[string]*models.User{
			"1": {ID: "1", Name: "Alice", Email: "alice@example.com"},
			"2": {ID: "2", Name: "Bob", Email: "bob@example.com"},
			"3": {ID: "3", Name: "Charlie", Email: "charlie@example.com"},
		},
		validator: NewValidationHelper(),
	}
}

// CreateUserRequest is the body of POST /users/create.
type CreateUserRequest struct {
	ID    string `json:"id" validate:"required"`
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// UpdateUserRequest is the body of PUT /users/update/{id}.
type UpdateUserRequest struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
}

// ListUsers returns all users
// @Summary List users
// @Description List all users (costs 1 unit)
// @Tags users
// @Produce json
// @Param X-Client-Id header string true "Client ID"
// @Success 200 {object} models.APIResponse
// @Failure 402 {object} models.PaymentRequiredResponse
// @Router /users/allUsers [get]
func (us *UserService) ListUsers(w http.ResponseWriter, r *http.Request) {
	us.mu.RLock()
	users := make([]*models.User, 0, len(us.users))
	for _, u := range us.users {
		clone := *u
		users = append(users, &clone)
	}
	us.mu.RUnlock()

	log.Info().Int("count", len(users)).Msg("fetching all users")

	SendJSON(w, http.StatusOK, models.APIResponse{
		Success: true,
		Data:    users,
		Message: "Users retrieved successfully",
	})
}

// GetUser returns a user by id
// @Summary Get user
// @Description Get a user by ID (costs 1 unit)
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Param X-Client-Id header string true "Client ID"
// @Success 200 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /users/{id} [get]
func (us *UserService) GetUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	us.mu.RLock()
	user, ok := us.users[id]
	var clone models.User
	if ok {
		clone = *user
	}
	us.mu.RUnlock()

	if !ok {
		SendErrorResponse(w, "User not found", http.StatusNotFound, nil)
		return
	}

	SendJSON(w, http.StatusOK, models.APIResponse{
		Success: true,
		Data:    &clone,
		Message: "User retrieved successfully",
	})
}

// CreateUser stores a new user
// @Summary Create user
// @Description Create a new user (costs 1 unit)
// @Tags users
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "User data"
// @Param X-Client-Id header string true "Client ID"
// @Success 201 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Router /users/create [post]
func (us *UserService) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest

	if err := DecodeBody(w, r, &req); err != nil {
		SendErrorResponse(w, err.Error(), http.StatusBadRequest, nil)
		return
	}

	if err := us.validator.ValidateStruct(&req); err != nil {
		SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	user := &models.User{ID: req.ID, Name: req.Name, Email: req.Email}

	us.mu.Lock()
	us.users[user.ID] = user
	us.mu.Unlock()

	log.Info().Str("userId", user.ID).Msg("created user")

	SendJSON(w, http.StatusCreated, models.APIResponse{
		Success: true,
		Data:    user,
		Message: "User created successfully",
	})
}

// UpdateUser updates an existing user
// @Summary Update user
// @Description Update an existing user (costs 1 unit)
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body UpdateUserRequest true "Fields to update"
// @Param X-Client-Id header string true "Client ID"
// @Success 200 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /users/update/{id} [put]
func (us *UserService) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateUserRequest

	if err := DecodeBody(w, r, &req); err != nil {
		SendErrorResponse(w, err.Error(), http.StatusBadRequest, nil)
		return
	}

	if err := us.validator.ValidateStruct(&req); err != nil {
		SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	us.mu.Lock()
	user, ok := us.users[id]
	if ok {
		if req.Name != "" {
			user.Name = req.Name
		}
		if req.Email != "" {
			user.Email = req.Email
		}
	}
	var clone models.User
	if ok {
		clone = *user
	}
	us.mu.Unlock()

	if !ok {
		log.Warn().Str("userId", id).Msg("user not found for update")
		SendErrorResponse(w, "User not found", http.StatusNotFound, nil)
		return
	}

	log.Info().Str("userId", id).Msg("updated user")

	SendJSON(w, http.StatusOK, models.APIResponse{
		Success: true,
		Data:    &clone,
		Message: "User updated successfully",
	})
}

// DeleteUser removes a user
// @Summary Delete user
// @Description Delete a user by ID (costs 1 unit)
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Param X-Client-Id header string true "Client ID"
// @Success 204 "No Content"
// @Failure 404 {object} models.APIResponse
// @Router /users/delete/{id} [delete]
func (us *UserService) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	us.mu.Lock()
	_, ok := us.users[id]
	if ok {
		delete(us.users, id)
	}
	us.mu.Unlock()

	if !ok {
		log.Warn().Str("userId", id).Msg("user not found for delete")
		SendErrorResponse(w, "User not found", http.StatusNotFound, nil)
		return
	}

	log.Info().Str("userId", id).Msg("deleted user")

	w.WriteHeader(http.StatusNoContent)
}
