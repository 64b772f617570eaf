package command

import (
	"fmt"
	"strings"
	"time"

	"github.com/felipesilva4/desafio-aiqfome/internal/user/domain"
	"github.com/felipesilva4/desafio-aiqfome/pkg/auth"
)

// RegisterUserCommand represents the command to register an API user
type RegisterUserCommand struct {
	Name     string
	Email    string
	Password string
}

// RegisterUserHandler handles user registration
type RegisterUserHandler struct {
	repo domain.Repository
}

// NewRegisterUserHandler creates a new register user handler
func NewRegisterUserHandler(repo domain.Repository) *RegisterUserHandler {
	return &RegisterUserHandler{repo: repo}
}

// Handle executes the register user command
func (h *RegisterUserHandler) Handle(cmd RegisterUserCommand) (*domain.User, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if !strings.Contains(cmd.Email, "@") {
		return nil, fmt.Errorf("a valid email is required")
	}
	if len(cmd.Password) < 6 {
		return nil, fmt.Errorf("password must be at least 6 characters")
	}

	hash, err := auth.HashPassword(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Name:      cmd.Name,
		Email:     strings.ToLower(cmd.Email),
		Password:  hash,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := h.repo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}
