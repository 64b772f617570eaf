package command

import (
	"fmt"
	"strings"
	"time"

	"github.com/felipesilva4/desafio-aiqfome/internal/user/domain"
	"github.com/felipesilva4/desafio-aiqfome/pkg/auth"
)

// UpdateUserCommand represents the command to update a user. Empty fields
// are left unchanged.
type UpdateUserCommand struct {
	ID       uint
	Name     string
	Email    string
	Password string
}

// UpdateUserHandler handles user updates
type UpdateUserHandler struct {
	repo domain.Repository
}

// NewUpdateUserHandler creates a new update user handler
func NewUpdateUserHandler(repo domain.Repository) *UpdateUserHandler {
	return &UpdateUserHandler{repo: repo}
}

// Handle executes the update user command
func (h *UpdateUserHandler) Handle(cmd UpdateUserCommand) (*domain.User, error) {
	user, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != "" {
		user.Name = cmd.Name
	}
	if cmd.Email != "" {
		if !strings.Contains(cmd.Email, "@") {
			return nil, fmt.Errorf("a valid email is required")
		}
		user.Email = strings.ToLower(cmd.Email)
	}
	if cmd.Password != "" {
		if len(cmd.Password) < 6 {
			return nil, fmt.Errorf("password must be at least 6 characters")
		}
		hash, err := auth.HashPassword(cmd.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = hash
	}
	user.UpdatedAt = time.Now()

	if err := h.repo.Update(user); err != nil {
		return nil, err
	}

	return user, nil
}
