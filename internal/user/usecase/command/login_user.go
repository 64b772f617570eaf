package command

import (
	"fmt"
	"strings"

	"github.com/felipesilva4/desafio-aiqfome/internal/user/domain"
	"github.com/felipesilva4/desafio-aiqfome/pkg/auth"
)

// LoginUserCommand represents the command to login a user
type LoginUserCommand struct {
	Email    string
	Password string
}

// LoginResponse represents the response after successful login
type LoginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// LoginUserHandler handles user login
type LoginUserHandler struct {
	repo domain.Repository
}

// NewLoginUserHandler creates a new login user handler
func NewLoginUserHandler(repo domain.Repository) *LoginUserHandler {
	return &LoginUserHandler{repo: repo}
}

// Handle executes the login user command
func (h *LoginUserHandler) Handle(cmd LoginUserCommand) (*LoginResponse, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	user, err := h.repo.FindByEmail(strings.ToLower(cmd.Email))
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, cmd.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResponse{Token: token, User: user}, nil
}
