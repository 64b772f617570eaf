package command

import (
	"fmt"
	"strings"
	"time"

	"github.com/felipesilva4/desafio-aiqfome/internal/client/domain"
)

// CreateClientCommand represents the command to register a client
type CreateClientCommand struct {
	Name  string
	Email string
}

// CreateClientHandler handles client creation
type CreateClientHandler struct {
	repo domain.Repository
}

// NewCreateClientHandler creates a new create client handler
func NewCreateClientHandler(repo domain.Repository) *CreateClientHandler {
	return &CreateClientHandler{repo: repo}
}

// Handle executes the create client command
func (h *CreateClientHandler) Handle(cmd CreateClientCommand) (*domain.Client, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if !strings.Contains(cmd.Email, "@") {
		return nil, fmt.Errorf("a valid email is required")
	}

	client := &domain.Client{
		Name:      cmd.Name,
		Email:     strings.ToLower(cmd.Email),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := h.repo.Create(client); err != nil {
		return nil, err
	}

	return client, nil
}
