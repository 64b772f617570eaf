package command

import (
	"fmt"
	"strings"
	"time"

	"github.com/felipesilva4/desafio-aiqfome/internal/client/domain"
)

// UpdateClientCommand represents the command to update a client. Empty
// fields are left unchanged.
type UpdateClientCommand struct {
	ID    uint
	Name  string
	Email string
}

// UpdateClientHandler handles client updates
type UpdateClientHandler struct {
	repo domain.Repository
}

// NewUpdateClientHandler creates a new update client handler
func NewUpdateClientHandler(repo domain.Repository) *UpdateClientHandler {
	return &UpdateClientHandler{repo: repo}
}

// Handle executes the update client command
func (h *UpdateClientHandler) Handle(cmd UpdateClientCommand) (*domain.Client, error) {
	if cmd.Name == "" && cmd.Email == "" {
		return nil, fmt.Errorf("no fields to update")
	}

	client, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != "" {
		client.Name = cmd.Name
	}
	if cmd.Email != "" {
		if !strings.Contains(cmd.Email, "@") {
			return nil, fmt.Errorf("a valid email is required")
		}
		client.Email = strings.ToLower(cmd.Email)
	}
	client.UpdatedAt = time.Now()

	if err := h.repo.Update(client); err != nil {
		return nil, err
	}

	return client, nil
}
