package query

import (
	"fmt"

	"github.com/felipesilva4/desafio-aiqfome/internal/client/domain"
)

// GetClientQuery represents the query to get a client by ID
type GetClientQuery struct {
	ID uint
}

// GetClientHandler handles get client query
type GetClientHandler struct {
	repo domain.Repository
}

// NewGetClientHandler creates a new get client handler
func NewGetClientHandler(repo domain.Repository) *GetClientHandler {
	return &GetClientHandler{repo: repo}
}

// Handle executes the get client query
func (h *GetClientHandler) Handle(q GetClientQuery) (*domain.Client, error) {
	if q.ID == 0 {
		return nil, fmt.Errorf("invalid client id")
	}
	return h.repo.FindByID(q.ID)
}
