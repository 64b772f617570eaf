package query

import "github.com/felipesilva4/desafio-aiqfome/internal/client/domain"

// ListClientsQuery represents the query to list all clients
type ListClientsQuery struct{}

// ListClientsHandler handles list clients query
type ListClientsHandler struct {
	repo domain.Repository
}

// NewListClientsHandler creates a new list clients handler
func NewListClientsHandler(repo domain.Repository) *ListClientsHandler {
	return &ListClientsHandler{repo: repo}
}

// Handle executes the list clients query
func (h *ListClientsHandler) Handle(q ListClientsQuery) ([]domain.Client, error) {
	return h.repo.FindAll()
}
