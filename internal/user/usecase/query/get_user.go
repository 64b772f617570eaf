package query

import (
	"fmt"

	"github.com/felipesilva4/desafio-aiqfome/internal/user/domain"
)

// GetUserQuery represents the query to get a user by ID
type GetUserQuery struct {
	ID uint
}

// GetUserHandler handles get user query
type GetUserHandler struct {
	repo domain.Repository
}

// NewGetUserHandler creates a new get user handler
func NewGetUserHandler(repo domain.Repository) *GetUserHandler {
	return &GetUserHandler{repo: repo}
}

// Handle executes the get user query
func (h *GetUserHandler) Handle(q GetUserQuery) (*domain.User, error) {
	if q.ID == 0 {
		return nil, fmt.Errorf("invalid user id")
	}
	return h.repo.FindByID(q.ID)
}
