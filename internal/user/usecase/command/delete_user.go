package command

import "github.com/felipesilva4/desafio-aiqfome/internal/user/domain"

// DeleteUserCommand represents the command to delete a user
type DeleteUserCommand struct {
	ID uint
}

// DeleteUserHandler handles user deletion
type DeleteUserHandler struct {
	repo domain.Repository
}

// NewDeleteUserHandler creates a new delete user handler
func NewDeleteUserHandler(repo domain.Repository) *DeleteUserHandler {
	return &DeleteUserHandler{repo: repo}
}

// Handle executes the delete user command
func (h *DeleteUserHandler) Handle(cmd DeleteUserCommand) error {
	return h.repo.Delete(cmd.ID)
}
