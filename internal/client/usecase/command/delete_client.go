package command

import (
	"context"

	"github.com/felipesilva4/desafio-aiqfome/internal/client/domain"
	"github.com/felipesilva4/desafio-aiqfome/internal/events"
	favoritedomain "github.com/felipesilva4/desafio-aiqfome/internal/favorite/domain"
	"github.com/felipesilva4/desafio-aiqfome/pkg/logger"
)

// DeleteClientCommand represents the command to delete a client
type DeleteClientCommand struct {
	ID uint
}

// DeleteClientHandler removes a client together with all of its favorites
type DeleteClientHandler struct {
	clients   domain.Repository
	favorites favoritedomain.Repository
	publisher events.Publisher
}

// NewDeleteClientHandler creates a new delete client handler
func NewDeleteClientHandler(clients domain.Repository, favorites favoritedomain.Repository, publisher events.Publisher) *DeleteClientHandler {
	return &DeleteClientHandler{clients: clients, favorites: favorites, publisher: publisher}
}

// Handle executes the delete client command. Favorites go first so no
// orphaned associations survive a failed client delete.
func (h *DeleteClientHandler) Handle(ctx context.Context, cmd DeleteClientCommand) (*domain.Client, error) {
	client, err := h.clients.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	if err := h.favorites.DeleteAllByClient(cmd.ID); err != nil {
		return nil, err
	}

	if err := h.clients.Delete(cmd.ID); err != nil {
		return nil, err
	}

	if err := h.publisher.PublishClientActivity(ctx, events.ClientActivityEvent{
		EventType: events.EventTypeClientDeleted,
		ClientID:  cmd.ID,
	}); err != nil {
		logger.Warn(ctx).Err(err).Msg("Failed to publish client deleted event")
	}

	return client, nil
}
