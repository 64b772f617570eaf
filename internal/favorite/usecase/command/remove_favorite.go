package command

import (
	"context"

	"github.com/felipesilva4/desafio-aiqfome/internal/events"
	"github.com/felipesilva4/desafio-aiqfome/internal/favorite/domain"
	"github.com/felipesilva4/desafio-aiqfome/pkg/logger"
)

// RemoveFavoriteCommand represents the command to unfavorite a product
type RemoveFavoriteCommand struct {
	ClientID  uint
	ProductID int64
}

// RemoveFavoriteHandler handles favorite removal
type RemoveFavoriteHandler struct {
	favorites domain.Repository
	publisher events.Publisher
}

// NewRemoveFavoriteHandler creates a new remove favorite handler
func NewRemoveFavoriteHandler(favorites domain.Repository, publisher events.Publisher) *RemoveFavoriteHandler {
	return &RemoveFavoriteHandler{favorites: favorites, publisher: publisher}
}

// Handle deletes the (client, product) pair. The product cache is left
// alone: entries are product-scoped and may still serve other clients.
func (h *RemoveFavoriteHandler) Handle(ctx context.Context, cmd RemoveFavoriteCommand) error {
	// Out-of-range IDs cannot name an existing favorite
	if cmd.ClientID == 0 || cmd.ProductID <= 0 {
		return domain.ErrNotFavorited
	}

	if err := h.favorites.DeleteByClientAndProduct(cmd.ClientID, cmd.ProductID); err != nil {
		return err
	}

	if err := h.publisher.PublishClientActivity(ctx, events.ClientActivityEvent{
		EventType: events.EventTypeFavoriteRemoved,
		ClientID:  cmd.ClientID,
		ProductID: cmd.ProductID,
	}); err != nil {
		logger.Warn(ctx).Err(err).Msg("Failed to publish favorite removed event")
	}

	return nil
}
