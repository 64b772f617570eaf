package command

import (
	"context"
	"time"

	catalog "github.com/felipesilva4/desafio-aiqfome/internal/catalog/domain"
	clientdomain "github.com/felipesilva4/desafio-aiqfome/internal/client/domain"
	"github.com/felipesilva4/desafio-aiqfome/internal/events"
	"github.com/felipesilva4/desafio-aiqfome/internal/favorite/domain"
	"github.com/felipesilva4/desafio-aiqfome/pkg/logger"
)

// AddFavoriteCommand represents the command to favorite a product
type AddFavoriteCommand struct {
	ClientID  uint
	ProductID int64
}

// AddFavoriteHandler validates a favorite against the external catalog,
// warms the product cache and persists the association
type AddFavoriteHandler struct {
	favorites domain.Repository
	clients   clientdomain.Repository
	source    catalog.Source
	cache     catalog.Cache
	publisher events.Publisher
	cacheTTL  time.Duration
}

// NewAddFavoriteHandler creates a new add favorite handler
func NewAddFavoriteHandler(
	favorites domain.Repository,
	clients clientdomain.Repository,
	source catalog.Source,
	cache catalog.Cache,
	publisher events.Publisher,
	cacheTTL time.Duration,
) *AddFavoriteHandler {
	return &AddFavoriteHandler{
		favorites: favorites,
		clients:   clients,
		source:    source,
		cache:     cache,
		publisher: publisher,
		cacheTTL:  cacheTTL,
	}
}

// Handle executes the add favorite command.
//
// The duplicate pre-check runs before any upstream call, so re-favoriting a
// product costs no catalog traffic. The pre-check is only an optimization:
// two concurrent adds can both pass it, and the unique constraint on
// (client_id, product_id) decides — a duplicate-key failure from the insert
// is reported as ErrAlreadyFavorited just like the pre-check.
func (h *AddFavoriteHandler) Handle(ctx context.Context, cmd AddFavoriteCommand) (*catalog.Product, error) {
	// Out-of-range IDs cannot exist, so they answer the same way a lookup
	// would, without costing a store or upstream round trip.
	if cmd.ClientID == 0 {
		return nil, clientdomain.ErrNotFound
	}
	if cmd.ProductID <= 0 {
		return nil, catalog.ErrProductNotFound
	}

	if _, err := h.clients.FindByID(cmd.ClientID); err != nil {
		return nil, err
	}

	exists, err := h.favorites.Exists(cmd.ClientID, cmd.ProductID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAlreadyFavorited
	}

	product, err := h.source.FetchProduct(ctx, cmd.ProductID)
	if err != nil {
		return nil, err
	}

	// Warm the cache for the list path. The cache is not an ownership
	// record, so a failed write must not fail the add.
	if err := h.cache.SetIfAbsent(ctx, product, h.cacheTTL); err != nil {
		logger.Warn(ctx).
			Err(err).
			Int64("product_id", cmd.ProductID).
			Msg("Failed to cache product")
	}

	favorite := &domain.Favorite{
		ClientID:  cmd.ClientID,
		ProductID: cmd.ProductID,
		CreatedAt: time.Now(),
	}
	if err := h.favorites.Create(favorite); err != nil {
		return nil, err
	}

	if err := h.publisher.PublishClientActivity(ctx, events.ClientActivityEvent{
		EventType: events.EventTypeFavoriteAdded,
		ClientID:  cmd.ClientID,
		ProductID: cmd.ProductID,
	}); err != nil {
		logger.Warn(ctx).Err(err).Msg("Failed to publish favorite added event")
	}

	return product, nil
}
