package query

import (
	"context"
	"errors"
	"time"

	catalog "github.com/felipesilva4/desafio-aiqfome/internal/catalog/domain"
	clientdomain "github.com/felipesilva4/desafio-aiqfome/internal/client/domain"
	"github.com/felipesilva4/desafio-aiqfome/internal/favorite/domain"
	"github.com/felipesilva4/desafio-aiqfome/pkg/logger"
)

// ListFavoritesQuery represents the query for a client's favorite products
type ListFavoritesQuery struct {
	ClientID uint
}

// ListFavoritesHandler resolves a client's favorited products cache-first
type ListFavoritesHandler struct {
	favorites domain.Repository
	clients   clientdomain.Repository
	source    catalog.Source
	cache     catalog.Cache
	cacheTTL  time.Duration
}

// NewListFavoritesHandler creates a new list favorites handler
func NewListFavoritesHandler(
	favorites domain.Repository,
	clients clientdomain.Repository,
	source catalog.Source,
	cache catalog.Cache,
	cacheTTL time.Duration,
) *ListFavoritesHandler {
	return &ListFavoritesHandler{
		favorites: favorites,
		clients:   clients,
		source:    source,
		cache:     cache,
		cacheTTL:  cacheTTL,
	}
}

// Handle resolves every favorited product independently: a cache hit is
// returned as-is, a miss goes to the catalog and warms the cache. A product
// that fails to resolve — gone upstream, or the catalog is degraded — is
// dropped from the result instead of failing the whole listing; drops are
// logged so they stay observable.
func (h *ListFavoritesHandler) Handle(ctx context.Context, q ListFavoritesQuery) ([]catalog.Product, error) {
	if _, err := h.clients.FindByID(q.ClientID); err != nil {
		return nil, err
	}

	ids, err := h.favorites.ListProductIDs(q.ClientID)
	if err != nil {
		return nil, err
	}

	products := make([]catalog.Product, 0, len(ids))
	if len(ids) == 0 {
		return products, nil
	}

	for _, id := range ids {
		cached, err := h.cache.Get(ctx, id)
		if err == nil {
			products = append(products, *cached)
			continue
		}
		if !errors.Is(err, catalog.ErrCacheMiss) {
			// A degraded cache only costs an extra upstream call
			logger.Warn(ctx).
				Err(err).
				Int64("product_id", id).
				Msg("Product cache lookup failed")
		}

		product, err := h.source.FetchProduct(ctx, id)
		if err != nil {
			logger.Warn(ctx).
				Err(err).
				Uint("client_id", q.ClientID).
				Int64("product_id", id).
				Msg("Dropping unresolvable favorite from listing")
			continue
		}

		if err := h.cache.SetIfAbsent(ctx, product, h.cacheTTL); err != nil {
			logger.Warn(ctx).
				Err(err).
				Int64("product_id", id).
				Msg("Failed to cache product")
		}

		products = append(products, *product)
	}

	return products, nil
}
