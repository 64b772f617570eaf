package domain

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrProductNotFound indicates the catalog has no product for the given ID
	ErrProductNotFound = errors.New("product not found")

	// ErrUpstreamUnavailable indicates a transport-level failure talking to
	// the catalog, as opposed to a missing product
	ErrUpstreamUnavailable = errors.New("product catalog unavailable")

	// ErrCacheMiss indicates no unexpired cache entry exists for the product
	ErrCacheMiss = errors.New("cache miss")
)

// Product is a point-in-time snapshot of a product as returned by the
// external catalog API. It may go stale until its cache entry expires.
type Product struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// Source fetches single products from the external catalog.
type Source interface {
	// FetchProduct returns ErrProductNotFound when the catalog has no such
	// product, and an error wrapping ErrUpstreamUnavailable on transport
	// failures.
	FetchProduct(ctx context.Context, productID int64) (*Product, error)
}

// Cache stores product snapshots with a per-entry TTL. Entries are keyed by
// product ID and shared across all clients.
type Cache interface {
	// Get returns ErrCacheMiss when no unexpired entry exists.
	Get(ctx context.Context, productID int64) (*Product, error)

	// SetIfAbsent writes the snapshot only when no unexpired entry exists
	// for the product; a still-valid entry is never overwritten.
	SetIfAbsent(ctx context.Context, product *Product, ttl time.Duration) error
}
