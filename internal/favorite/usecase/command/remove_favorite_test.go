package command

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/felipesilva4/desafio-aiqfome/internal/catalog/domain"
	"github.com/felipesilva4/desafio-aiqfome/internal/events"
	"github.com/felipesilva4/desafio-aiqfome/internal/favorite/domain"
	"github.com/felipesilva4/desafio-aiqfome/internal/favorite/repository"
)

func TestRemoveFavorite(t *testing.T) {
	favorites := repository.NewInMemoryFavoriteRepository()
	require.NoError(t, favorites.Create(&domain.Favorite{ClientID: 1, ProductID: 42}))

	h := NewRemoveFavoriteHandler(favorites, events.NoopPublisher{})

	err := h.Handle(context.Background(), RemoveFavoriteCommand{ClientID: 1, ProductID: 42})
	require.NoError(t, err)

	exists, err := favorites.Exists(1, 42)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRemoveFavorite_NotFavorited(t *testing.T) {
	h := NewRemoveFavoriteHandler(repository.NewInMemoryFavoriteRepository(), events.NoopPublisher{})

	err := h.Handle(context.Background(), RemoveFavoriteCommand{ClientID: 1, ProductID: 42})
	assert.ErrorIs(t, err, domain.ErrNotFavorited)

	// Out-of-range IDs answer the same way
	err = h.Handle(context.Background(), RemoveFavoriteCommand{ClientID: 0, ProductID: 42})
	assert.ErrorIs(t, err, domain.ErrNotFavorited)

	err = h.Handle(context.Background(), RemoveFavoriteCommand{ClientID: 1, ProductID: 0})
	assert.ErrorIs(t, err, domain.ErrNotFavorited)
}

func TestRemoveFavorite_CacheUntouched(t *testing.T) {
	favorites := repository.NewInMemoryFavoriteRepository()
	require.NoError(t, favorites.Create(&domain.Favorite{ClientID: 1, ProductID: 42}))

	cache := newStubCache()
	require.NoError(t, cache.SetIfAbsent(context.Background(), &catalog.Product{ID: 42, Title: "Widget"}, time.Minute))

	h := NewRemoveFavoriteHandler(favorites, events.NoopPublisher{})
	require.NoError(t, h.Handle(context.Background(), RemoveFavoriteCommand{ClientID: 1, ProductID: 42}))

	// The shared snapshot stays resolvable for other clients
	cached, err := cache.Get(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "Widget", cached.Title)
}
