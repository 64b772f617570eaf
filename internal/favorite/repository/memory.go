package repository

import (
	"sync"
	"time"

	"github.com/felipesilva4/desafio-aiqfome/internal/favorite/domain"
)

// InMemoryFavoriteRepository is used for tests and local scenarios. It
// mirrors the storage-level uniqueness guarantee of the GORM implementation.
type InMemoryFavoriteRepository struct {
	mu        sync.Mutex
	nextID    uint
	favorites []domain.Favorite
}

func NewInMemoryFavoriteRepository() *InMemoryFavoriteRepository {
	return &InMemoryFavoriteRepository{nextID: 1}
}

func (r *InMemoryFavoriteRepository) Exists(clientID uint, productID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.indexOf(clientID, productID) >= 0, nil
}

func (r *InMemoryFavoriteRepository) Create(favorite *domain.Favorite) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexOf(favorite.ClientID, favorite.ProductID) >= 0 {
		return domain.ErrAlreadyFavorited
	}
	favorite.ID = r.nextID
	r.nextID++
	if favorite.CreatedAt.IsZero() {
		favorite.CreatedAt = time.Now()
	}
	r.favorites = append(r.favorites, *favorite)
	return nil
}

func (r *InMemoryFavoriteRepository) ListProductIDs(clientID uint) ([]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]int64, 0)
	for _, f := range r.favorites {
		if f.ClientID == clientID {
			ids = append(ids, f.ProductID)
		}
	}
	return ids, nil
}

func (r *InMemoryFavoriteRepository) DeleteByClientAndProduct(clientID uint, productID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(clientID, productID)
	if i < 0 {
		return domain.ErrNotFavorited
	}
	r.favorites = append(r.favorites[:i], r.favorites[i+1:]...)
	return nil
}

func (r *InMemoryFavoriteRepository) DeleteAllByClient(clientID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.favorites[:0]
	for _, f := range r.favorites {
		if f.ClientID != clientID {
			kept = append(kept, f)
		}
	}
	r.favorites = kept
	return nil
}

func (r *InMemoryFavoriteRepository) indexOf(clientID uint, productID int64) int {
	for i, f := range r.favorites {
		if f.ClientID == clientID && f.ProductID == productID {
			return i
		}
	}
	return -1
}
