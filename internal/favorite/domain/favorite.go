package domain

import (
	"errors"
	"time"
)

var (
	// ErrAlreadyFavorited indicates the client already favorited the product
	ErrAlreadyFavorited = errors.New("product already favorited")

	// ErrNotFavorited indicates the (client, product) pair does not exist
	ErrNotFavorited = errors.New("product not in favorites")
)

// Favorite links a client to a product on the external catalog. Records are
// immutable once created; removal is the only mutation.
type Favorite struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ClientID  uint      `json:"client_id" gorm:"not null;uniqueIndex:idx_favorites_client_product"`
	ProductID int64     `json:"product_id" gorm:"not null;uniqueIndex:idx_favorites_client_product"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name
func (Favorite) TableName() string {
	return "client_favorites"
}

// Repository defines the contract for favorite persistence.
//
// Uniqueness of (client_id, product_id) is enforced at the storage layer;
// Create reports a violation as ErrAlreadyFavorited regardless of any
// earlier Exists check, which is what makes concurrent duplicate adds safe.
type Repository interface {
	Exists(clientID uint, productID int64) (bool, error)
	Create(favorite *Favorite) error
	ListProductIDs(clientID uint) ([]int64, error)
	DeleteByClientAndProduct(clientID uint, productID int64) error
	DeleteAllByClient(clientID uint) error
}
