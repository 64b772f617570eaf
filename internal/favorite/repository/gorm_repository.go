package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/felipesilva4/desafio-aiqfome/internal/favorite/domain"
)

// GormFavoriteRepository implements domain.Repository using GORM. The
// composite unique index on (client_id, product_id) is the authoritative
// duplicate guard.
type GormFavoriteRepository struct {
	db *gorm.DB
}

// NewGormFavoriteRepository creates a new GORM favorite repository
func NewGormFavoriteRepository(db *gorm.DB) *GormFavoriteRepository {
	return &GormFavoriteRepository{db: db}
}

// Exists reports whether the (client, product) pair is already favorited
func (r *GormFavoriteRepository) Exists(clientID uint, productID int64) (bool, error) {
	var count int64
	err := r.db.Model(&domain.Favorite{}).
		Where("client_id = ? AND product_id = ?", clientID, productID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return count > 0, nil
}

// Create inserts a new favorite. A unique constraint violation is reported
// as ErrAlreadyFavorited.
func (r *GormFavoriteRepository) Create(favorite *domain.Favorite) error {
	if err := r.db.Create(favorite).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrAlreadyFavorited
		}
		return fmt.Errorf("failed to create favorite: %w", err)
	}
	return nil
}

// ListProductIDs returns the product IDs favorited by a client, oldest first
func (r *GormFavoriteRepository) ListProductIDs(clientID uint) ([]int64, error) {
	var ids []int64
	err := r.db.Model(&domain.Favorite{}).
		Where("client_id = ?", clientID).
		Order("created_at").
		Pluck("product_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return ids, nil
}

// DeleteByClientAndProduct removes a single favorite.
// Returns ErrNotFavorited when the pair does not exist.
func (r *GormFavoriteRepository) DeleteByClientAndProduct(clientID uint, productID int64) error {
	result := r.db.
		Where("client_id = ? AND product_id = ?", clientID, productID).
		Delete(&domain.Favorite{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete favorite: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFavorited
	}
	return nil
}

// DeleteAllByClient removes every favorite of a client, used when the
// client itself is deleted
func (r *GormFavoriteRepository) DeleteAllByClient(clientID uint) error {
	if err := r.db.Where("client_id = ?", clientID).Delete(&domain.Favorite{}).Error; err != nil {
		return fmt.Errorf("failed to delete favorites: %w", err)
	}
	return nil
}

// AutoMigrate runs database migrations
func (r *GormFavoriteRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Favorite{})
}
