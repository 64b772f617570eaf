package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/felipesilva4/desafio-aiqfome/internal/client/domain"
)

// GormClientRepository implements domain.Repository using GORM
type GormClientRepository struct {
	db *gorm.DB
}

// NewGormClientRepository creates a new GORM client repository
func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

// Create inserts a new client
func (r *GormClientRepository) Create(client *domain.Client) error {
	if err := r.db.Create(client).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("failed to create client: %w", err)
	}
	return nil
}

// FindByID retrieves a client by ID
func (r *GormClientRepository) FindByID(id uint) (*domain.Client, error) {
	var client domain.Client
	if err := r.db.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client: %w", err)
	}
	return &client, nil
}

// FindAll retrieves all clients
func (r *GormClientRepository) FindAll() ([]domain.Client, error) {
	var clients []domain.Client
	if err := r.db.Order("created_at DESC").Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("failed to find clients: %w", err)
	}
	return clients, nil
}

// Update saves a client's information
func (r *GormClientRepository) Update(client *domain.Client) error {
	if err := r.db.Save(client).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("failed to update client: %w", err)
	}
	return nil
}

// Delete removes a client
func (r *GormClientRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Client{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete client: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AutoMigrate runs database migrations
func (r *GormClientRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Client{})
}
