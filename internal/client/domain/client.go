package domain

import (
	"errors"
	"time"
)

var (
	// ErrNotFound indicates no client exists for the given ID
	ErrNotFound = errors.New("client not found")

	// ErrEmailTaken indicates another client already uses the email
	ErrEmailTaken = errors.New("email already registered")
)

// Client represents a registered client (domain model)
type Client struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Client) TableName() string {
	return "clients"
}

// Repository defines the contract for client data access
type Repository interface {
	Create(client *Client) error
	FindByID(id uint) (*Client, error)
	FindAll() ([]Client, error)
	Update(client *Client) error
	Delete(id uint) error
}
