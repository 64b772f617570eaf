package repository

import (
	"sync"
	"time"

	"github.com/felipesilva4/desafio-aiqfome/internal/client/domain"
)

// InMemoryClientRepository is used for tests and local scenarios.
type InMemoryClientRepository struct {
	mu      sync.RWMutex
	nextID  uint
	clients map[uint]domain.Client
}

func NewInMemoryClientRepository() *InMemoryClientRepository {
	return &InMemoryClientRepository{
		nextID:  1,
		clients: make(map[uint]domain.Client),
	}
}

func (r *InMemoryClientRepository) Create(client *domain.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.clients {
		if c.Email == client.Email {
			return domain.ErrEmailTaken
		}
	}
	client.ID = r.nextID
	r.nextID++
	client.CreatedAt = time.Now()
	client.UpdatedAt = client.CreatedAt
	r.clients[client.ID] = *client
	return nil
}

func (r *InMemoryClientRepository) FindByID(id uint) (*domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	client, ok := r.clients[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &client, nil
}

func (r *InMemoryClientRepository) FindAll() ([]domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, c)
	}
	return out, nil
}

func (r *InMemoryClientRepository) Update(client *domain.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.clients[client.ID]; !ok {
		return domain.ErrNotFound
	}
	for id, c := range r.clients {
		if id != client.ID && c.Email == client.Email {
			return domain.ErrEmailTaken
		}
	}
	client.UpdatedAt = time.Now()
	r.clients[client.ID] = *client
	return nil
}

func (r *InMemoryClientRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.clients[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.clients, id)
	return nil
}
