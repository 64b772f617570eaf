package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/felipesilva4/desafio-aiqfome/internal/catalog/domain"
	"github.com/felipesilva4/desafio-aiqfome/internal/client/domain"
	"github.com/felipesilva4/desafio-aiqfome/internal/client/repository"
	"github.com/felipesilva4/desafio-aiqfome/internal/events"
	favoritedomain "github.com/felipesilva4/desafio-aiqfome/internal/favorite/domain"
	favoriterepo "github.com/felipesilva4/desafio-aiqfome/internal/favorite/repository"
	"github.com/felipesilva4/desafio-aiqfome/pkg/auth"
)

// stubSource serves products from a fixed map.
type stubSource struct {
	products map[int64]catalog.Product
}

func (s *stubSource) FetchProduct(_ context.Context, productID int64) (*catalog.Product, error) {
	p, ok := s.products[productID]
	if !ok {
		return nil, catalog.ErrProductNotFound
	}
	return &p, nil
}

// missCache never holds anything; every lookup goes upstream.
type missCache struct{}

func (missCache) Get(context.Context, int64) (*catalog.Product, error) {
	return nil, catalog.ErrCacheMiss
}

func (missCache) SetIfAbsent(context.Context, *catalog.Product, time.Duration) error {
	return nil
}

type clientEnv struct {
	router    *mux.Router
	clients   *repository.InMemoryClientRepository
	favorites *favoriterepo.InMemoryFavoriteRepository
	token     string
}

func setupClientEnv(t *testing.T, products map[int64]catalog.Product) *clientEnv {
	t.Helper()

	auth.Configure("test-secret", time.Hour)

	clients := repository.NewInMemoryClientRepository()
	favorites := favoriterepo.NewInMemoryFavoriteRepository()

	handler := NewClientHandler(
		clients,
		favorites,
		&stubSource{products: products},
		missCache{},
		events.NoopPublisher{},
		10*time.Minute,
	)

	router := mux.NewRouter()
	handler.RegisterRoutes(router)

	token, err := auth.GenerateToken(1, "admin@example.com")
	require.NoError(t, err)

	return &clientEnv{router: router, clients: clients, favorites: favorites, token: token}
}

func (e *clientEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	if body == "" {
		body = "{}"
	}
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+e.token)
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func TestCreateClientEndpoint(t *testing.T) {
	env := setupClientEnv(t, nil)

	rec := env.do(t, "POST", "/clients", `{"name": "Ana Lima", "email": "Ana@Example.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created domain.Client
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "Ana Lima", created.Name)
	assert.Equal(t, "ana@example.com", created.Email)

	// Same email again conflicts regardless of case
	rec = env.do(t, "POST", "/clients", `{"name": "Other", "email": "ana@example.com"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreateClientValidation(t *testing.T) {
	env := setupClientEnv(t, nil)

	rec := env.do(t, "POST", "/clients", `{"name": "", "email": "a@b.com"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, "POST", "/clients", `{"name": "Ana", "email": "not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetClientWithFavorites(t *testing.T) {
	env := setupClientEnv(t, map[int64]catalog.Product{
		5: {ID: 5, Title: "Mug", Price: 4.5},
	})

	c := &domain.Client{Name: "Ana", Email: "ana@example.com"}
	require.NoError(t, env.clients.Create(c))
	require.NoError(t, env.favorites.Create(&favoritedomain.Favorite{ClientID: c.ID, ProductID: 5}))

	rec := env.do(t, "GET", fmt.Sprintf("/clients/%d", c.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		domain.Client
		FavoriteProducts []catalog.Product `json:"favorite_products"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Ana", resp.Name)
	require.Len(t, resp.FavoriteProducts, 1)
	assert.Equal(t, "Mug", resp.FavoriteProducts[0].Title)
}

func TestGetClientNotFound(t *testing.T) {
	env := setupClientEnv(t, nil)

	rec := env.do(t, "GET", "/clients/99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateClientEndpoint(t *testing.T) {
	env := setupClientEnv(t, nil)

	c := &domain.Client{Name: "Ana", Email: "ana@example.com"}
	require.NoError(t, env.clients.Create(c))

	rec := env.do(t, "PUT", fmt.Sprintf("/clients/%d", c.ID), `{"name": "Ana Paula"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated domain.Client
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "Ana Paula", updated.Name)
	assert.Equal(t, "ana@example.com", updated.Email)
}

func TestDeleteClientRemovesFavorites(t *testing.T) {
	env := setupClientEnv(t, nil)

	c := &domain.Client{Name: "Ana", Email: "ana@example.com"}
	require.NoError(t, env.clients.Create(c))
	require.NoError(t, env.favorites.Create(&favoritedomain.Favorite{ClientID: c.ID, ProductID: 5}))

	rec := env.do(t, "DELETE", fmt.Sprintf("/clients/%d", c.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)

	_, err := env.clients.FindByID(c.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	ids, err := env.favorites.ListProductIDs(c.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)

	rec = env.do(t, "DELETE", fmt.Sprintf("/clients/%d", c.ID), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListClientsEndpoint(t *testing.T) {
	env := setupClientEnv(t, nil)

	require.NoError(t, env.clients.Create(&domain.Client{Name: "Ana", Email: "ana@example.com"}))
	require.NoError(t, env.clients.Create(&domain.Client{Name: "Beto", Email: "beto@example.com"}))

	rec := env.do(t, "GET", "/clients", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var clients []domain.Client
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &clients))
	assert.Len(t, clients, 2)
}

func TestClientRoutesRequireToken(t *testing.T) {
	env := setupClientEnv(t, nil)

	req := httptest.NewRequest("GET", "/clients", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
