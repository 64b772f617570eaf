package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	catalog "github.com/felipesilva4/desafio-aiqfome/internal/catalog/domain"
	clientdomain "github.com/felipesilva4/desafio-aiqfome/internal/client/domain"
	"github.com/felipesilva4/desafio-aiqfome/internal/events"
	"github.com/felipesilva4/desafio-aiqfome/internal/favorite/domain"
	"github.com/felipesilva4/desafio-aiqfome/internal/favorite/usecase/command"
	"github.com/felipesilva4/desafio-aiqfome/internal/favorite/usecase/query"
	"github.com/felipesilva4/desafio-aiqfome/pkg/auth"
)

// FavoriteHandler handles HTTP requests for a client's favorite products
type FavoriteHandler struct {
	addHandler    *command.AddFavoriteHandler
	removeHandler *command.RemoveFavoriteHandler
	listHandler   *query.ListFavoritesHandler
}

// NewFavoriteHandler creates a new favorite handler
func NewFavoriteHandler(
	favorites domain.Repository,
	clients clientdomain.Repository,
	source catalog.Source,
	cache catalog.Cache,
	publisher events.Publisher,
	cacheTTL time.Duration,
) *FavoriteHandler {
	return &FavoriteHandler{
		addHandler:    command.NewAddFavoriteHandler(favorites, clients, source, cache, publisher, cacheTTL),
		removeHandler: command.NewRemoveFavoriteHandler(favorites, publisher),
		listHandler:   query.NewListFavoritesHandler(favorites, clients, source, cache, cacheTTL),
	}
}

// AddFavorite handles POST /clients/{id}/favorites
func (h *FavoriteHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	clientID, ok := h.clientIDFromPath(w, r)
	if !ok {
		return
	}

	var req struct {
		ProductID int64 `json:"product_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ProductID <= 0 {
		respondError(w, http.StatusBadRequest, "product_id must be a positive integer")
		return
	}

	cmd := command.AddFavoriteCommand{ClientID: clientID, ProductID: req.ProductID}
	product, err := h.addHandler.Handle(r.Context(), cmd)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyFavorited):
			respondError(w, http.StatusConflict, "Product already favorited")
		case errors.Is(err, catalog.ErrProductNotFound):
			respondError(w, http.StatusNotFound, "Product not found")
		case errors.Is(err, clientdomain.ErrNotFound):
			respondError(w, http.StatusNotFound, "Client not found")
		case errors.Is(err, catalog.ErrUpstreamUnavailable):
			respondError(w, http.StatusBadGateway, "Product catalog unavailable")
		default:
			respondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Product favorited successfully",
		"product": product,
	})
}

// ListFavorites handles GET /clients/{id}/favorites
func (h *FavoriteHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	clientID, ok := h.clientIDFromPath(w, r)
	if !ok {
		return
	}

	products, err := h.listHandler.Handle(r.Context(), query.ListFavoritesQuery{ClientID: clientID})
	if err != nil {
		if errors.Is(err, clientdomain.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Client not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, products)
}

// RemoveFavorite handles DELETE /clients/{id}/favorites/{productId}
func (h *FavoriteHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	clientID, ok := h.clientIDFromPath(w, r)
	if !ok {
		return
	}

	productID, err := strconv.ParseInt(mux.Vars(r)["productId"], 10, 64)
	if err != nil || productID <= 0 {
		respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	cmd := command.RemoveFavoriteCommand{ClientID: clientID, ProductID: productID}
	if err := h.removeHandler.Handle(r.Context(), cmd); err != nil {
		if errors.Is(err, domain.ErrNotFavorited) {
			respondError(w, http.StatusNotFound, "Product not in favorites")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Favorite removed successfully"})
}

// RegisterRoutes registers all favorite routes
func (h *FavoriteHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/clients/{id}/favorites",
		metricsMiddleware("/clients/{id}/favorites", auth.Middleware(h.AddFavorite))).Methods("POST")
	router.HandleFunc("/clients/{id}/favorites",
		metricsMiddleware("/clients/{id}/favorites", auth.Middleware(h.ListFavorites))).Methods("GET")
	router.HandleFunc("/clients/{id}/favorites/{productId}",
		metricsMiddleware("/clients/{id}/favorites/{productId}", auth.Middleware(h.RemoveFavorite))).Methods("DELETE")
}

func (h *FavoriteHandler) clientIDFromPath(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid client ID")
		return 0, false
	}
	return uint(id), true
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
