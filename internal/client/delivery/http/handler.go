package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	catalog "github.com/felipesilva4/desafio-aiqfome/internal/catalog/domain"
	"github.com/felipesilva4/desafio-aiqfome/internal/client/domain"
	"github.com/felipesilva4/desafio-aiqfome/internal/client/usecase/command"
	"github.com/felipesilva4/desafio-aiqfome/internal/client/usecase/query"
	"github.com/felipesilva4/desafio-aiqfome/internal/events"
	favoritedomain "github.com/felipesilva4/desafio-aiqfome/internal/favorite/domain"
	favoritequery "github.com/felipesilva4/desafio-aiqfome/internal/favorite/usecase/query"
	"github.com/felipesilva4/desafio-aiqfome/pkg/auth"
	"github.com/felipesilva4/desafio-aiqfome/pkg/logger"
)

// ClientHandler handles HTTP requests for client management
type ClientHandler struct {
	createHandler    *command.CreateClientHandler
	updateHandler    *command.UpdateClientHandler
	deleteHandler    *command.DeleteClientHandler
	getHandler       *query.GetClientHandler
	listHandler      *query.ListClientsHandler
	favoritesHandler *favoritequery.ListFavoritesHandler
}

// NewClientHandler creates a new client handler
func NewClientHandler(
	clients domain.Repository,
	favorites favoritedomain.Repository,
	source catalog.Source,
	cache catalog.Cache,
	publisher events.Publisher,
	cacheTTL time.Duration,
) *ClientHandler {
	return &ClientHandler{
		createHandler:    command.NewCreateClientHandler(clients),
		updateHandler:    command.NewUpdateClientHandler(clients),
		deleteHandler:    command.NewDeleteClientHandler(clients, favorites, publisher),
		getHandler:       query.NewGetClientHandler(clients),
		listHandler:      query.NewListClientsHandler(clients),
		favoritesHandler: favoritequery.NewListFavoritesHandler(favorites, clients, source, cache, cacheTTL),
	}
}

// clientResponse is a client together with its resolved favorite products
type clientResponse struct {
	*domain.Client
	FavoriteProducts []catalog.Product `json:"favorite_products"`
}

// CreateClient handles POST /clients
func (h *ClientHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	client, err := h.createHandler.Handle(command.CreateClientCommand{Name: req.Name, Email: req.Email})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			respondError(w, http.StatusConflict, "Email already registered")
			return
		}
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, client)
}

// GetClient handles GET /clients/{id}
func (h *ClientHandler) GetClient(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idFromPath(w, r)
	if !ok {
		return
	}

	client, err := h.getHandler.Handle(query.GetClientQuery{ID: id})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Client not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	products, err := h.favoritesHandler.Handle(r.Context(), favoritequery.ListFavoritesQuery{ClientID: id})
	if err != nil {
		logger.Warn(r.Context()).Err(err).Uint("client_id", id).Msg("Failed to resolve favorites for client detail")
		products = []catalog.Product{}
	}

	respondJSON(w, http.StatusOK, clientResponse{Client: client, FavoriteProducts: products})
}

// ListClients handles GET /clients
func (h *ClientHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.listHandler.Handle(query.ListClientsQuery{})
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, clients)
}

// UpdateClient handles PUT /clients/{id}
func (h *ClientHandler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idFromPath(w, r)
	if !ok {
		return
	}

	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	client, err := h.updateHandler.Handle(command.UpdateClientCommand{ID: id, Name: req.Name, Email: req.Email})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			respondError(w, http.StatusNotFound, "Client not found")
		case errors.Is(err, domain.ErrEmailTaken):
			respondError(w, http.StatusConflict, "Email already registered")
		default:
			respondError(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	respondJSON(w, http.StatusOK, client)
}

// DeleteClient handles DELETE /clients/{id}
func (h *ClientHandler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idFromPath(w, r)
	if !ok {
		return
	}

	if _, err := h.deleteHandler.Handle(r.Context(), command.DeleteClientCommand{ID: id}); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Client not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Client deleted successfully"})
}

// RegisterRoutes registers all client routes
func (h *ClientHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/clients",
		metricsMiddleware("/clients", auth.Middleware(h.CreateClient))).Methods("POST")
	router.HandleFunc("/clients",
		metricsMiddleware("/clients", auth.Middleware(h.ListClients))).Methods("GET")
	router.HandleFunc("/clients/{id}",
		metricsMiddleware("/clients/{id}", auth.Middleware(h.GetClient))).Methods("GET")
	router.HandleFunc("/clients/{id}",
		metricsMiddleware("/clients/{id}", auth.Middleware(h.UpdateClient))).Methods("PUT", "PATCH")
	router.HandleFunc("/clients/{id}",
		metricsMiddleware("/clients/{id}", auth.Middleware(h.DeleteClient))).Methods("DELETE")
}

func (h *ClientHandler) idFromPath(w http.ResponseWriter, r *http.Request) (uint, bool) {
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
