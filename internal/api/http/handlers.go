package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"

	"food-delivery-api/internal/domain"
	"food-delivery-api/internal/service"
	"food-delivery-api/internal/storage"

	"github.com/gorilla/mux"
)

type Handler struct {
	Catalog service.CatalogServiceInterface
	Orders  service.OrderServiceInterface
	Seeder  service.SeedServiceInterface
	Store   service.DocumentStore
}

func NewHandler(catalog service.CatalogServiceInterface, orders service.OrderServiceInterface, seeder service.SeedServiceInterface, store service.DocumentStore) *Handler {
	return &Handler{
		Catalog: catalog,
		Orders:  orders,
		Seeder:  seeder,
		Store:   store,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.root).Methods("GET")
	r.HandleFunc("/schema", h.getSchemas).Methods("GET")
	r.HandleFunc("/seed", h.seed).Methods("POST")
	r.HandleFunc("/restaurants", h.listRestaurants).Methods("GET")
	r.HandleFunc("/restaurants/{restaurantId}/dishes", h.listDishes).Methods("GET")
	r.HandleFunc("/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/test", h.testDatabase).Methods("GET")
}

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Food Delivery API is running"})
}

func (h *Handler) getSchemas(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"schemas": domain.SchemaNames()})
}

func (h *Handler) seed(w http.ResponseWriter, r *http.Request) {
	result, err := h.Seeder.Seed(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) listRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Catalog.ListRestaurants(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) listDishes(w http.ResponseWriter, r *http.Request) {
	restaurantID := mux.Vars(r)["restaurantId"]

	dishes, err := h.Catalog.ListDishes(r.Context(), restaurantID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dishes)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	receipt, err := h.Orders.PlaceOrder(r.Context(), &req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"order_id": receipt.OrderID,
		"total":    receipt.Total,
	})
}

// testDatabase reports a store connectivity snapshot. Informational only.
func (h *Handler) testDatabase(w http.ResponseWriter, r *http.Request) {
	response := map[string]any{
		"backend":           "running",
		"database":          "not available",
		"database_url":      envFlag("DATABASE_URL"),
		"database_name":     envFlag("DATABASE_NAME"),
		"connection_status": "not connected",
		"collections":       []string{},
	}

	diag := h.Store.Diagnostics(r.Context())
	if diag.Available {
		switch {
		case diag.Connected:
			response["database"] = "connected"
			response["connection_status"] = "connected"
			response["collections"] = diag.Collections
		default:
			response["database"] = "error: " + truncate(diag.Error, 50)
		}
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var verrs domain.ValidationErrors
	switch {
	case errors.Is(err, storage.ErrStorageUnavailable):
		http.Error(w, "Database not configured", http.StatusInternalServerError)
	case errors.As(err, &verrs):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"detail": verrs})
	default:
		log.Printf("[food-api] request failed: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func envFlag(key string) string {
	if os.Getenv(key) != "" {
		return "set"
	}
	return "not set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
