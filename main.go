package main

import (
	"context"
	"log"
	"time"

	"food-delivery-api/config"
	httpapi "food-delivery-api/internal/api/http"
	"food-delivery-api/internal/service"
	"food-delivery-api/internal/storage"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := storage.Connect(ctx, cfg.DatabaseURL, cfg.DatabaseName)
	if err != nil {
		log.Printf("[food-api] database unavailable, serving without store: %v", err)
		store = storage.Unavailable()
	}
	if !store.Available() {
		log.Printf("[food-api] no database configured, listings will be empty and writes rejected")
	}
	defer store.Close(context.Background())

	handler := httpapi.NewHandler(
		service.NewCatalogService(store),
		service.NewOrderService(store),
		service.NewSeedService(store),
		store,
	)

	httpapi.StartServer(":"+cfg.Port, httpapi.NewRouter(handler))
}
