package service

import (
	"context"

	"food-delivery-api/internal/domain"
	"food-delivery-api/internal/storage"
)

// DocumentStore is the slice of the storage adapter the services depend on.
type DocumentStore interface {
	CreateDocument(ctx context.Context, collection string, entity any) (string, error)
	GetDocuments(ctx context.Context, collection string, filter storage.Filter, limit int64, out any) error
	CountDocuments(ctx context.Context, collection string, filter storage.Filter) (int64, error)
	Diagnostics(ctx context.Context) storage.DiagReport
}

type OrderServiceInterface interface {
	PlaceOrder(ctx context.Context, req *domain.OrderRequest) (*OrderReceipt, error)
}

type CatalogServiceInterface interface {
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	ListDishes(ctx context.Context, restaurantID string) ([]domain.Dish, error)
}

type SeedServiceInterface interface {
	Seed(ctx context.Context) (*SeedResult, error)
}
