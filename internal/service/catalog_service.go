package service

import (
	"context"

	"food-delivery-api/internal/domain"
	"food-delivery-api/internal/storage"
)

const (
	restaurantListCap = 50
	dishListCap       = 100
)

// CatalogService serves the read-only restaurant and dish listings.
type CatalogService struct {
	store DocumentStore
}

func NewCatalogService(store DocumentStore) *CatalogService {
	return &CatalogService{store: store}
}

func (s *CatalogService) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	restaurants := []domain.Restaurant{}
	if err := s.store.GetDocuments(ctx, domain.CollectionRestaurant, nil, restaurantListCap, &restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}

// ListDishes returns a restaurant's dishes. An unknown restaurant id is not
// an error, just an empty list.
func (s *CatalogService) ListDishes(ctx context.Context, restaurantID string) ([]domain.Dish, error) {
	dishes := []domain.Dish{}
	filter := storage.Filter{"restaurant_id": restaurantID}
	if err := s.store.GetDocuments(ctx, domain.CollectionDish, filter, dishListCap, &dishes); err != nil {
		return nil, err
	}
	return dishes, nil
}
