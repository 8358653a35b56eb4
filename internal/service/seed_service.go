package service

import (
	"context"

	"food-delivery-api/internal/domain"
)

// SeedService bootstraps sample restaurants and dishes exactly once. The
// count-then-insert window is not guarded against concurrent seed calls.
type SeedService struct {
	store DocumentStore
}

func NewSeedService(store DocumentStore) *SeedService {
	return &SeedService{store: store}
}

type SeedResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Seed is a no-op when any restaurant document already exists. A failure
// partway through leaves a partial set; there is no rollback.
func (s *SeedService) Seed(ctx context.Context) (*SeedResult, error) {
	existing, err := s.store.CountDocuments(ctx, domain.CollectionRestaurant, nil)
	if err != nil {
		return nil, err
	}
	if existing > 0 {
		return &SeedResult{Status: "ok", Message: "Data already seeded"}, nil
	}

	for _, restaurant := range sampleRestaurants() {
		restaurant.ApplyDefaults()
		if err := domain.Validate(&restaurant); err != nil {
			return nil, err
		}
		restaurantID, err := s.store.CreateDocument(ctx, domain.CollectionRestaurant, &restaurant)
		if err != nil {
			return nil, err
		}

		for _, dish := range sampleDishes(restaurantID) {
			if err := domain.Validate(&dish); err != nil {
				return nil, err
			}
			if _, err := s.store.CreateDocument(ctx, domain.CollectionDish, &dish); err != nil {
				return nil, err
			}
		}
	}

	return &SeedResult{Status: "ok", Message: "Seeded restaurants and dishes"}, nil
}

func sampleRestaurants() []domain.Restaurant {
	return []domain.Restaurant{
		{
			Name:            "Saffron Garden",
			Description:     "Modern Indian plates with bold flavors",
			ImageURL:        "https://images.unsplash.com/photo-1604908176997-43162c1f66fb?q=80&w=2000&auto=format&fit=crop",
			Cuisine:         "Indian",
			Rating:          4.7,
			DeliveryTimeMin: 25,
		},
		{
			Name:            "Toscana Rustica",
			Description:     "Handmade pastas and wood-fired pizza",
			ImageURL:        "https://images.unsplash.com/photo-1544025162-d76694265947?q=80&w=2000&auto=format&fit=crop",
			Cuisine:         "Italian",
			Rating:          4.8,
			DeliveryTimeMin: 30,
		},
		{
			Name:            "Umami Wave",
			Description:     "Ramen, sushi and small plates",
			ImageURL:        "https://images.unsplash.com/photo-1553621042-f6e147245754?q=80&w=2000&auto=format&fit=crop",
			Cuisine:         "Japanese",
			Rating:          4.6,
			DeliveryTimeMin: 20,
		},
	}
}

func sampleDishes(restaurantID string) []domain.Dish {
	return []domain.Dish{
		{
			RestaurantID: restaurantID,
			Name:         "Butter Chicken",
			Description:  "Creamy tomato sauce",
			Price:        14.5,
			ImageURL:     "https://images.unsplash.com/photo-1625944524872-6d2a3dfcc5a7?q=80&w=1600&auto=format&fit=crop",
			Spicy:        true,
		},
		{
			RestaurantID: restaurantID,
			Name:         "Margherita Pizza",
			Description:  "Tomato, mozzarella, basil",
			Price:        12,
			ImageURL:     "https://images.unsplash.com/photo-1513104890138-7c749659a591?q=80&w=1600&auto=format&fit=crop",
			Vegetarian:   true,
		},
		{
			RestaurantID: restaurantID,
			Name:         "Tonkotsu Ramen",
			Description:  "Pork broth, spring onion",
			Price:        13,
			ImageURL:     "https://images.unsplash.com/photo-1604908554027-28e7b1d1b3c0?q=80&w=1600&auto=format&fit=crop",
		},
	}
}
