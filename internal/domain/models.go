package domain

import (
	"encoding/json"
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection names in the document store, one per entity kind.
const (
	CollectionRestaurant = "restaurant"
	CollectionDish       = "dish"
	CollectionOrder      = "order"
)

// SchemaNames lists the entity kinds recognized by the API.
func SchemaNames() []string {
	return []string{CollectionRestaurant, CollectionDish, CollectionOrder}
}

const (
	DefaultRating          = 4.6
	DefaultDeliveryTimeMin = 20
)

type Restaurant struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name" validate:"required"`
	Description     string             `bson:"description,omitempty" json:"description,omitempty"`
	ImageURL        string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Cuisine         string             `bson:"cuisine,omitempty" json:"cuisine,omitempty"`
	Rating          float64            `bson:"rating" json:"rating" validate:"gte=0,lte=5"`
	DeliveryTimeMin int                `bson:"delivery_time_min" json:"delivery_time_min" validate:"gte=5,lte=120"`
}

// ApplyDefaults fills rating and delivery time when they were not provided.
func (r *Restaurant) ApplyDefaults() {
	if r.Rating == 0 {
		r.Rating = DefaultRating
	}
	if r.DeliveryTimeMin == 0 {
		r.DeliveryTimeMin = DefaultDeliveryTimeMin
	}
}

type Dish struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RestaurantID string             `bson:"restaurant_id" json:"restaurant_id" validate:"required"`
	Name         string             `bson:"name" json:"name" validate:"required"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Price        float64            `bson:"price" json:"price" validate:"gte=0"`
	ImageURL     string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Spicy        bool               `bson:"spicy" json:"spicy"`
	Vegetarian   bool               `bson:"vegetarian" json:"vegetarian"`
}

// OrderItem is a priced line embedded in an order document.
type OrderItem struct {
	DishID   string  `bson:"dish_id" json:"dish_id"`
	Name     string  `bson:"name" json:"name"`
	Price    float64 `bson:"price" json:"price" validate:"gte=0"`
	Quantity int     `bson:"quantity" json:"quantity" validate:"gte=1"`
}

// Order is immutable once created; subtotal, delivery fee and total are
// always recomputed server-side, never taken from the client.
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RestaurantID    string             `bson:"restaurant_id" json:"restaurant_id"`
	Items           []OrderItem        `bson:"items" json:"items" validate:"dive"`
	Subtotal        float64            `bson:"subtotal" json:"subtotal"`
	DeliveryFee     float64            `bson:"delivery_fee" json:"delivery_fee"`
	Total           float64            `bson:"total" json:"total"`
	CustomerName    string             `bson:"customer_name" json:"customer_name" validate:"required"`
	CustomerEmail   string             `bson:"customer_email" json:"customer_email" validate:"required"`
	CustomerAddress string             `bson:"customer_address" json:"customer_address" validate:"required"`
	Notes           string             `bson:"notes,omitempty" json:"notes,omitempty"`
}

// OrderRequest is the checkout payload.
type OrderRequest struct {
	RestaurantID    string           `json:"restaurant_id"`
	Items           []OrderItemInput `json:"items"`
	CustomerName    string           `json:"customer_name"`
	CustomerEmail   string           `json:"customer_email"`
	CustomerAddress string           `json:"customer_address"`
	Notes           string           `json:"notes"`
}

// OrderItemInput is a raw line item as submitted by the client. Price and
// quantity are deliberately lenient: missing or malformed values coerce to
// sane defaults instead of rejecting the whole order.
type OrderItemInput struct {
	DishID   string    `json:"dish_id"`
	Name     string    `json:"name"`
	Price    *Price    `json:"price"`
	Quantity *Quantity `json:"quantity"`
}

// UnitPrice returns the submitted price coerced to a non-negative value,
// zero when missing.
func (i OrderItemInput) UnitPrice() float64 {
	if i.Price == nil || *i.Price < 0 {
		return 0
	}
	return float64(*i.Price)
}

// Count returns the submitted quantity coerced to a positive integer, one
// when missing.
func (i OrderItemInput) Count() int {
	if i.Quantity == nil || *i.Quantity < 1 {
		return 1
	}
	return int(*i.Quantity)
}

// Price decodes JSON numbers and numeric strings; anything else becomes 0.
type Price float64

func (p *Price) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*p = Price(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			*p = Price(f)
			return nil
		}
	}
	*p = 0
	return nil
}

// Quantity decodes JSON numbers and numeric strings; anything else becomes 0
// and is bumped to 1 by Count.
type Quantity int

func (q *Quantity) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*q = Quantity(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if n, err := strconv.Atoi(s); err == nil {
			*q = Quantity(n)
			return nil
		}
	}
	*q = 0
	return nil
}
