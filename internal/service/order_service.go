package service

import (
	"context"
	"math"

	"food-delivery-api/internal/domain"
)

const (
	flatDeliveryFee       = 3.99
	freeDeliveryThreshold = 35.00
)

// OrderService recomputes order totals server-side. Client-submitted
// subtotal/total values never enter the calculation. Submitted prices are
// NOT cross-checked against the dish collection.
type OrderService struct {
	store DocumentStore
}

func NewOrderService(store DocumentStore) *OrderService {
	return &OrderService{store: store}
}

// OrderReceipt is what checkout returns to the client.
type OrderReceipt struct {
	OrderID string
	Total   float64
}

// PlaceOrder prices the submitted line items, builds the order document and
// persists it once. The single store write is its only side effect.
func (s *OrderService) PlaceOrder(ctx context.Context, req *domain.OrderRequest) (*OrderReceipt, error) {
	items := make([]domain.OrderItem, 0, len(req.Items))
	subtotal := 0.0

	for _, in := range req.Items {
		price := in.UnitPrice()
		qty := in.Count()
		items = append(items, domain.OrderItem{
			DishID:   in.DishID,
			Name:     in.Name,
			Price:    price,
			Quantity: qty,
		})
		subtotal += price * float64(qty)
	}

	subtotal = round2(subtotal)

	deliveryFee := 0.0
	if subtotal < freeDeliveryThreshold {
		deliveryFee = flatDeliveryFee
	}
	total := round2(subtotal + deliveryFee)

	order := &domain.Order{
		RestaurantID:    req.RestaurantID,
		Items:           items,
		Subtotal:        subtotal,
		DeliveryFee:     deliveryFee,
		Total:           total,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerAddress: req.CustomerAddress,
		Notes:           req.Notes,
	}

	if err := domain.Validate(order); err != nil {
		return nil, err
	}

	id, err := s.store.CreateDocument(ctx, domain.CollectionOrder, order)
	if err != nil {
		return nil, err
	}

	return &OrderReceipt{OrderID: id, Total: total}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
