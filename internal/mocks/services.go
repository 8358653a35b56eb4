package mocks

import (
	"context"

	"food-delivery-api/internal/domain"
	"food-delivery-api/internal/service"

	"github.com/stretchr/testify/mock"
)

// OrderServiceInterface is a testify mock of service.OrderServiceInterface.
type OrderServiceInterface struct {
	mock.Mock
}

func NewOrderServiceInterface(t mockConstructorTestingT) *OrderServiceInterface {
	m := &OrderServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderServiceInterface) PlaceOrder(ctx context.Context, req *domain.OrderRequest) (*service.OrderReceipt, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.OrderReceipt), args.Error(1)
}

// CatalogServiceInterface is a testify mock of service.CatalogServiceInterface.
type CatalogServiceInterface struct {
	mock.Mock
}

func NewCatalogServiceInterface(t mockConstructorTestingT) *CatalogServiceInterface {
	m := &CatalogServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CatalogServiceInterface) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Restaurant), args.Error(1)
}

func (m *CatalogServiceInterface) ListDishes(ctx context.Context, restaurantID string) ([]domain.Dish, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Dish), args.Error(1)
}

// SeedServiceInterface is a testify mock of service.SeedServiceInterface.
type SeedServiceInterface struct {
	mock.Mock
}

func NewSeedServiceInterface(t mockConstructorTestingT) *SeedServiceInterface {
	m := &SeedServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *SeedServiceInterface) Seed(ctx context.Context) (*service.SeedResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SeedResult), args.Error(1)
}
