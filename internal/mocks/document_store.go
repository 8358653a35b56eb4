package mocks

import (
	"context"

	"food-delivery-api/internal/storage"

	"github.com/stretchr/testify/mock"
)

type mockConstructorTestingT interface {
	mock.TestingT
	Cleanup(func())
}

// DocumentStore is a testify mock of service.DocumentStore.
type DocumentStore struct {
	mock.Mock
}

func NewDocumentStore(t mockConstructorTestingT) *DocumentStore {
	m := &DocumentStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *DocumentStore) CreateDocument(ctx context.Context, collection string, entity any) (string, error) {
	args := m.Called(ctx, collection, entity)
	return args.String(0), args.Error(1)
}

func (m *DocumentStore) GetDocuments(ctx context.Context, collection string, filter storage.Filter, limit int64, out any) error {
	args := m.Called(ctx, collection, filter, limit, out)
	return args.Error(0)
}

func (m *DocumentStore) CountDocuments(ctx context.Context, collection string, filter storage.Filter) (int64, error) {
	args := m.Called(ctx, collection, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *DocumentStore) Diagnostics(ctx context.Context) storage.DiagReport {
	args := m.Called(ctx)
	return args.Get(0).(storage.DiagReport)
}
