package httpapi_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "food-delivery-api/internal/api/http"
	"food-delivery-api/internal/domain"
	"food-delivery-api/internal/mocks"
	"food-delivery-api/internal/service"
	"food-delivery-api/internal/storage"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type testDeps struct {
	catalog *mocks.CatalogServiceInterface
	orders  *mocks.OrderServiceInterface
	seeder  *mocks.SeedServiceInterface
	store   *mocks.DocumentStore
}

func setupTestRouter(t *testing.T) (*mux.Router, testDeps) {
	deps := testDeps{
		catalog: mocks.NewCatalogServiceInterface(t),
		orders:  mocks.NewOrderServiceInterface(t),
		seeder:  mocks.NewSeedServiceInterface(t),
		store:   mocks.NewDocumentStore(t),
	}
	handler := httpapi.NewHandler(deps.catalog, deps.orders, deps.seeder, deps.store)
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r, deps
}

func TestRoot(t *testing.T) {
	router, _ := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Food Delivery API is running")
}

func TestGetSchemas(t *testing.T) {
	router, _ := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/schema", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"schemas":["restaurant","dish","order"]}`, recorder.Body.String())
}

func TestSeed(t *testing.T) {
	tests := []struct {
		name         string
		prepareMocks func(deps testDeps)
		expectedCode int
		expectedBody string
	}{
		{
			name: "seeded",
			prepareMocks: func(deps testDeps) {
				deps.seeder.On("Seed", mock.Anything).
					Return(&service.SeedResult{Status: "ok", Message: "Seeded restaurants and dishes"}, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: "Seeded restaurants and dishes",
		},
		{
			name: "already_seeded",
			prepareMocks: func(deps testDeps) {
				deps.seeder.On("Seed", mock.Anything).
					Return(&service.SeedResult{Status: "ok", Message: "Data already seeded"}, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: "Data already seeded",
		},
		{
			name: "database_not_configured",
			prepareMocks: func(deps testDeps) {
				deps.seeder.On("Seed", mock.Anything).
					Return(nil, storage.ErrStorageUnavailable).Once()
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: "Database not configured",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, deps := setupTestRouter(t)
			testCase.prepareMocks(deps)

			req := httptest.NewRequest(http.MethodPost, "/seed", nil)
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, testCase.expectedCode, recorder.Code)
			assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
		})
	}
}

func TestListRestaurants(t *testing.T) {
	router, deps := setupTestRouter(t)

	deps.catalog.On("ListRestaurants", mock.Anything).
		Return([]domain.Restaurant{{Name: "Umami Wave", Cuisine: "Japanese", Rating: 4.6, DeliveryTimeMin: 20}}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/restaurants", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Umami Wave")
}

func TestListDishes_UnknownRestaurantIsEmptyList(t *testing.T) {
	router, deps := setupTestRouter(t)

	deps.catalog.On("ListDishes", mock.Anything, "no-such-restaurant").
		Return([]domain.Dish{}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/restaurants/no-such-restaurant/dishes", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `[]`, recorder.Body.String())
}

func TestCreateOrder(t *testing.T) {
	tests := []struct {
		name         string
		payload      string
		prepareMocks func(deps testDeps)
		expectedCode int
		expectedBody string
	}{
		{
			name:    "success",
			payload: `{"restaurant_id":"r1","items":[{"dish_id":"d1","name":"Pizza","price":12,"quantity":2}],"customer_name":"Ada","customer_email":"ada@example.com","customer_address":"1 Main St"}`,
			prepareMocks: func(deps testDeps) {
				deps.orders.On("PlaceOrder", mock.Anything, mock.AnythingOfType("*domain.OrderRequest")).
					Return(&service.OrderReceipt{OrderID: "order-1", Total: 27.99}, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `"order_id":"order-1"`,
		},
		{
			name:         "invalid_json",
			payload:      `not json`,
			prepareMocks: func(deps testDeps) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "validation_failure",
			payload: `{"restaurant_id":"r1","items":[]}`,
			prepareMocks: func(deps testDeps) {
				deps.orders.On("PlaceOrder", mock.Anything, mock.Anything).
					Return(nil, domain.ValidationErrors{{Field: "customer_name", Message: "is required"}}).Once()
			},
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: `"customer_name"`,
		},
		{
			name:    "storage_unavailable",
			payload: `{"restaurant_id":"r1","items":[],"customer_name":"Ada","customer_email":"a@b.c","customer_address":"x"}`,
			prepareMocks: func(deps testDeps) {
				deps.orders.On("PlaceOrder", mock.Anything, mock.Anything).
					Return(nil, storage.ErrStorageUnavailable).Once()
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: "Database not configured",
		},
		{
			name:    "persistence_failure",
			payload: `{"restaurant_id":"r1","items":[],"customer_name":"Ada","customer_email":"a@b.c","customer_address":"x"}`,
			prepareMocks: func(deps testDeps) {
				deps.orders.On("PlaceOrder", mock.Anything, mock.Anything).
					Return(nil, &storage.PersistenceError{Op: "insert", Collection: "order", Err: assert.AnError}).Once()
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, deps := setupTestRouter(t)
			testCase.prepareMocks(deps)

			req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString(testCase.payload))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestTestDatabase(t *testing.T) {
	tests := []struct {
		name         string
		report       storage.DiagReport
		expectedBody []string
	}{
		{
			name:         "no_store",
			report:       storage.DiagReport{},
			expectedBody: []string{"not available", "not connected"},
		},
		{
			name: "connected",
			report: storage.DiagReport{
				Available:    true,
				Connected:    true,
				DatabaseName: "fooddb",
				Collections:  []string{"restaurant", "dish", "order"},
			},
			expectedBody: []string{`"connected"`, `"restaurant"`},
		},
		{
			name: "reachable_but_failing",
			report: storage.DiagReport{
				Available: true,
				Error:     "server selection timeout",
			},
			expectedBody: []string{"error: server selection timeout"},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, deps := setupTestRouter(t)
			deps.store.On("Diagnostics", mock.Anything).Return(testCase.report).Once()

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, http.StatusOK, recorder.Code)
			for _, fragment := range testCase.expectedBody {
				assert.Contains(t, recorder.Body.String(), fragment)
			}
		})
	}
}
