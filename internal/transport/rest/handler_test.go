package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	perrors "github.com/akosmin/prodcatalog/internal/errors"
	"github.com/akosmin/prodcatalog/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockProductService is a mock implementation of the ProductService interface
type mockProductService struct {
	product  *service.ProductDto
	products []service.ProductDto
	error    error
	calls    int
}

func (m *mockProductService) FindByID(_ context.Context, _ uuid.UUID) (*service.ProductDto, error) {
	m.calls++
	if m.error != nil {
		return nil, m.error
	}
	return m.product, nil
}

func (m *mockProductService) FindAll(_ context.Context) ([]service.ProductDto, error) {
	m.calls++
	if m.error != nil {
		return nil, m.error
	}
	return m.products, nil
}

func (m *mockProductService) Create(_ context.Context, _ service.ProductInputDto) (*service.ProductDto, error) {
	m.calls++
	if m.error != nil {
		return nil, m.error
	}
	return m.product, nil
}

func (m *mockProductService) Update(_ context.Context, _ uuid.UUID, _ service.ProductInputDto) (*service.ProductDto, error) {
	m.calls++
	if m.error != nil {
		return nil, m.error
	}
	return m.product, nil
}

func (m *mockProductService) DeleteByID(_ context.Context, _ uuid.UUID) error {
	m.calls++
	return m.error
}

func newTestRouter(svc service.ProductService) *chi.Mux {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mux := chi.NewRouter()
	NewHandler(svc, logger).RegisterRoutes(mux)
	return mux
}

func doRequest(t *testing.T, mux *chi.Mux, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func Test_Handler_FindAll(t *testing.T) {
	mockID, _ := uuid.Parse("123e4567-e89b-12d3-a456-426614174000")
	createdAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name         string
		mockService  *mockProductService
		expectedCode int
		verify       func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "Success - products returned",
			mockService: &mockProductService{
				products: []service.ProductDto{
					{ID: mockID.String(), Name: "Rice", Weight: 1, Price: 250, CreatedAt: createdAt, UpdatedAt: createdAt},
				},
			},
			expectedCode: http.StatusOK,
			verify: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var got []service.ProductDto
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				require.Len(t, got, 1)
				assert.Equal(t, "Rice", got[0].Name)
			},
		},
		{
			name:         "Success - empty list",
			mockService:  &mockProductService{products: []service.ProductDto{}},
			expectedCode: http.StatusOK,
			verify: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.JSONEq(t, "[]", rec.Body.String())
			},
		},
		{
			name:         "Error - store failure surfaces as 500",
			mockService:  &mockProductService{error: perrors.ErrProductNotFound},
			expectedCode: http.StatusInternalServerError,
			verify: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.JSONEq(t, `{"error":"Failed to fetch products"}`, rec.Body.String())
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mux := newTestRouter(tc.mockService)
			rec := doRequest(t, mux, http.MethodGet, "/api/products", "")
			assert.Equal(t, tc.expectedCode, rec.Code)
			tc.verify(t, rec)
		})
	}
}

func Test_Handler_Create(t *testing.T) {
	mockID, _ := uuid.Parse("123e4567-e89b-12d3-a456-426614174000")
	created := &service.ProductDto{ID: mockID.String(), Name: "Tea", Weight: 1, Price: 500}

	testCases := []struct {
		name          string
		body          string
		mockService   *mockProductService
		expectedCode  int
		expectNoCalls bool
	}{
		{
			name:         "Success - product created",
			body:         `{"name":"Tea","weight":1,"price":500}`,
			mockService:  &mockProductService{product: created},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Success - zero weight and price are valid",
			body:         `{"name":"Sample","weight":0,"price":0}`,
			mockService:  &mockProductService{product: created},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Validation - empty name",
			body:          `{"name":"","weight":1,"price":500}`,
			mockService:   &mockProductService{product: created},
			expectedCode:  http.StatusBadRequest,
			expectNoCalls: true,
		},
		{
			name:          "Validation - whitespace-only name",
			body:          `{"name":"   ","weight":1,"price":500}`,
			mockService:   &mockProductService{product: created},
			expectedCode:  http.StatusBadRequest,
			expectNoCalls: true,
		},
		{
			name:          "Validation - negative weight",
			body:          `{"name":"Tea","weight":-1,"price":500}`,
			mockService:   &mockProductService{product: created},
			expectedCode:  http.StatusBadRequest,
			expectNoCalls: true,
		},
		{
			name:          "Validation - negative price",
			body:          `{"name":"Tea","weight":1,"price":-500}`,
			mockService:   &mockProductService{product: created},
			expectedCode:  http.StatusBadRequest,
			expectNoCalls: true,
		},
		{
			name:          "Validation - missing price",
			body:          `{"name":"Tea","weight":1}`,
			mockService:   &mockProductService{product: created},
			expectedCode:  http.StatusBadRequest,
			expectNoCalls: true,
		},
		{
			name:          "Validation - malformed JSON",
			body:          `{"name":`,
			mockService:   &mockProductService{product: created},
			expectedCode:  http.StatusBadRequest,
			expectNoCalls: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mux := newTestRouter(tc.mockService)
			rec := doRequest(t, mux, http.MethodPost, "/api/products", tc.body)
			assert.Equal(t, tc.expectedCode, rec.Code)
			if tc.expectNoCalls {
				assert.Zero(t, tc.mockService.calls, "service must not be called on invalid input")
			}
		})
	}
}

func Test_Handler_Update(t *testing.T) {
	mockID, _ := uuid.Parse("123e4567-e89b-12d3-a456-426614174000")
	updated := &service.ProductDto{ID: mockID.String(), Name: "Sugar", Weight: 2, Price: 300}

	testCases := []struct {
		name         string
		target       string
		body         string
		mockService  *mockProductService
		expectedCode int
	}{
		{
			name:         "Success - product updated",
			target:       "/api/products/" + mockID.String(),
			body:         `{"name":"Sugar","weight":2,"price":300}`,
			mockService:  &mockProductService{product: updated},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Error - product not found",
			target:       "/api/products/" + mockID.String(),
			body:         `{"name":"Sugar","weight":2,"price":300}`,
			mockService:  &mockProductService{error: perrors.ErrProductNotFound},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Error - invalid ID",
			target:       "/api/products/not-a-uuid",
			body:         `{"name":"Sugar","weight":2,"price":300}`,
			mockService:  &mockProductService{product: updated},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Validation - negative weight",
			target:       "/api/products/" + mockID.String(),
			body:         `{"name":"Sugar","weight":-2,"price":300}`,
			mockService:  &mockProductService{product: updated},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mux := newTestRouter(tc.mockService)
			rec := doRequest(t, mux, http.MethodPut, tc.target, tc.body)
			assert.Equal(t, tc.expectedCode, rec.Code)
		})
	}
}

func Test_Handler_DeleteByID(t *testing.T) {
	mockID, _ := uuid.Parse("123e4567-e89b-12d3-a456-426614174000")

	t.Run("Success - delete acknowledged", func(t *testing.T) {
		mux := newTestRouter(&mockProductService{})
		rec := doRequest(t, mux, http.MethodDelete, "/api/products/"+mockID.String(), "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Product deleted"}`, rec.Body.String())
	})

	t.Run("Error - invalid ID", func(t *testing.T) {
		mux := newTestRouter(&mockProductService{})
		rec := doRequest(t, mux, http.MethodDelete, "/api/products/nope", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func Test_Handler_FindByID(t *testing.T) {
	mockID, _ := uuid.Parse("123e4567-e89b-12d3-a456-426614174000")

	t.Run("Success - product found", func(t *testing.T) {
		mux := newTestRouter(&mockProductService{
			product: &service.ProductDto{ID: mockID.String(), Name: "Rice"},
		})
		rec := doRequest(t, mux, http.MethodGet, "/api/products/"+mockID.String(), "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Error - product not found", func(t *testing.T) {
		mux := newTestRouter(&mockProductService{error: perrors.ErrProductNotFound})
		rec := doRequest(t, mux, http.MethodGet, "/api/products/"+mockID.String(), "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func Test_Handler_HealthCheck(t *testing.T) {
	mux := newTestRouter(&mockProductService{})
	rec := doRequest(t, mux, http.MethodGet, "/api", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"API is running"}`, rec.Body.String())
}
