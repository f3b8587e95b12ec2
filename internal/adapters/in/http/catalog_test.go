package http_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpin "storefront/internal/adapters/in/http"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDiscountCatalogRepository struct{ mock.Mock }

func (m *MockDiscountCatalogRepository) Insert(_ context.Context, _ *product.Product) error {
	return errors.New("not implemented in mock")
}
func (m *MockDiscountCatalogRepository) Get(_ context.Context, _ uuid.UUID, _ string) (*product.Product, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockDiscountCatalogRepository) Update(_ context.Context, _ *product.Product, _ string) error {
	return errors.New("not implemented in mock")
}
func (m *MockDiscountCatalogRepository) Delete(_ context.Context, _ uuid.UUID) error {
	return errors.New("not implemented in mock")
}
func (m *MockDiscountCatalogRepository) ListByCategory(_ context.Context, _ string) ([]*product.Product, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockDiscountCatalogRepository) ListAll(_ context.Context) ([]*product.Product, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockDiscountCatalogRepository) ListFeatured(_ context.Context, _ []string, _ int) ([]*product.Product, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockDiscountCatalogRepository) ApplyDiscount(ctx context.Context, percent float64) (int64, error) {
	args := m.Called(ctx, percent)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockDiscountCatalogRepository) ListPartitions(_ context.Context) ([]string, error) {
	return nil, errors.New("not implemented in mock")
}

func discountRequest(t *testing.T, repo *MockDiscountCatalogRepository, body string) *httptest.ResponseRecorder {
	t.Helper()

	server := httpin.NewServer(httpin.Handlers{
		ApplyDiscount: commands.NewApplyDiscountCommandHandler(repo, slog.Default()),
	}, nil)
	e := echo.New()
	server.RegisterRoutes(e)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products/discount", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestApplyDiscount_BindsDiscountField(t *testing.T) {
	repo := new(MockDiscountCatalogRepository)
	repo.On("ApplyDiscount", mock.Anything, float64(25)).Return(int64(3), nil).Once()

	rec := discountRequest(t, repo, `{"discount": 25}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"updated": 3}`, rec.Body.String())
	repo.AssertExpectations(t)
}

func TestApplyDiscount_OutOfRange(t *testing.T) {
	repo := new(MockDiscountCatalogRepository)

	rec := discountRequest(t, repo, `{"discount": 150}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	repo.AssertExpectations(t)
}

func TestApplyDiscount_PartialFailureReportsCount(t *testing.T) {
	repo := new(MockDiscountCatalogRepository)
	repo.On("ApplyDiscount", mock.Anything, float64(50)).
		Return(int64(7), errors.New("partition LEGACY_STOCK: connection reset")).Once()

	rec := discountRequest(t, repo, `{"discount": 50}`)

	// Successful partitions are reported alongside the failure instead of
	// being discarded in a plain error response.
	require.Equal(t, http.StatusMultiStatus, rec.Code)
	assert.Contains(t, rec.Body.String(), `"updated":7`)
	assert.Contains(t, rec.Body.String(), "LEGACY_STOCK")
	repo.AssertExpectations(t)
}

func TestApplyDiscount_TotalFailure(t *testing.T) {
	repo := new(MockDiscountCatalogRepository)
	repo.On("ApplyDiscount", mock.Anything, float64(50)).
		Return(int64(0), errors.New("partition SPICES: connection reset")).Once()

	rec := discountRequest(t, repo, `{"discount": 50}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	repo.AssertExpectations(t)
}
