package queries_test

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/category"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCatalogRepository struct{ mock.Mock }

func (m *MockCatalogRepository) Insert(_ context.Context, _ *product.Product) error {
	return errors.New("not implemented in mock")
}
func (m *MockCatalogRepository) Get(_ context.Context, _ uuid.UUID, _ string) (*product.Product, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockCatalogRepository) Update(_ context.Context, _ *product.Product, _ string) error {
	return errors.New("not implemented in mock")
}
func (m *MockCatalogRepository) Delete(_ context.Context, _ uuid.UUID) error {
	return errors.New("not implemented in mock")
}
func (m *MockCatalogRepository) ListByCategory(ctx context.Context, categoryName string) ([]*product.Product, error) {
	args := m.Called(ctx, categoryName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}
func (m *MockCatalogRepository) ListAll(ctx context.Context) ([]*product.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}
func (m *MockCatalogRepository) ListFeatured(ctx context.Context, categories []string, limitPerCategory int) ([]*product.Product, error) {
	args := m.Called(ctx, categories, limitPerCategory)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}
func (m *MockCatalogRepository) ApplyDiscount(_ context.Context, _ float64) (int64, error) {
	return 0, errors.New("not implemented in mock")
}
func (m *MockCatalogRepository) ListPartitions(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockCategoryRepository struct{ mock.Mock }

func (m *MockCategoryRepository) Add(_ context.Context, _ *category.Descriptor) error {
	return errors.New("not implemented in mock")
}
func (m *MockCategoryRepository) Get(_ context.Context, _ string) (*category.Descriptor, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockCategoryRepository) Update(_ context.Context, _ *category.Descriptor) error {
	return errors.New("not implemented in mock")
}
func (m *MockCategoryRepository) List(ctx context.Context, activeOnly bool) ([]*category.Descriptor, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*category.Descriptor), args.Error(1)
}

func testProduct(t *testing.T, name, categoryName string) *product.Product {
	t.Helper()
	p, err := product.NewProduct(uuid.New(), name, name, 100, nil, "images/"+name+".jpg", nil, categoryName)
	require.NoError(t, err)
	return p
}

func TestNewListProductsQuery_NormalizesCategory(t *testing.T) {
	q, err := queries.NewListProductsQuery("dry fruits")
	require.NoError(t, err)
	assert.Equal(t, "DRY_FRUITS", q.Category())
}

func TestNewListProductsQuery_EmptyCategoryMeansAll(t *testing.T) {
	q, err := queries.NewListProductsQuery("")
	require.NoError(t, err)
	assert.Empty(t, q.Category())
}

func TestNewListProductsQuery_RejectsUnnormalizableName(t *testing.T) {
	_, err := queries.NewListProductsQuery("---")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestListProductsQueryHandler_Handle_ByCategory(t *testing.T) {
	ctx := t.Context()
	q, err := queries.NewListProductsQuery("Spices")
	require.NoError(t, err)

	repo := new(MockCatalogRepository)
	repo.On("ListByCategory", mock.Anything, "SPICES").
		Return([]*product.Product{testProduct(t, "turmeric", "SPICES")}, nil).Once()

	h := queries.NewListProductsQueryHandler(repo)
	result, err := h.Handle(ctx, q)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "turmeric", result[0].Name)
	assert.Equal(t, "SPICES", result[0].Category)
	repo.AssertExpectations(t)
}

func TestListProductsQueryHandler_Handle_AllPartitions(t *testing.T) {
	ctx := t.Context()
	q, err := queries.NewListProductsQuery("")
	require.NoError(t, err)

	repo := new(MockCatalogRepository)
	repo.On("ListAll", mock.Anything).
		Return([]*product.Product{
			testProduct(t, "turmeric", "SPICES"),
			testProduct(t, "almonds", "DRY_FRUITS"),
		}, nil).Once()

	h := queries.NewListProductsQueryHandler(repo)
	result, err := h.Handle(ctx, q)
	require.NoError(t, err)
	assert.Len(t, result, 2)
	repo.AssertExpectations(t)
}

func TestListFeaturedProductsQueryHandler_Handle_UsesActiveCategories(t *testing.T) {
	ctx := t.Context()
	q, err := queries.NewListFeaturedProductsQuery(4)
	require.NoError(t, err)

	spices := newDescriptor(t, "Spices")
	dryFruits := newDescriptor(t, "Dry Fruits")

	categoryRepo := new(MockCategoryRepository)
	categoryRepo.On("List", mock.Anything, true).
		Return([]*category.Descriptor{dryFruits, spices}, nil).Once()

	catalogRepo := new(MockCatalogRepository)
	catalogRepo.On("ListFeatured", mock.Anything, []string{"DRY_FRUITS", "SPICES"}, 4).
		Return([]*product.Product{testProduct(t, "almonds", "DRY_FRUITS")}, nil).Once()

	h := queries.NewListFeaturedProductsQueryHandler(catalogRepo, categoryRepo)
	result, err := h.Handle(ctx, q)
	require.NoError(t, err)
	assert.Len(t, result, 1)
	catalogRepo.AssertExpectations(t)
	categoryRepo.AssertExpectations(t)
}

func TestNewListFeaturedProductsQuery_RejectsNonPositiveLimit(t *testing.T) {
	_, err := queries.NewListFeaturedProductsQuery(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
