package queries

import (
	"context"

	"storefront/internal/core/ports"
)

// ListFeaturedProductsQueryHandler serves the storefront landing page: a
// few products from each active category. The active set comes from the
// directory, so deactivated categories disappear from the page even though
// their partitions still exist.
type ListFeaturedProductsQueryHandler struct {
	catalogRepo  ports.CatalogRepository
	categoryRepo ports.CategoryRepository
}

// NewListFeaturedProductsQueryHandler creates a handler for the featured
// listing.
func NewListFeaturedProductsQueryHandler(
	catalogRepo ports.CatalogRepository,
	categoryRepo ports.CategoryRepository,
) ListFeaturedProductsQueryHandler {
	return ListFeaturedProductsQueryHandler{
		catalogRepo:  catalogRepo,
		categoryRepo: categoryRepo,
	}
}

// Handle executes the featured listing.
func (h ListFeaturedProductsQueryHandler) Handle(
	ctx context.Context,
	query ListFeaturedProductsQuery,
) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	descriptors, err := h.categoryRepo.List(ctx, true)
	if err != nil {
		return nil, err
	}

	categories := make([]string, 0, len(descriptors))
	for _, d := range descriptors {
		categories = append(categories, d.Name())
	}

	products, err := h.catalogRepo.ListFeatured(ctx, categories, query.LimitPerCategory())
	if err != nil {
		return nil, err
	}

	return toProductResponses(products), nil
}
