package queries

import (
	"context"

	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/ports"
)

// ProductResponse is the product read model served to storefront views.
type ProductResponse struct {
	ID            string
	Name          string
	LocalName     string
	Price         int64
	OriginalPrice *int64
	ImageRef      string
	VideoRef      *string
	Category      string
}

// ListProductsQueryHandler serves product listings. The catalog is
// partitioned per category, so listings go through the catalog port rather
// than a single-table query: the port knows which partitions exist and how
// to fan out across them.
type ListProductsQueryHandler struct {
	catalogRepo ports.CatalogRepository
}

// NewListProductsQueryHandler creates a handler for product listings.
func NewListProductsQueryHandler(catalogRepo ports.CatalogRepository) ListProductsQueryHandler {
	return ListProductsQueryHandler{catalogRepo: catalogRepo}
}

// Handle executes the listing. A category without a partition yields an
// empty slice: lazily created partitions make absence indistinguishable
// from emptiness, and both render the same way.
func (h ListProductsQueryHandler) Handle(ctx context.Context, query ListProductsQuery) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		products []*product.Product
		err      error
	)
	if query.Category() == "" {
		products, err = h.catalogRepo.ListAll(ctx)
	} else {
		products, err = h.catalogRepo.ListByCategory(ctx, query.Category())
	}
	if err != nil {
		return nil, err
	}

	return toProductResponses(products), nil
}

func toProductResponses(products []*product.Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, ProductResponse{
			ID:            p.ID().String(),
			Name:          p.Name(),
			LocalName:     p.LocalName(),
			Price:         p.Price(),
			OriginalPrice: p.OriginalPrice(),
			ImageRef:      p.ImageRef(),
			VideoRef:      p.VideoRef(),
			Category:      p.Category(),
		})
	}
	return responses
}
