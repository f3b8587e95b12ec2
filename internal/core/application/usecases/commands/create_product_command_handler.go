package commands

import (
	"context"

	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/ports"

	"github.com/google/uuid"
)

// CreateProductCommandHandler adds products to the catalog. The catalog
// repository manages its own partition-level consistency, so no unit of
// work wraps these operations: creating a partition is DDL, which does not
// compose with an outer transaction.
type CreateProductCommandHandler struct {
	catalogRepo ports.CatalogRepository
}

// NewCreateProductCommandHandler creates a handler for product creation.
func NewCreateProductCommandHandler(catalogRepo ports.CatalogRepository) CreateProductCommandHandler {
	return CreateProductCommandHandler{catalogRepo: catalogRepo}
}

// Handle processes the product creation command and returns the generated
// product identifier.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (uuid.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return uuid.Nil, err
	}

	p, err := product.NewProduct(
		uuid.New(),
		cmd.Name(), cmd.LocalName(),
		cmd.Price(), cmd.OriginalPrice(),
		cmd.ImageRef(), cmd.VideoRef(),
		cmd.Category(),
	)
	if err != nil {
		return uuid.Nil, err
	}

	if err = h.catalogRepo.Insert(ctx, p); err != nil {
		return uuid.Nil, err
	}

	return p.ID(), nil
}
