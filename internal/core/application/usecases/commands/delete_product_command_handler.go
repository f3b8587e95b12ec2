package commands

import (
	"context"

	"storefront/internal/core/ports"
)

// DeleteProductCommandHandler removes products from the catalog. Product
// identifiers are not globally indexed, so the repository scans partitions
// to locate the record.
type DeleteProductCommandHandler struct {
	catalogRepo ports.CatalogRepository
}

// NewDeleteProductCommandHandler creates a handler for product deletion.
func NewDeleteProductCommandHandler(catalogRepo ports.CatalogRepository) DeleteProductCommandHandler {
	return DeleteProductCommandHandler{catalogRepo: catalogRepo}
}

// Handle processes the product deletion command.
func (h *DeleteProductCommandHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.catalogRepo.Delete(ctx, cmd.ProductID())
}
