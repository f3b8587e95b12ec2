package commands

import (
	"context"

	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/ports"
)

// UpdateProductCommandHandler replaces a product's attributes. When the
// update targets a different category, the repository moves the record
// between partitions atomically; the stable product identifier makes a
// retried move converge instead of duplicating the product.
type UpdateProductCommandHandler struct {
	catalogRepo ports.CatalogRepository
}

// NewUpdateProductCommandHandler creates a handler for product updates.
func NewUpdateProductCommandHandler(catalogRepo ports.CatalogRepository) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{catalogRepo: catalogRepo}
}

// Handle processes the product update command. The product is located by
// identifier first, which also discovers the partition it currently lives
// in.
func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	existing, err := h.catalogRepo.Get(ctx, cmd.ProductID(), "")
	if err != nil {
		return err
	}

	updated, err := product.NewProduct(
		cmd.ProductID(),
		cmd.Name(), cmd.LocalName(),
		cmd.Price(), cmd.OriginalPrice(),
		cmd.ImageRef(), cmd.VideoRef(),
		cmd.Category(),
	)
	if err != nil {
		return err
	}

	return h.catalogRepo.Update(ctx, updated, existing.Category())
}
