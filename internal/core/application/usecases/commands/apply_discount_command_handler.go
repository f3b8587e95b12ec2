package commands

import (
	"context"
	"log/slog"

	"storefront/internal/core/ports"
)

// ApplyDiscountCommandHandler applies a storewide discount across all
// catalog partitions. Partitions fail independently: a broken partition
// reduces the update count and surfaces in the aggregated error, but never
// prevents the others from being repriced.
type ApplyDiscountCommandHandler struct {
	catalogRepo ports.CatalogRepository
	logger      *slog.Logger
}

// NewApplyDiscountCommandHandler creates a handler for discount
// application.
func NewApplyDiscountCommandHandler(
	catalogRepo ports.CatalogRepository,
	logger *slog.Logger,
) ApplyDiscountCommandHandler {
	return ApplyDiscountCommandHandler{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// Handle processes the discount command and returns how many products were
// repriced. The error aggregates per-partition failures, if any.
func (h *ApplyDiscountCommandHandler) Handle(ctx context.Context, cmd ApplyDiscountCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	updated, err := h.catalogRepo.ApplyDiscount(ctx, cmd.Percent())
	if err != nil {
		h.logger.WarnContext(ctx, "discount application failed for some partitions",
			"percent", cmd.Percent(), "updated", updated, "error", err)
	}

	return updated, err
}
