package queries

import (
	"context"
	"sort"

	"storefront/internal/core/ports"
)

// GetCatalogDivergenceQueryHandler builds the directory/partition drift
// report.
type GetCatalogDivergenceQueryHandler struct {
	catalogRepo  ports.CatalogRepository
	categoryRepo ports.CategoryRepository
}

// NewGetCatalogDivergenceQueryHandler creates a handler for divergence
// reports.
func NewGetCatalogDivergenceQueryHandler(
	catalogRepo ports.CatalogRepository,
	categoryRepo ports.CategoryRepository,
) GetCatalogDivergenceQueryHandler {
	return GetCatalogDivergenceQueryHandler{
		catalogRepo:  catalogRepo,
		categoryRepo: categoryRepo,
	}
}

// Handle executes the divergence report.
func (h GetCatalogDivergenceQueryHandler) Handle(
	ctx context.Context,
	query GetCatalogDivergenceQuery,
) (CatalogDivergenceResponse, error) {
	if err := query.Validate(); err != nil {
		return CatalogDivergenceResponse{}, err
	}

	partitions, err := h.catalogRepo.ListPartitions(ctx)
	if err != nil {
		return CatalogDivergenceResponse{}, err
	}

	descriptors, err := h.categoryRepo.List(ctx, false)
	if err != nil {
		return CatalogDivergenceResponse{}, err
	}

	partitionSet := make(map[string]bool, len(partitions))
	for _, p := range partitions {
		partitionSet[p] = true
	}
	directorySet := make(map[string]bool, len(descriptors))
	for _, d := range descriptors {
		directorySet[d.Name()] = true
	}

	resp := CatalogDivergenceResponse{
		OrphanPartitions:  make([]string, 0),
		PendingPartitions: make([]string, 0),
	}
	for _, p := range partitions {
		if !directorySet[p] {
			resp.OrphanPartitions = append(resp.OrphanPartitions, p)
		}
	}
	for _, d := range descriptors {
		if !partitionSet[d.Name()] {
			resp.PendingPartitions = append(resp.PendingPartitions, d.Name())
		}
	}
	sort.Strings(resp.OrphanPartitions)
	sort.Strings(resp.PendingPartitions)

	return resp, nil
}
