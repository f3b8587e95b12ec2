package queries

import (
	"errors"

	"storefront/internal/pkg/guard"
)

var (
	ErrGetCatalogDivergenceQueryIsNotConstructed = errors.New(
		"GetCatalogDivergenceQuery must be created via NewGetCatalogDivergenceQuery constructor",
	)
)

// GetCatalogDivergenceQuery compares the category directory with the
// physical partitions. The two are allowed to drift: partitions are created
// lazily and never dropped, directory entries are soft-deleted. This query
// reports the drift for the reconciliation job and the operator CLI.
type GetCatalogDivergenceQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCatalogDivergenceQuery creates a divergence report query.
func NewGetCatalogDivergenceQuery() GetCatalogDivergenceQuery {
	return GetCatalogDivergenceQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCatalogDivergenceQuery) Validate() error {
	return q.guard.Validate(ErrGetCatalogDivergenceQueryIsNotConstructed)
}

// CatalogDivergenceResponse lists the two kinds of drift between directory
// and partitions.
type CatalogDivergenceResponse struct {
	// OrphanPartitions are physical partitions with no directory entry at
	// all. Products in them are reachable by direct category listing but
	// invisible to the storefront.
	OrphanPartitions []string

	// PendingPartitions are directory entries whose partition has not been
	// created yet, i.e. categories with no products so far.
	PendingPartitions []string
}
