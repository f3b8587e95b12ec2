package ports

import (
	"context"

	"storefront/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// CatalogRepository defines the contract for the category-partitioned
// product catalog. Each category is stored as an independently addressed
// partition; the implementation resolves category names to partitions
// through a registry and creates partitions lazily on first insert.
//
// Product identifiers are not globally indexed, so operations that receive
// only a product ID locate the record by scanning partitions.
type CatalogRepository interface {
	// Insert adds a product to the partition of its category, creating the
	// partition if it does not exist yet.
	Insert(ctx context.Context, p *product.Product) error

	// Get locates a product by identifier. When category is non-empty only
	// that partition is consulted; otherwise all partitions are scanned.
	// Returns an ObjectNotFoundError if no partition contains the product.
	Get(ctx context.Context, id uuid.UUID, category string) (*product.Product, error)

	// Update persists changes to a product. If the product's category
	// differs from fromCategory, the record is moved: inserted into the
	// target partition and deleted from the source within one transaction.
	Update(ctx context.Context, p *product.Product, fromCategory string) error

	// Delete scans partitions for the product and removes it.
	// Returns an ObjectNotFoundError if no partition contains it.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListByCategory retrieves every product in one category's partition.
	ListByCategory(ctx context.Context, categoryName string) ([]*product.Product, error)

	// ListAll fans out across every discovered partition.
	ListAll(ctx context.Context) ([]*product.Product, error)

	// ListFeatured retrieves up to limitPerCategory products from each of
	// the given categories.
	ListFeatured(ctx context.Context, categories []string, limitPerCategory int) ([]*product.Product, error)

	// ApplyDiscount recomputes the price of every product that carries an
	// original price, across all partitions. A failing partition does not
	// abort the others; the returned count reflects successful updates and
	// the error, if any, aggregates the per-partition failures.
	ApplyDiscount(ctx context.Context, percent float64) (int64, error)

	// ListPartitions returns the identifiers of all physical partitions
	// discovered by the structural name-pattern scan. A partition can exist
	// without an active directory entry and vice versa.
	ListPartitions(ctx context.Context) ([]string, error)
}
