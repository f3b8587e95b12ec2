package ports

import (
	"context"

	"storefront/internal/core/domain/model/category"
)

// CategoryRepository defines the persistence contract for the category
// directory. The directory is the authoritative source for which categories
// exist, independent of which partitions physically exist.
type CategoryRepository interface {
	// Add persists a new descriptor. Returns an ObjectAlreadyExistsError if
	// the canonical name is already taken.
	Add(ctx context.Context, descriptor *category.Descriptor) error

	// Get retrieves a descriptor by canonical name.
	// Returns an ObjectNotFoundError if absent.
	Get(ctx context.Context, name string) (*category.Descriptor, error)

	// Update persists changes to an existing descriptor.
	Update(ctx context.Context, descriptor *category.Descriptor) error

	// List retrieves descriptors ordered by canonical name. When activeOnly
	// is true, deactivated categories are filtered out.
	List(ctx context.Context, activeOnly bool) ([]*category.Descriptor, error)
}
