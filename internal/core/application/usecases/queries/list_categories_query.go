package queries

import (
	"errors"
	"time"

	"storefront/internal/pkg/guard"
)

var (
	ErrListCategoriesQueryIsNotConstructed = errors.New(
		"ListCategoriesQuery must be created via NewListCategoriesQuery constructor",
	)
)

// ListCategoriesQuery retrieves category directory entries. Storefront
// callers list only active categories; the admin view includes deactivated
// ones.
type ListCategoriesQuery struct {
	activeOnly bool

	guard guard.ConstructorGuard
}

// NewListCategoriesQuery creates a category listing query.
func NewListCategoriesQuery(activeOnly bool) ListCategoriesQuery {
	return ListCategoriesQuery{
		activeOnly: activeOnly,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListCategoriesQuery) Validate() error {
	return q.guard.Validate(ErrListCategoriesQueryIsNotConstructed)
}

// ActiveOnly reports whether deactivated categories are filtered out.
func (q ListCategoriesQuery) ActiveOnly() bool {
	return q.activeOnly
}

// CategoryResponse is the category read model.
type CategoryResponse struct {
	Name        string
	DisplayName string
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
