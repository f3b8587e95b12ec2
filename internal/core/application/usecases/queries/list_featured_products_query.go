package queries

import (
	"errors"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrListFeaturedProductsQueryIsNotConstructed = errors.New(
		"ListFeaturedProductsQuery must be created via NewListFeaturedProductsQuery constructor",
	)
)

// ListFeaturedProductsQuery retrieves a bounded sample of products from
// every active category, used by the storefront landing page.
type ListFeaturedProductsQuery struct {
	limitPerCategory int

	guard guard.ConstructorGuard
}

// NewListFeaturedProductsQuery creates a validated featured listing query.
func NewListFeaturedProductsQuery(limitPerCategory int) (ListFeaturedProductsQuery, error) {
	if limitPerCategory <= 0 {
		return ListFeaturedProductsQuery{}, errs.NewValueIsOutOfRangeError(
			"limitPerCategory", limitPerCategory, 1, 100)
	}

	return ListFeaturedProductsQuery{
		limitPerCategory: limitPerCategory,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListFeaturedProductsQuery) Validate() error {
	return q.guard.Validate(ErrListFeaturedProductsQueryIsNotConstructed)
}

// LimitPerCategory returns the maximum number of products per category.
func (q ListFeaturedProductsQuery) LimitPerCategory() int {
	return q.limitPerCategory
}
