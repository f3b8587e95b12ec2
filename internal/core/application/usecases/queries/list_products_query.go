package queries

import (
	"errors"

	"storefront/internal/core/domain/model/category"
	"storefront/internal/pkg/guard"
)

var (
	ErrListProductsQueryIsNotConstructed = errors.New(
		"ListProductsQuery must be created via NewListProductsQuery constructor",
	)
)

// ListProductsQuery retrieves products, either from one category's
// partition or from every partition.
type ListProductsQuery struct {
	category string

	guard guard.ConstructorGuard
}

// NewListProductsQuery creates a validated product listing query. An empty
// category name selects all partitions; a non-empty one is normalized to
// its canonical form.
func NewListProductsQuery(categoryName string) (ListProductsQuery, error) {
	canonical := ""
	if categoryName != "" {
		var err error
		canonical, err = category.NormalizeName(categoryName)
		if err != nil {
			return ListProductsQuery{}, err
		}
	}

	return ListProductsQuery{
		category: canonical,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

// Category returns the canonical category name, or empty for all
// partitions.
func (q ListProductsQuery) Category() string {
	return q.category
}
