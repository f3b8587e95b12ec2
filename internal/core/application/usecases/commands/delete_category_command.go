package commands

import (
	"errors"

	"storefront/internal/core/domain/model/category"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrDeleteCategoryCommandIsNotConstructed = errors.New(
		"DeleteCategoryCommand must be created via NewDeleteCategoryCommand constructor",
	)
)

// DeleteCategoryCommand represents a request to remove a category from the
// directory listing. The removal is soft: the partition and its products
// are untouched, the descriptor is merely deactivated.
type DeleteCategoryCommand struct {
	name string

	guard guard.ConstructorGuard
}

// NewDeleteCategoryCommand creates a validated category deletion command.
func NewDeleteCategoryCommand(name string) (DeleteCategoryCommand, error) {
	if !category.IsPartitionName(name) {
		return DeleteCategoryCommand{}, errs.NewValueIsInvalidError("category name")
	}

	return DeleteCategoryCommand{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteCategoryCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCategoryCommandIsNotConstructed)
}

// Name returns the canonical category name.
func (c DeleteCategoryCommand) Name() string {
	return c.name
}
