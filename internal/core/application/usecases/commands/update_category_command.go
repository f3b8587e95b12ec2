package commands

import (
	"errors"

	"storefront/internal/core/domain/model/category"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrUpdateCategoryCommandIsNotConstructed = errors.New(
		"UpdateCategoryCommand must be created via NewUpdateCategoryCommand constructor",
	)
)

// UpdateCategoryCommand represents a request to change a category's display
// metadata. The canonical name is the immutable key; only what users see
// changes.
type UpdateCategoryCommand struct {
	name        string
	displayName string
	description string

	guard guard.ConstructorGuard
}

// NewUpdateCategoryCommand creates a validated category update command.
func NewUpdateCategoryCommand(name, displayName, description string) (UpdateCategoryCommand, error) {
	if !category.IsPartitionName(name) {
		return UpdateCategoryCommand{}, errs.NewValueIsInvalidError("category name")
	}
	if displayName == "" {
		return UpdateCategoryCommand{}, errs.NewValueIsRequiredError("displayName")
	}

	return UpdateCategoryCommand{
		name:        name,
		displayName: displayName,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCategoryCommandIsNotConstructed)
}

// Name returns the canonical category name.
func (c UpdateCategoryCommand) Name() string {
	return c.name
}

// DisplayName returns the new human-readable category name.
func (c UpdateCategoryCommand) DisplayName() string {
	return c.displayName
}

// Description returns the new category description.
func (c UpdateCategoryCommand) Description() string {
	return c.description
}
