package commands

import (
	"errors"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrCreateCategoryCommandIsNotConstructed = errors.New(
		"CreateCategoryCommand must be created via NewCreateCategoryCommand constructor",
	)
)

// CreateCategoryCommand represents a request to register a category in the
// directory. Registration only creates the directory entry; the physical
// partition appears lazily when the first product is inserted.
type CreateCategoryCommand struct {
	displayName string
	description string

	guard guard.ConstructorGuard
}

// NewCreateCategoryCommand creates a validated category creation command.
func NewCreateCategoryCommand(displayName, description string) (CreateCategoryCommand, error) {
	if displayName == "" {
		return CreateCategoryCommand{}, errs.NewValueIsRequiredError("displayName")
	}

	return CreateCategoryCommand{
		displayName: displayName,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrCreateCategoryCommandIsNotConstructed)
}

// DisplayName returns the human-readable category name.
func (c CreateCategoryCommand) DisplayName() string {
	return c.displayName
}

// Description returns the category description, possibly empty.
func (c CreateCategoryCommand) Description() string {
	return c.description
}
