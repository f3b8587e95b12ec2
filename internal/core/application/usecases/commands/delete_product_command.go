package commands

import (
	"errors"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"

	"github.com/google/uuid"
)

var (
	ErrDeleteProductCommandIsNotConstructed = errors.New(
		"DeleteProductCommand must be created via NewDeleteProductCommand constructor",
	)
)

// DeleteProductCommand represents a request to remove a product from the
// catalog.
type DeleteProductCommand struct {
	productID uuid.UUID

	guard guard.ConstructorGuard
}

// NewDeleteProductCommand creates a validated product deletion command.
func NewDeleteProductCommand(productID uuid.UUID) (DeleteProductCommand, error) {
	if productID == uuid.Nil {
		return DeleteProductCommand{}, errs.NewValueIsRequiredError("productId")
	}

	return DeleteProductCommand{
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteProductCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to delete.
func (c DeleteProductCommand) ProductID() uuid.UUID {
	return c.productID
}
