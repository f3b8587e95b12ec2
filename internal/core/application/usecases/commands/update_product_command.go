package commands

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/category"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"

	"github.com/google/uuid"
)

var (
	ErrUpdateProductCommandIsNotConstructed = errors.New(
		"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
	)
)

// UpdateProductCommand represents a full replacement of a product's
// attributes. Changing the category moves the record to the target
// category's partition.
type UpdateProductCommand struct {
	productID     uuid.UUID
	name          string
	localName     string
	price         int64
	originalPrice *int64
	imageRef      string
	videoRef      *string
	category      string

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a validated product update command.
func NewUpdateProductCommand(
	productID uuid.UUID,
	name, localName string,
	price int64,
	originalPrice *int64,
	imageRef string,
	videoRef *string,
	categoryName string,
) (UpdateProductCommand, error) {
	if productID == uuid.Nil {
		return UpdateProductCommand{}, errs.NewValueIsRequiredError("productId")
	}
	if err := errors.Join(
		requireParam("name", name),
		requireParam("localName", localName),
		requireParam("imageRef", imageRef),
	); err != nil {
		return UpdateProductCommand{}, err
	}
	if price <= 0 {
		return UpdateProductCommand{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("price must be positive, got %d", price))
	}

	canonical, err := category.NormalizeName(categoryName)
	if err != nil {
		return UpdateProductCommand{}, err
	}

	return UpdateProductCommand{
		productID:     productID,
		name:          name,
		localName:     localName,
		price:         price,
		originalPrice: originalPrice,
		imageRef:      imageRef,
		videoRef:      videoRef,
		category:      canonical,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to update.
func (c UpdateProductCommand) ProductID() uuid.UUID { return c.productID }

// Name returns the primary display name.
func (c UpdateProductCommand) Name() string { return c.name }

// LocalName returns the localized display name.
func (c UpdateProductCommand) LocalName() string { return c.localName }

// Price returns the selling price.
func (c UpdateProductCommand) Price() int64 { return c.price }

// OriginalPrice returns the optional pre-discount reference price.
func (c UpdateProductCommand) OriginalPrice() *int64 { return c.originalPrice }

// ImageRef returns the product image reference.
func (c UpdateProductCommand) ImageRef() string { return c.imageRef }

// VideoRef returns the optional product video reference.
func (c UpdateProductCommand) VideoRef() *string { return c.videoRef }

// Category returns the canonical target category name.
func (c UpdateProductCommand) Category() string { return c.category }
