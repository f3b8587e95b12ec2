package commands

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/category"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
)

// CreateProductCommand represents a request to add a product to the
// catalog. The category is normalized to its canonical partition form at
// construction time, so handlers and repositories only ever see canonical
// names.
type CreateProductCommand struct {
	name          string
	localName     string
	price         int64
	originalPrice *int64
	imageRef      string
	videoRef      *string
	category      string

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a validated product creation command.
func NewCreateProductCommand(
	name, localName string,
	price int64,
	originalPrice *int64,
	imageRef string,
	videoRef *string,
	categoryName string,
) (CreateProductCommand, error) {
	if err := errors.Join(
		requireParam("name", name),
		requireParam("localName", localName),
		requireParam("imageRef", imageRef),
	); err != nil {
		return CreateProductCommand{}, err
	}
	if price <= 0 {
		return CreateProductCommand{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("price must be positive, got %d", price))
	}

	canonical, err := category.NormalizeName(categoryName)
	if err != nil {
		return CreateProductCommand{}, err
	}

	return CreateProductCommand{
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
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// Name returns the primary display name.
func (c CreateProductCommand) Name() string { return c.name }

// LocalName returns the localized display name.
func (c CreateProductCommand) LocalName() string { return c.localName }

// Price returns the selling price.
func (c CreateProductCommand) Price() int64 { return c.price }

// OriginalPrice returns the optional pre-discount reference price.
func (c CreateProductCommand) OriginalPrice() *int64 { return c.originalPrice }

// ImageRef returns the product image reference.
func (c CreateProductCommand) ImageRef() string { return c.imageRef }

// VideoRef returns the optional product video reference.
func (c CreateProductCommand) VideoRef() *string { return c.videoRef }

// Category returns the canonical category name.
func (c CreateProductCommand) Category() string { return c.category }

func requireParam(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
