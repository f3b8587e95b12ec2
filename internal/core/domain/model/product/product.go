// Package product contains the Product entity stored inside category
// partitions, and the discount arithmetic applied during bulk price
// mutations.
package product

import (
	"errors"
	"fmt"
	"math"

	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through NewProduct or RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Product is a catalog entry. Every product lives inside the partition of
// its category; the identifier is a UUID that stays stable when the product
// is moved between partitions, which makes moves safe to retry.
type Product struct {
	id            uuid.UUID
	name          string
	localName     string
	price         int64
	originalPrice *int64
	imageRef      string
	videoRef      *string
	category      string

	isConstructed bool
}

// NewProduct creates a validated product. Both localized names, the price,
// the image reference and the category are mandatory. The optional original
// price is the pre-discount reference used by bulk discount application.
func NewProduct(
	id uuid.UUID,
	name, localName string,
	price int64,
	originalPrice *int64,
	imageRef string,
	videoRef *string,
	category string,
) (*Product, error) {
	if id == uuid.Nil {
		return nil, errs.NewValueIsRequiredError("productId")
	}
	if err := errors.Join(
		requireField("name", name),
		requireField("localName", localName),
		requireField("imageRef", imageRef),
		requireField("category", category),
	); err != nil {
		return nil, err
	}
	if price <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("price must be positive, got %d", price))
	}
	if originalPrice != nil && *originalPrice <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("originalPrice",
			fmt.Errorf("original price must be positive, got %d", *originalPrice))
	}

	return &Product{
		id:            id,
		name:          name,
		localName:     localName,
		price:         price,
		originalPrice: originalPrice,
		imageRef:      imageRef,
		videoRef:      videoRef,
		category:      category,
		isConstructed: true,
	}, nil
}

// RestoreProduct reconstructs a product from persistence.
func RestoreProduct(
	id uuid.UUID,
	name, localName string,
	price int64,
	originalPrice *int64,
	imageRef string,
	videoRef *string,
	category string,
) (*Product, error) {
	if id == uuid.Nil {
		return nil, errs.NewValueIsRequiredError("productId")
	}

	return &Product{
		id:            id,
		name:          name,
		localName:     localName,
		price:         price,
		originalPrice: originalPrice,
		imageRef:      imageRef,
		videoRef:      videoRef,
		category:      category,
		isConstructed: true,
	}, nil
}

func requireField(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the stable product identifier.
func (p *Product) ID() uuid.UUID { return p.id }

// Name returns the primary display name.
func (p *Product) Name() string { return p.name }

// LocalName returns the localized display name.
func (p *Product) LocalName() string { return p.localName }

// Price returns the current selling price.
func (p *Product) Price() int64 { return p.price }

// OriginalPrice returns the pre-discount reference price, or nil when the
// product carries none. Products without an original price are skipped by
// bulk discount application.
func (p *Product) OriginalPrice() *int64 { return p.originalPrice }

// ImageRef returns the product image reference.
func (p *Product) ImageRef() string { return p.imageRef }

// VideoRef returns the optional product video reference.
func (p *Product) VideoRef() *string { return p.videoRef }

// Category returns the canonical category name the product belongs to.
func (p *Product) Category() string { return p.category }

// SetPrice replaces the current selling price.
func (p *Product) SetPrice(price int64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("price must be positive, got %d", price))
	}
	p.price = price
	return nil
}

// ApplyDiscount recomputes the selling price from the original price using
// the given percentage. Products without an original price are left
// unmodified; the boolean result reports whether the price changed.
func (p *Product) ApplyDiscount(percent float64) (bool, error) {
	if percent < 0 || percent > 100 {
		return false, errs.NewValueIsOutOfRangeError("discount", percent, 0, 100)
	}
	if p.originalPrice == nil {
		return false, nil
	}

	p.price = DiscountedPrice(*p.originalPrice, percent)
	return true, nil
}

// Relocate changes the category of the product. The caller is responsible
// for moving the stored record between partitions.
func (p *Product) Relocate(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	p.category = category
	return nil
}

// DiscountedPrice computes round(originalPrice * (1 - percent/100)).
func DiscountedPrice(originalPrice int64, percent float64) int64 {
	return int64(math.Round(float64(originalPrice) * (1 - percent/100)))
}
