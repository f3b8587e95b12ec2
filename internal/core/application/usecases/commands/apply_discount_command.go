package commands

import (
	"errors"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrApplyDiscountCommandIsNotConstructed = errors.New(
		"ApplyDiscountCommand must be created via NewApplyDiscountCommand constructor",
	)
)

// ApplyDiscountCommand represents a storewide discount: every product that
// carries an original price gets its selling price recomputed from it.
// A percentage of zero restores original prices.
type ApplyDiscountCommand struct {
	percent float64

	guard guard.ConstructorGuard
}

// NewApplyDiscountCommand creates a validated discount command. The
// percentage must lie in [0, 100].
func NewApplyDiscountCommand(percent float64) (ApplyDiscountCommand, error) {
	if percent < 0 || percent > 100 {
		return ApplyDiscountCommand{}, errs.NewValueIsOutOfRangeError("discount", percent, 0, 100)
	}

	return ApplyDiscountCommand{
		percent: percent,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyDiscountCommand) Validate() error {
	return c.guard.Validate(ErrApplyDiscountCommandIsNotConstructed)
}

// Percent returns the discount percentage.
func (c ApplyDiscountCommand) Percent() float64 {
	return c.percent
}
