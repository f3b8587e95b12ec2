package queries

import (
	"errors"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrTrackOrdersQueryIsNotConstructed = errors.New(
		"TrackOrdersQuery must be created via NewTrackOrdersQuery constructor",
	)
)

// TrackOrdersQuery retrieves every order placed with a mobile number. This
// is the customer-facing tracking lookup: the mobile number is the only
// credential, so the result never includes other customers' orders.
type TrackOrdersQuery struct {
	mobile string

	guard guard.ConstructorGuard
}

// NewTrackOrdersQuery creates a validated tracking query.
func NewTrackOrdersQuery(mobile string) (TrackOrdersQuery, error) {
	if mobile == "" {
		return TrackOrdersQuery{}, errs.NewValueIsRequiredError("mobile")
	}

	return TrackOrdersQuery{
		mobile: mobile,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackOrdersQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrdersQueryIsNotConstructed)
}

// Mobile returns the mobile number to search by.
func (q TrackOrdersQuery) Mobile() string {
	return q.mobile
}
