package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with a defined transition table to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Confirmed ──┬──> PaymentVerified ──> Booked ──┐
//	            │                          ^      │
//	            └──────────────────────────┴──────┘
//	                          (re-booking allowed)
//
// Confirmed is the initial state set at placement. Booked is terminal but
// re-entrant: a booked order may be booked again with updated transport data.
//
// Payment verification deliberately bypasses the table: it is a correction
// mechanism that moves an order to PaymentVerified or back to Confirmed
// regardless of the current state. See Order.RecordVerification.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Confirmed is the initial status assigned when an order is placed.
	Confirmed

	// PaymentVerified indicates the customer's payment proof has been
	// reviewed and accepted by an administrator.
	PaymentVerified

	// Booked indicates the order has been handed to a transport carrier.
	// Re-booking with updated transport details is allowed.
	Booked
)

// getStatusStrings returns the persisted string token for every Status,
// including Unknown for display purposes.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "unknown",
		Confirmed:       "confirmed",
		PaymentVerified: "payment_verified",
		Booked:          "booked",
	}
}

// getValidStatusStrings returns only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Confirmed:       "confirmed",
		PaymentVerified: "payment_verified",
		Booked:          "booked",
	}
}

// getTransitionTable returns the allowed targets for each valid status.
// The table is the single source of truth for UpdateOrderStatus; bypasses
// (verification correction, transport-implied booking) are modelled as
// explicit aggregate operations, not table entries.
func getTransitionTable() map[Status][]Status {
	return map[Status][]Status{
		Confirmed:       {PaymentVerified, Booked},
		PaymentVerified: {Booked},
		Booked:          {Booked},
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and any value outside the defined set are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted token of the status ("confirmed",
// "payment_verified", "booked") or "unknown" for invalid values.
// The token is stable: it is stored in the database and used on the wire.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a persisted or wire status token.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// AllowedTargets returns the statuses this status may transition to
// according to the transition table.
func (s Status) AllowedTargets() []Status {
	return getTransitionTable()[s]
}

// CanTransitionTo reports whether the transition table permits moving from
// this status to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range getTransitionTable()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo validates the requested transition against the table and
// returns the new status. On rejection the error names the current status
// and the full allowed target set.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewInvalidTransitionError(s.String(), StatusStrings(s.AllowedTargets()))
	}
	return target, nil
}

// TransitionSources returns every status from which the table allows a
// transition to target. The conditional status update in the order
// repository uses this as its predecessor predicate.
func TransitionSources(target Status) []Status {
	sources := make([]Status, 0, len(getTransitionTable()))
	for from := range getTransitionTable() {
		if from.CanTransitionTo(target) {
			sources = append(sources, from)
		}
	}
	return sources
}

// StatusStrings converts a status list to its string tokens.
func StatusStrings(statuses []Status) []string {
	strs := make([]string, 0, len(statuses))
	for _, s := range statuses {
		strs = append(strs, s.String())
	}
	return strs
}
