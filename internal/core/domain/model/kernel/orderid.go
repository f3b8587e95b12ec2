package kernel

import (
	"fmt"
	"strconv"
	"time"

	"storefront/internal/pkg/errs"
)

const (
	// dayLayout is the date prefix layout of an order identifier (YYMMDD).
	dayLayout = "060102"

	// suffixWidth is the fixed width of the zero-padded sequence suffix.
	suffixWidth = 3

	// MaxSequence is the largest sequence number the suffix can encode for
	// a single day. Counters past this value exhaust the day's identifiers.
	MaxSequence int64 = 999
)

// OrderID is a human-readable order identifier composed of a six-digit date
// prefix and a fixed-width, zero-padded sequence suffix, e.g. "240101007" for
// the seventh order placed on 2024-01-01.
//
// OrderID is a value object: it can only be obtained through NewOrderID or
// ParseOrderID, both of which validate the day key and the sequence range.
type OrderID struct {
	day string
	seq int64
}

// DayKey formats a point in time as the date prefix used by order
// identifiers and the daily sequence counter ("YYMMDD", server local time).
func DayKey(t time.Time) string {
	return t.Format(dayLayout)
}

// NewOrderID builds an identifier for the given day and sequence number.
// The sequence must fit the fixed suffix width; values outside [1, MaxSequence]
// are rejected so the caller can surface identifier exhaustion.
func NewOrderID(day time.Time, seq int64) (OrderID, error) {
	if seq < 1 || seq > MaxSequence {
		return OrderID{}, errs.NewValueIsOutOfRangeError("sequence", seq, 1, MaxSequence)
	}
	return OrderID{day: DayKey(day), seq: seq}, nil
}

// ParseOrderID reconstructs an identifier from its string form, validating
// the date prefix and the numeric suffix.
func ParseOrderID(s string) (OrderID, error) {
	if len(s) != len(dayLayout)+suffixWidth {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("%q does not have %d characters", s, len(dayLayout)+suffixWidth))
	}

	day := s[:len(dayLayout)]
	if _, err := time.Parse(dayLayout, day); err != nil {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}

	seq, err := strconv.ParseInt(s[len(dayLayout):], 10, 64)
	if err != nil {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}
	if seq < 1 {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("sequence suffix must be positive, got %d", seq))
	}

	return OrderID{day: day, seq: seq}, nil
}

// Validate reports whether the identifier was obtained through a constructor.
func (id OrderID) Validate() error {
	if id.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("order ID must be created via NewOrderID or ParseOrderID"))
	}
	return nil
}

// IsZero reports whether the identifier is the zero value.
func (id OrderID) IsZero() bool {
	return id.day == "" && id.seq == 0
}

// Day returns the date prefix ("YYMMDD") of the identifier.
func (id OrderID) Day() string {
	return id.day
}

// Seq returns the numeric sequence suffix of the identifier.
func (id OrderID) Seq() int64 {
	return id.seq
}

// IsEqual compares two identifiers by value.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.day == other.day && id.seq == other.seq
}

// String renders the identifier in its persisted form: date prefix followed
// by the zero-padded sequence suffix.
func (id OrderID) String() string {
	return fmt.Sprintf("%s%0*d", id.day, suffixWidth, id.seq)
}
