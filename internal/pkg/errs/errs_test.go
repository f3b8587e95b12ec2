package errs_test

import (
	"errors"
	"testing"

	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "240101001")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "240101001", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 240101001", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "240101001", cause)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 240101001 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("items")

		assert.Equal(t, "items", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: items", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("field absent in payload")
		err := errs.NewValueIsRequiredErrorWithCause("total", cause)

		assert.Equal(t, "total", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: total (cause: field absent in payload)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("total")

		assert.Equal(t, "total", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: total", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("total does not match line items")
		err := errs.NewValueIsInvalidErrorWithCause("total", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: total (cause: total does not match line items)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("discount", 150, 0, 100)

		assert.Equal(t, "discount", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 100, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is out of range: 150 is discount, min value is 0, max value is 100", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestObjectAlreadyExistsError(t *testing.T) {
	t.Run("NewObjectAlreadyExistsError", func(t *testing.T) {
		err := errs.NewObjectAlreadyExistsError("category", "SPARKLER_ITEMS")

		assert.Equal(t, "category", err.ParamName)
		assert.Equal(t, "SPARKLER_ITEMS", err.Value)
		assert.Equal(t, "object already exists: SPARKLER_ITEMS", err.Error())
		assert.Equal(t, errs.ErrObjectAlreadyExists, err.Unwrap())
	})
}

func TestInvalidTransitionError(t *testing.T) {
	t.Run("message names current status and allowed targets", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("booked", []string{"booked"})

		assert.Equal(t, "booked", err.Current)
		assert.Equal(t,
			"invalid status transition: current status is booked, allowed targets are [booked]",
			err.Error())
		assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
	})

	t.Run("multiple allowed targets are joined", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("confirmed", []string{"payment_verified", "booked"})
		assert.Contains(t, err.Error(), "allowed targets are [payment_verified, booked]")
	})
}

func TestSequenceExhaustedError(t *testing.T) {
	t.Run("message names the day and counter value", func(t *testing.T) {
		err := errs.NewSequenceExhaustedError("240101", 1000)

		assert.Equal(t, "240101", err.Day)
		assert.Equal(t, int64(1000), err.Seq)
		assert.Equal(t, "sequence exhausted: no identifiers left for day 240101 (counter at 1000)", err.Error())
		assert.Equal(t, errs.ErrSequenceExhausted, err.Unwrap())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "1"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("total"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("discount", -1, 0, 100), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("items"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewObjectAlreadyExistsError("category", "X"), errs.ErrObjectAlreadyExists)
		require.ErrorIs(t, errs.NewInvalidTransitionError("booked", nil), errs.ErrInvalidTransition)
		require.ErrorIs(t, errs.NewSequenceExhaustedError("240101", 1000), errs.ErrSequenceExhausted)
	})
}
