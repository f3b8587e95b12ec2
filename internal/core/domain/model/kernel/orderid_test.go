package kernel_test

import (
	"fmt"
	"testing"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayKey(t *testing.T) {
	t.Run("formats date as YYMMDD", func(t *testing.T) {
		day := time.Date(2024, time.January, 5, 13, 45, 0, 0, time.Local)
		assert.Equal(t, "240105", kernel.DayKey(day))
	})
}

func TestNewOrderID(t *testing.T) {
	day := time.Date(2024, time.January, 5, 0, 0, 0, 0, time.Local)

	t.Run("builds identifier with zero padded suffix", func(t *testing.T) {
		id, err := kernel.NewOrderID(day, 7)

		require.NoError(t, err)
		assert.Equal(t, "240105007", id.String())
		assert.Equal(t, "240105", id.Day())
		assert.Equal(t, int64(7), id.Seq())
	})

	t.Run("accepts the maximum sequence", func(t *testing.T) {
		id, err := kernel.NewOrderID(day, kernel.MaxSequence)

		require.NoError(t, err)
		assert.Equal(t, "240105999", id.String())
	})

	t.Run("rejects sequences outside the suffix width", func(t *testing.T) {
		for _, seq := range []int64{0, -1, kernel.MaxSequence + 1} {
			t.Run(fmt.Sprintf("seq %d", seq), func(t *testing.T) {
				_, err := kernel.NewOrderID(day, seq)

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			})
		}
	})
}

func TestParseOrderID(t *testing.T) {
	t.Run("round trips a valid identifier", func(t *testing.T) {
		id, err := kernel.ParseOrderID("240105007")

		require.NoError(t, err)
		assert.Equal(t, "240105", id.Day())
		assert.Equal(t, int64(7), id.Seq())
		assert.Equal(t, "240105007", id.String())
	})

	t.Run("rejects malformed identifiers", func(t *testing.T) {
		invalid := []string{
			"",
			"240105",      // missing suffix
			"2401050077",  // too long
			"24010500a",   // non-numeric suffix
			"24-105007",   // non-numeric date
			"241305007",   // month out of range
			"240105000",   // zero sequence
		}

		for _, s := range invalid {
			t.Run(fmt.Sprintf("%q", s), func(t *testing.T) {
				_, err := kernel.ParseOrderID(s)

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			})
		}
	})
}

func TestOrderID_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var id kernel.OrderID
		require.Error(t, id.Validate())
	})

	t.Run("constructed value passes validation", func(t *testing.T) {
		id, err := kernel.ParseOrderID("240105001")
		require.NoError(t, err)
		require.NoError(t, id.Validate())
	})
}

func TestOrderID_IsEqual(t *testing.T) {
	a, err := kernel.ParseOrderID("240105001")
	require.NoError(t, err)
	b, err := kernel.ParseOrderID("240105001")
	require.NoError(t, err)
	c, err := kernel.ParseOrderID("240105002")
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
