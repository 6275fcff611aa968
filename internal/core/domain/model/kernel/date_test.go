package kernel_test

import (
	"testing"
	"time"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateFromString(t *testing.T) {
	t.Run("should parse yyyy-mm-dd", func(t *testing.T) {
		date, err := kernel.DateFromString("2026-09-15")

		require.NoError(t, err)
		assert.Equal(t, "15/09/2026", date.String())
		assert.Equal(t, "2026-09-15", date.QueryString())
	})

	t.Run("should reject other formats", func(t *testing.T) {
		invalid := []string{"", "15/09/2026", "2026-9-15", "2026-09-15T10:00:00Z", "not-a-date"}

		for _, s := range invalid {
			_, err := kernel.DateFromString(s)
			require.Error(t, err, "input %q", s)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		}
	})
}

func TestDate_Comparisons(t *testing.T) {
	earlier := kernel.NewDate(2026, time.March, 1)
	later := kernel.NewDate(2026, time.March, 2)

	assert.True(t, earlier.Before(later))
	assert.False(t, later.Before(earlier))
	assert.True(t, later.After(earlier))
	assert.True(t, earlier.IsEqual(kernel.NewDate(2026, time.March, 1)))
	assert.False(t, earlier.IsEqual(later))
}

func TestDate_Validate(t *testing.T) {
	t.Run("constructed date is valid", func(t *testing.T) {
		require.NoError(t, kernel.Today().Validate())
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		var date kernel.Date
		require.ErrorIs(t, date.Validate(), errs.ErrValueIsRequired)
	})
}

func TestDateFromTime_TruncatesTimeOfDay(t *testing.T) {
	ts := time.Date(2026, time.July, 4, 23, 59, 59, 0, time.FixedZone("X", 3600))
	date := kernel.DateFromTime(ts)

	assert.Equal(t, "04/07/2026", date.String())
	assert.Equal(t, 0, date.Time().Hour())
}

func TestNewTravelPeriod(t *testing.T) {
	departure := kernel.NewDate(2026, time.May, 10)
	ret := kernel.NewDate(2026, time.May, 17)

	t.Run("valid period", func(t *testing.T) {
		period, err := kernel.NewTravelPeriod(departure, ret)

		require.NoError(t, err)
		assert.True(t, period.Departure().IsEqual(departure))
		assert.True(t, period.Return().IsEqual(ret))
		require.NoError(t, period.Validate())
	})

	t.Run("same-day round trip is allowed", func(t *testing.T) {
		_, err := kernel.NewTravelPeriod(departure, departure)
		require.NoError(t, err)
	})

	t.Run("return before departure is rejected", func(t *testing.T) {
		_, err := kernel.NewTravelPeriod(ret, departure)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero dates are rejected", func(t *testing.T) {
		var zero kernel.Date

		_, err := kernel.NewTravelPeriod(zero, ret)
		require.Error(t, err)

		_, err = kernel.NewTravelPeriod(departure, zero)
		require.Error(t, err)
	})

	t.Run("zero value period fails validation", func(t *testing.T) {
		var period kernel.TravelPeriod
		require.ErrorIs(t, period.Validate(), errs.ErrValueIsRequired)
	})
}
