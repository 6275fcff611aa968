package order_test

import (
	"fmt"
	"testing"

	"travelorders/internal/core/domain/model/order"
	"travelorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Requested))
		assert.Equal(t, 2, int(order.Approved))
		assert.Equal(t, 3, int(order.Canceled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.Requested, order.Approved, order.Canceled} {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject out-of-range status values", func(t *testing.T) {
		for _, status := range []order.Status{order.Status(-1), order.Status(4), order.Status(100)} {
			require.Error(t, status.Validate(), "status value %d", int(status))
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should use wire names", func(t *testing.T) {
		assert.Equal(t, "requested", order.Requested.String())
		assert.Equal(t, "approved", order.Approved.String())
		assert.Equal(t, "canceled", order.Canceled.String())
		assert.Equal(t, "unknown", order.Unknown.String())
		assert.Equal(t, "unknown", order.Status(42).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse the three accepted names", func(t *testing.T) {
		cases := map[string]order.Status{
			"requested": order.Requested,
			"approved":  order.Approved,
			"canceled":  order.Canceled,
		}

		for input, expected := range cases {
			status, err := order.StatusFromString(input)
			require.NoError(t, err)
			assert.Equal(t, expected, status)
		}
	})

	t.Run("should reject anything else", func(t *testing.T) {
		invalid := []string{"", "REQUESTED", "Approved", "cancelled", "pending", "unknown"}

		for _, input := range invalid {
			status, err := order.StatusFromString(input)

			require.Error(t, err, "input %q", input)
			assert.Equal(t, order.Unknown, status)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		}
	})
}

func TestStatus_Notifies(t *testing.T) {
	assert.False(t, order.Requested.Notifies())
	assert.True(t, order.Approved.Notifies())
	assert.True(t, order.Canceled.Notifies())
	assert.False(t, order.Unknown.Notifies())
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("should cancel from Requested and Approved", func(t *testing.T) {
		for _, status := range []order.Status{order.Requested, order.Approved} {
			next, err := status.Cancel()

			require.NoError(t, err)
			assert.Equal(t, order.Canceled, next)
		}
	})

	t.Run("should reject canceling an already canceled order", func(t *testing.T) {
		_, err := order.Canceled.Cancel()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
		assert.Contains(t, err.Error(), "order cannot be canceled")
	})
}
