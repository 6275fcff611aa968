package commands_test

import (
	"testing"
	"time"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/order"
	"travelorders/internal/core/domain/model/user"

	"github.com/stretchr/testify/require"
)

func testPeriod(t *testing.T) kernel.TravelPeriod {
	t.Helper()

	departure := kernel.DateFromTime(time.Now().AddDate(0, 0, 7))
	ret := kernel.DateFromTime(time.Now().AddDate(0, 0, 14))

	period, err := kernel.NewTravelPeriod(departure, ret)
	require.NoError(t, err)
	return period
}

func testOrderOwnedBy(t *testing.T, ownerID kernel.UUID) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), ownerID, "Madrid", testPeriod(t))
	require.NoError(t, err)
	return o
}

func testUser(t *testing.T, permissions ...user.Permission) *user.User {
	t.Helper()

	u, err := user.RestoreUser(kernel.NewUUID(), "Alex", "alex@example.com", "$2a$10$hash", permissions)
	require.NoError(t, err)
	return u
}
