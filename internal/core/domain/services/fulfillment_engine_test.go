package services_test

import (
	"testing"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"
	"rental/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createItem(t *testing.T, quantity int, price float64, period *kernel.DateRange) *order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), quantity, price, period)
	require.NoError(t, err)
	return item
}

func createPeriod(t *testing.T, start, end time.Time) *kernel.DateRange {
	t.Helper()
	period, err := kernel.NewDateRange(start, end)
	require.NoError(t, err)
	return &period
}

func createOrder(t *testing.T, items []*order.Item) *order.Order {
	t.Helper()
	id := kernel.NewUUID()
	o, err := order.NewOrder(
		id,
		order.GenerateOrderNumber(time.Now(), id),
		kernel.NewUUID(),
		items,
		order.Totals{},
		"",
	)
	require.NoError(t, err)
	return o
}

func TestFulfillmentEngine_LateFee(t *testing.T) {
	engine := services.NewFulfillmentEngine()

	endDate := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	startDate := endDate.AddDate(0, 0, -5)

	t.Run("should charge per day per unit for an overdue item", func(t *testing.T) {
		// Due Jan 10, returned Jan 13: 3 days late, 2 units at 10 each.
		item := createItem(t, 2, 10.0, createPeriod(t, startDate, endDate))
		o := createOrder(t, []*order.Item{item})

		fee, err := engine.LateFee(o, endDate.AddDate(0, 0, 3))

		require.NoError(t, err)
		assert.InDelta(t, 60.0, fee, 0.001)
	})

	t.Run("should round a fraction of a day up to a full day", func(t *testing.T) {
		item := createItem(t, 1, 10.0, createPeriod(t, startDate, endDate))
		o := createOrder(t, []*order.Item{item})

		fee, err := engine.LateFee(o, endDate.Add(90*time.Minute))

		require.NoError(t, err)
		assert.InDelta(t, 10.0, fee, 0.001)
	})

	t.Run("should charge nothing for an on-time return", func(t *testing.T) {
		item := createItem(t, 2, 10.0, createPeriod(t, startDate, endDate))
		o := createOrder(t, []*order.Item{item})

		fee, err := engine.LateFee(o, endDate)

		require.NoError(t, err)
		assert.InDelta(t, 0.0, fee, 0.001)
	})

	t.Run("should charge nothing for an early return", func(t *testing.T) {
		item := createItem(t, 2, 10.0, createPeriod(t, startDate, endDate))
		o := createOrder(t, []*order.Item{item})

		fee, err := engine.LateFee(o, endDate.AddDate(0, 0, -1))

		require.NoError(t, err)
		assert.InDelta(t, 0.0, fee, 0.001)
	})

	t.Run("should skip items without a rental period", func(t *testing.T) {
		o := createOrder(t, []*order.Item{createItem(t, 5, 100.0, nil)})

		fee, err := engine.LateFee(o, endDate.AddDate(0, 1, 0))

		require.NoError(t, err)
		assert.InDelta(t, 0.0, fee, 0.001)
	})

	t.Run("should sum contributions across items", func(t *testing.T) {
		// First item 1 day late at 10 x 1, second 3 days late at 5 x 2.
		earlierEnd := endDate.AddDate(0, 0, -2)
		items := []*order.Item{
			createItem(t, 1, 10.0, createPeriod(t, startDate, endDate)),
			createItem(t, 2, 5.0, createPeriod(t, startDate, earlierEnd)),
			createItem(t, 1, 99.0, nil),
		}
		o := createOrder(t, items)

		fee, err := engine.LateFee(o, endDate.AddDate(0, 0, 1))

		require.NoError(t, err)
		assert.InDelta(t, 40.0, fee, 0.001)
	})

	t.Run("should reject an unconstructed order", func(t *testing.T) {
		var o order.Order

		_, err := engine.LateFee(&o, endDate)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}
