package analytics

import (
	"testing"
	"time"

	"pearl-laundry-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func order(id uint, status models.Status) models.Order {
	return models.Order{ID: id, CustomerName: "Test", Status: status}
}

func TestMetricsBuckets(t *testing.T) {
	orders := []models.Order{
		order(1, models.StatusScheduled),
		order(2, models.StatusScheduled),
		order(3, models.StatusPickedUp),
		order(4, models.StatusInProgress),
		order(5, models.StatusReady),
		order(6, models.StatusDelivered),
	}

	m := Metrics(orders)

	assert.Equal(t, 6, m.Total)
	assert.Equal(t, 2, m.Pending)
	assert.Equal(t, 1, m.InProgress)
	assert.Equal(t, 1, m.Completed)
	// picked-up and ready land in no named bucket
	assert.Equal(t, 2, m.Total-m.Pending-m.InProgress-m.Completed)
}

func TestMetricsEmpty(t *testing.T) {
	assert.Equal(t, OrderMetrics{}, Metrics(nil))
}

func TestFilterByStatusAllIsIdentity(t *testing.T) {
	orders := []models.Order{
		order(3, models.StatusDelivered),
		order(1, models.StatusScheduled),
		order(2, models.StatusReady),
	}

	filtered := FilterByStatus(orders, "all")

	require.Equal(t, orders, filtered)
}

func TestFilterByStatusExactMatch(t *testing.T) {
	orders := []models.Order{
		order(1, models.StatusScheduled),
		order(2, models.StatusDelivered),
		order(3, models.StatusScheduled),
	}

	filtered := FilterByStatus(orders, "scheduled")

	require.Len(t, filtered, 2)
	assert.Equal(t, uint(1), filtered[0].ID)
	assert.Equal(t, uint(3), filtered[1].ID)

	assert.Empty(t, FilterByStatus(orders, "picked-up"))
}

func TestFilterByDateRange(t *testing.T) {
	now := time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC)

	dated := func(id uint, daysFromToday int) models.Order {
		o := order(id, models.StatusScheduled)
		o.PickupDate = models.DateOf(now.AddDate(0, 0, daysFromToday))
		return o
	}

	orders := []models.Order{
		dated(1, 0),   // today
		dated(2, 1),   // tomorrow
		dated(3, -1),  // yesterday
		dated(4, -7),  // exactly a week ago
		dated(5, -8),  // outside the week window
		dated(6, -20), // inside the month window
		dated(7, -31), // outside the month window
	}

	ids := func(filtered []models.Order) []uint {
		out := make([]uint, 0, len(filtered))
		for _, o := range filtered {
			out = append(out, o.ID)
		}
		return out
	}

	assert.Equal(t, []uint{1}, ids(FilterByDateRange(orders, RangeToday, now)))
	// week window is half-open: a week ago is in, tomorrow is out
	assert.Equal(t, []uint{1, 3, 4}, ids(FilterByDateRange(orders, RangeWeek, now)))
	assert.Equal(t, []uint{1, 3, 4, 5, 6}, ids(FilterByDateRange(orders, RangeMonth, now)))
	assert.Equal(t, []uint{1, 2, 3, 4, 5, 6, 7}, ids(FilterByDateRange(orders, RangeAll, now)))
}

func TestSortByFieldTotalPriceRoundTrip(t *testing.T) {
	priced := func(id uint, price float64) models.Order {
		o := order(id, models.StatusScheduled)
		o.TotalPrice = price
		return o
	}
	orders := []models.Order{priced(1, 30), priced(2, 10), priced(3, 20)}

	asc := SortByField(orders, "totalPrice", "asc")
	desc := SortByField(orders, "totalPrice", "desc")

	require.Len(t, asc, 3)
	assert.Equal(t, []uint{2, 3, 1}, []uint{asc[0].ID, asc[1].ID, asc[2].ID})
	assert.Equal(t, []uint{1, 3, 2}, []uint{desc[0].ID, desc[1].ID, desc[2].ID})

	// input untouched
	assert.Equal(t, uint(1), orders[0].ID)
}

func TestSortByFieldStableForEqualKeys(t *testing.T) {
	priced := func(id uint, price float64) models.Order {
		o := order(id, models.StatusScheduled)
		o.TotalPrice = price
		return o
	}
	orders := []models.Order{priced(7, 25), priced(3, 25), priced(9, 25)}

	for i := 0; i < 5; i++ {
		sorted := SortByField(orders, "totalPrice", "asc")
		assert.Equal(t, []uint{7, 3, 9}, []uint{sorted[0].ID, sorted[1].ID, sorted[2].ID})

		sorted = SortByField(orders, "totalPrice", "desc")
		assert.Equal(t, []uint{7, 3, 9}, []uint{sorted[0].ID, sorted[1].ID, sorted[2].ID})
	}
}

func TestSortByFieldDates(t *testing.T) {
	dated := func(id uint, day int) models.Order {
		o := order(id, models.StatusScheduled)
		o.PickupDate = models.NewDate(2024, time.March, day)
		return o
	}
	orders := []models.Order{dated(1, 20), dated(2, 5), dated(3, 12)}

	sorted := SortByField(orders, "pickupDate", "asc")
	assert.Equal(t, []uint{2, 3, 1}, []uint{sorted[0].ID, sorted[1].ID, sorted[2].ID})
}

func TestSortByFieldUnknownFieldKeepsOrder(t *testing.T) {
	orders := []models.Order{order(2, models.StatusReady), order(1, models.StatusScheduled)}

	sorted := SortByField(orders, "nonsense", "asc")

	assert.Equal(t, []uint{2, 1}, []uint{sorted[0].ID, sorted[1].ID})
}
