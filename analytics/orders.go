// Package analytics computes the admin dashboard's filtered views and
// metrics. Every function takes the full order list explicitly and never
// mutates it; the store itself does no filtering.
package analytics

import (
	"sort"
	"time"

	"pearl-laundry-backend/models"
	"pearl-laundry-backend/utils"
)

// DateRange names a pickup-date window relative to "now".
type DateRange string

const (
	RangeAll   DateRange = "all"
	RangeToday DateRange = "today"
	RangeWeek  DateRange = "week"
	RangeMonth DateRange = "month"
)

// OrderMetrics are the dashboard counters. Picked-up and ready orders count
// toward Total but none of the named buckets; the dashboard has always shown
// it that way.
type OrderMetrics struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
}

// Metrics tallies the bucket counts over the full order list.
func Metrics(orders []models.Order) OrderMetrics {
	m := OrderMetrics{Total: len(orders)}
	for _, order := range orders {
		switch order.Status {
		case models.StatusScheduled:
			m.Pending++
		case models.StatusInProgress:
			m.InProgress++
		case models.StatusDelivered:
			m.Completed++
		}
	}
	return m
}

// FilterByStatus keeps orders whose status exactly matches. "all" is the
// identity filter and preserves the original order.
func FilterByStatus(orders []models.Order, status string) []models.Order {
	if status == "all" {
		return append([]models.Order(nil), orders...)
	}
	filtered := make([]models.Order, 0, len(orders))
	for _, order := range orders {
		if order.Status == models.Status(status) {
			filtered = append(filtered, order)
		}
	}
	return filtered
}

// FilterByDateRange keeps orders whose pickupDate falls in the half-open
// window for rng: today [midnight, midnight+1d), week [midnight-7d,
// midnight+1d), month [midnight-30d, midnight+1d).
func FilterByDateRange(orders []models.Order, rng DateRange, now time.Time) []models.Order {
	if rng == RangeAll || rng == "" {
		return append([]models.Order(nil), orders...)
	}

	midnight := utils.BeginningOfDay(now)
	end := midnight.AddDate(0, 0, 1)

	var start time.Time
	switch rng {
	case RangeToday:
		start = midnight
	case RangeWeek:
		start = midnight.AddDate(0, 0, -7)
	case RangeMonth:
		start = midnight.AddDate(0, 0, -30)
	default:
		return append([]models.Order(nil), orders...)
	}

	filtered := make([]models.Order, 0, len(orders))
	for _, order := range orders {
		d := order.PickupDate.Time
		// pickup dates carry no clock; compare against local midnights
		d = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, now.Location())
		if !d.Before(start) && d.Before(end) {
			filtered = append(filtered, order)
		}
	}
	return filtered
}

// SortByField returns a sorted copy. Dates compare as dates, totalPrice and
// id numerically, everything else lexically. The sort is stable: orders with
// equal keys keep their original relative order. An unknown field returns
// the input order unchanged.
func SortByField(orders []models.Order, field, direction string) []models.Order {
	sorted := append([]models.Order(nil), orders...)

	var less func(a, b models.Order) bool
	switch field {
	case "id":
		less = func(a, b models.Order) bool { return a.ID < b.ID }
	case "pickupDate":
		less = func(a, b models.Order) bool { return a.PickupDate.Before(b.PickupDate.Time) }
	case "createdAt":
		less = func(a, b models.Order) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case "totalPrice":
		less = func(a, b models.Order) bool { return a.TotalPrice < b.TotalPrice }
	case "status":
		less = func(a, b models.Order) bool { return a.Status < b.Status }
	case "customerName":
		less = func(a, b models.Order) bool { return a.CustomerName < b.CustomerName }
	default:
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if direction == "desc" {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})
	return sorted
}
