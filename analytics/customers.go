package analytics

import "pearl-laundry-backend/models"

// CustomerSummary is the per-customer rollup shown in the admin detail view.
type CustomerSummary struct {
	TotalSpent      float64       `json:"totalSpent"`
	OrderCount      int           `json:"orderCount"`
	MostRecentOrder *models.Order `json:"mostRecentOrder"`
}

// CustomerAggregate rolls up every order whose customerName matches exactly
// (case-sensitive, no normalization — the app has no real customer identity,
// the name string is the grouping key). Most recent means latest pickupDate,
// not createdAt.
func CustomerAggregate(orders []models.Order, customerName string) CustomerSummary {
	var summary CustomerSummary
	for i := range orders {
		order := &orders[i]
		if order.CustomerName != customerName {
			continue
		}
		summary.OrderCount++
		summary.TotalSpent += order.TotalPrice
		if summary.MostRecentOrder == nil ||
			order.PickupDate.After(summary.MostRecentOrder.PickupDate.Time) {
			summary.MostRecentOrder = order
		}
	}
	return summary
}

// CustomerOrders returns the orders matching customerName exactly, in their
// original order.
func CustomerOrders(orders []models.Order, customerName string) []models.Order {
	matched := make([]models.Order, 0)
	for _, order := range orders {
		if order.CustomerName == customerName {
			matched = append(matched, order)
		}
	}
	return matched
}
