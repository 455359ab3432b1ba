package service

import "github.com/orderfoodonline/catalog/internal/models"

// IsPurchased reports whether any order in the set contains a line item for
// the food, regardless of order status. An empty set means an anonymous
// caller and yields false.
func IsPurchased(foodID uint, orders []models.Order) bool {
	for _, order := range orders {
		for _, item := range order.Items {
			if item.FoodID == foodID {
				return true
			}
		}
	}
	return false
}

// TotalSold sums the quantities of the food across delivered orders only.
// Orders in any other status contribute nothing.
func TotalSold(foodID uint, orders []models.Order) int {
	total := 0
	for _, order := range orders {
		if order.Status != models.OrderStatusDelivered {
			continue
		}
		for _, item := range order.Items {
			if item.FoodID == foodID {
				total += item.Quantity
			}
		}
	}
	return total
}
