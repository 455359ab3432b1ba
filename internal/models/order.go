package models

import "time"

// Order statuses. Delivered is the terminal state that counts toward
// sales totals.
const (
	OrderStatusNew        = "NEW"
	OrderStatusProcessing = "PROCESSING"
	OrderStatusDelivered  = "DELIVERED"
	OrderStatusCancelled  = "CANCELLED"
)

// Order is a confirmed purchase by a user.
type Order struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Code   string `gorm:"not null;uniqueIndex" json:"code"`
	UserID uint   `gorm:"index;not null" json:"userId"`
	Status string `gorm:"not null" json:"status"`

	Items []CartItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CartItem is one order line. It references the food by ID and, when a size
// tier was chosen, the exact FoodSize version it was sold under.
type CartItem struct {
	ID         uint  `gorm:"primaryKey" json:"id"`
	OrderID    uint  `gorm:"index;not null" json:"-"`
	FoodID     uint  `gorm:"index;not null" json:"foodId"`
	FoodSizeID *uint `json:"foodSizeId,omitempty"`
	Quantity   int   `gorm:"not null" json:"quantity"`
}

// OrderRequest is an incoming order placement.
type OrderRequest struct {
	Items []OrderItemRequest `json:"items"`
}

// OrderItemRequest is a single requested line item.
type OrderItemRequest struct {
	FoodID     uint  `json:"foodId"`
	FoodSizeID *uint `json:"foodSizeId,omitempty"`
	Quantity   int   `json:"quantity"`
}

// OrderStatusRequest updates an order's status.
type OrderStatusRequest struct {
	Status string `json:"status"`
}
