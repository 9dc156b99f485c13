package models

import "time"

type Order struct {
	ID            int64       `json:"id"`
	CustomerName  string      `json:"customer_name"`
	CustomerEmail string      `json:"customer_email"`
	Phone         string      `json:"phone"`
	Address       string      `json:"address"`
	PickupTime    string      `json:"pickup_time"`
	Items         []CartItem  `json:"items"`
	Status        OrderStatus `json:"status"`
	CancelReason  string      `json:"cancel_reason,omitempty"`
	Total         int64       `json:"total"` // cents, denormalized; recomputed from Items
	CreatedAt     time.Time   `json:"created_at"`
}

type OrderStatus string

const (
	StatusPending        OrderStatus = "Pending"
	StatusPreparing      OrderStatus = "Preparing"
	StatusCooking        OrderStatus = "Cooking"
	StatusReadyForPickup OrderStatus = "Ready for Pickup"
	StatusOutForDelivery OrderStatus = "Out for Delivery"
	StatusCompleted      OrderStatus = "Completed"
	StatusCancelled      OrderStatus = "Cancelled"
)

// UpdateTargets are the statuses an admin can move an order to directly.
// Pending is only ever the initial status and Cancelled requires a reason,
// so neither is a valid update target.
func UpdateTargets() []OrderStatus {
	return []OrderStatus{
		StatusPreparing,
		StatusCooking,
		StatusReadyForPickup,
		StatusOutForDelivery,
		StatusCompleted,
	}
}

func ValidUpdateTarget(status OrderStatus) bool {
	for _, s := range UpdateTargets() {
		if s == status {
			return true
		}
	}
	return false
}

// Terminal reports whether the order can no longer change status.
func (s OrderStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CheckoutDraft holds the transient checkout form fields. It is persisted so
// a customer returning to the cart page finds the form prefilled, and cleared
// when the order is placed.
type CheckoutDraft struct {
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	PickupDate string `json:"pickup_date"`
}
