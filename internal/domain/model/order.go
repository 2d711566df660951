package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus describes the order lifecycle. Statuses are totally ordered and
// only ever advance one step forward.
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusAccepted       OrderStatus = "accepted"
	OrderStatusOutForDelivery OrderStatus = "out-for-delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
)

// orderStatusSequence is the forward lifecycle. There is no transition into
// pending: orders are created there.
var orderStatusSequence = []OrderStatus{
	OrderStatusPending,
	OrderStatusAccepted,
	OrderStatusOutForDelivery,
	OrderStatusDelivered,
}

// Valid reports whether the status is part of the lifecycle.
func (s OrderStatus) Valid() bool {
	for _, known := range orderStatusSequence {
		if s == known {
			return true
		}
	}
	return false
}

// Next returns the immediate successor status. ok is false for delivered,
// which is terminal, and for unknown statuses.
func (s OrderStatus) Next() (next OrderStatus, ok bool) {
	for i, known := range orderStatusSequence {
		if s == known && i+1 < len(orderStatusSequence) {
			return orderStatusSequence[i+1], true
		}
	}
	return "", false
}

// Terminal reports whether no further transition exists.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered
}

// CanTransitionTo accepts only the immediate successor; skips and backward
// moves are rejected.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	successor, ok := s.Next()
	return ok && next == successor
}

// Order is a buyer's purchase request. TotalAmount is computed once at
// creation and never recomputed; Item is a frozen snapshot of the originating
// listing (nil when none was recorded).
type Order struct {
	ID               string
	BuyerID          string
	BuyerName        string
	Type             AvocadoType
	Caliber          Caliber
	QuantityBoxes    int
	OrderDate        time.Time
	TotalAmount      decimal.Decimal
	Status           OrderStatus
	AcceptedVendorID string
	Item             *InventoryItem
}

// Accepted reports whether a vendor has been bound to the order.
func (o *Order) Accepted() bool {
	return o.AcceptedVendorID != ""
}

// UnitPrice returns the per-box price frozen on the order, falling back to
// totalAmount/quantity for records without an item snapshot.
func (o *Order) UnitPrice() decimal.Decimal {
	if o.Item != nil {
		return o.Item.PricePerBox
	}
	if o.QuantityBoxes <= 0 {
		return decimal.Zero
	}
	return o.TotalAmount.Div(decimal.NewFromInt(int64(o.QuantityBoxes)))
}

// Clone returns a deep copy so transitions can replace whole records without
// sharing the item snapshot.
func (o *Order) Clone() *Order {
	clone := *o
	if o.Item != nil {
		item := *o.Item
		clone.Item = &item
	}
	return &clone
}
