package dto

import "github.com/shopspring/decimal"

// PlaceOrderRequest describes an order against a concrete listing.
type PlaceOrderRequest struct {
	ItemID        string `json:"itemId"`
	QuantityBoxes int    `json:"quantityBoxes"`
	OrderDate     string `json:"orderDate"`
}

// AutoMatchRequest describes a preference-based order without a listing.
type AutoMatchRequest struct {
	Type          string          `json:"type"`
	Caliber       string          `json:"caliber"`
	MinPrice      decimal.Decimal `json:"minPrice"`
	MaxPrice      decimal.Decimal `json:"maxPrice"`
	QuantityBoxes int             `json:"quantityBoxes"`
}

// AdvanceRequest names the status the caller believes the order is in.
// The transition is refused when the record has moved on since.
type AdvanceRequest struct {
	CurrentStatus string `json:"currentStatus"`
}

// OrderResponse is the wire view of an order.
type OrderResponse struct {
	ID               string                 `json:"id"`
	BuyerID          string                 `json:"buyerId"`
	BuyerName        string                 `json:"buyerName"`
	Type             string                 `json:"type"`
	Caliber          string                 `json:"caliber"`
	QuantityBoxes    int                    `json:"quantityBoxes"`
	OrderDate        string                 `json:"orderDate"`
	TotalAmount      decimal.Decimal        `json:"totalAmount"`
	Status           string                 `json:"status"`
	AcceptedVendorID string                 `json:"acceptedVendorId,omitempty"`
	Item             *InventoryItemResponse `json:"item,omitempty"`
}

// DashboardResponse partitions the caller's visible orders by status.
// InProgress counts accepted and out-for-delivery orders.
type DashboardResponse struct {
	Pending        []OrderResponse `json:"pending"`
	Accepted       []OrderResponse `json:"accepted"`
	OutForDelivery []OrderResponse `json:"outForDelivery"`
	Delivered      []OrderResponse `json:"delivered"`
	InProgress     int             `json:"inProgress"`
}
