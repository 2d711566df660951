package test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/avoandes/avomarket/internal/domain/model"
	"github.com/avoandes/avomarket/internal/usecase"
)

// MarketplaceFacadeStub provides controllable behaviour for the public
// catalogue endpoint.
type MarketplaceFacadeStub struct {
	BrowseFn func(context.Context, usecase.Filter) ([]model.InventoryItem, error)
}

// BrowseInventory delegates to the override or returns a single listing.
func (s MarketplaceFacadeStub) BrowseInventory(ctx context.Context, filter usecase.Filter) ([]model.InventoryItem, error) {
	if s.BrowseFn != nil {
		return s.BrowseFn(ctx, filter)
	}
	return []model.InventoryItem{{
		ID:          "item-1",
		VendorID:    "1",
		VendorName:  "Stub Farms",
		Type:        model.TypeHass,
		Caliber:     model.Caliber("48"),
		PricePerBox: decimal.NewFromInt(30),
	}}, nil
}

// BuyerFacadeStub simulates buyer order operations.
type BuyerFacadeStub struct {
	PlaceFn     func(context.Context, string, string, int, time.Time) (*model.Order, error)
	AutoMatchFn func(context.Context, string, usecase.AutoMatchInput) (*model.Order, error)
	OrdersFn    func(context.Context, string) (usecase.StatusBuckets, error)
}

// PlaceOrder delegates to the override or returns a pending order.
func (s BuyerFacadeStub) PlaceOrder(ctx context.Context, buyerID, itemID string, quantity int, orderDate time.Time) (*model.Order, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, buyerID, itemID, quantity, orderDate)
	}
	return &model.Order{ID: "order-1", BuyerID: buyerID, QuantityBoxes: quantity, Status: model.OrderStatusPending}, nil
}

// AutoMatchOrder delegates to the override or returns a synthesized order.
func (s BuyerFacadeStub) AutoMatchOrder(ctx context.Context, buyerID string, in usecase.AutoMatchInput) (*model.Order, error) {
	if s.AutoMatchFn != nil {
		return s.AutoMatchFn(ctx, buyerID, in)
	}
	return &model.Order{ID: "order-auto", BuyerID: buyerID, QuantityBoxes: in.Quantity, Status: model.OrderStatusPending}, nil
}

// BuyerOrders returns preconfigured buckets.
func (s BuyerFacadeStub) BuyerOrders(ctx context.Context, buyerID string) (usecase.StatusBuckets, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, buyerID)
	}
	return usecase.StatusBuckets{Pending: []model.Order{{ID: "order-1", Status: model.OrderStatusPending}}}, nil
}

// VendorFacadeStub simulates vendor order and listing operations.
type VendorFacadeStub struct {
	OrdersFn     func(context.Context, string) (usecase.StatusBuckets, error)
	AcceptFn     func(context.Context, string, string) (*model.Order, error)
	AdvanceFn    func(context.Context, string, string, model.OrderStatus) (*model.Order, error)
	InventoryFn  func(context.Context, string) ([]model.InventoryItem, error)
	AddItemFn    func(context.Context, string, usecase.AddItemInput) (*model.InventoryItem, error)
	RemoveItemFn func(context.Context, string, string) error
}

// VendorOrders returns preconfigured buckets.
func (s VendorFacadeStub) VendorOrders(ctx context.Context, vendorID string) (usecase.StatusBuckets, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, vendorID)
	}
	return usecase.StatusBuckets{}, nil
}

// AcceptOrder delegates to the override or returns an accepted order.
func (s VendorFacadeStub) AcceptOrder(ctx context.Context, vendorID, orderID string) (*model.Order, error) {
	if s.AcceptFn != nil {
		return s.AcceptFn(ctx, vendorID, orderID)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusAccepted, AcceptedVendorID: vendorID}, nil
}

// AdvanceOrder delegates to the override or moves to the next status.
func (s VendorFacadeStub) AdvanceOrder(ctx context.Context, vendorID, orderID string, expected model.OrderStatus) (*model.Order, error) {
	if s.AdvanceFn != nil {
		return s.AdvanceFn(ctx, vendorID, orderID, expected)
	}
	next, _ := expected.Next()
	return &model.Order{ID: orderID, Status: next, AcceptedVendorID: vendorID}, nil
}

// VendorInventory returns configured listings.
func (s VendorFacadeStub) VendorInventory(ctx context.Context, vendorID string) ([]model.InventoryItem, error) {
	if s.InventoryFn != nil {
		return s.InventoryFn(ctx, vendorID)
	}
	return []model.InventoryItem{{ID: "item-1", VendorID: vendorID}}, nil
}

// AddInventoryItem delegates to the override or echoes the input.
func (s VendorFacadeStub) AddInventoryItem(ctx context.Context, vendorID string, in usecase.AddItemInput) (*model.InventoryItem, error) {
	if s.AddItemFn != nil {
		return s.AddItemFn(ctx, vendorID, in)
	}
	return &model.InventoryItem{
		ID:            "item-new",
		VendorID:      vendorID,
		Type:          in.Type,
		Caliber:       in.Caliber,
		QuantityBoxes: in.QuantityBoxes,
		PricePerBox:   in.PricePerBox,
		HarvestDate:   in.HarvestDate,
	}, nil
}

// RemoveInventoryItem executes the configured removal handler.
func (s VendorFacadeStub) RemoveInventoryItem(ctx context.Context, vendorID, itemID string) error {
	if s.RemoveItemFn != nil {
		return s.RemoveItemFn(ctx, vendorID, itemID)
	}
	return nil
}

// LetterFacadeStub renders a minimal document for tests.
type LetterFacadeStub struct {
	LetterFn func(context.Context, string, model.Role, string) ([]byte, string, error)
}

// Letter delegates to the override or returns a placeholder PDF.
func (s LetterFacadeStub) Letter(ctx context.Context, userID string, role model.Role, orderID string) ([]byte, string, error) {
	if s.LetterFn != nil {
		return s.LetterFn(ctx, userID, role, orderID)
	}
	return []byte("%PDF-1.3 stub"), "letterofintent-010124.pdf", nil
}

// MarketFacadeStub aggregates facade dependencies for HTTP layer tests.
type MarketFacadeStub struct {
	AuthFacadeStub
	MarketplaceFacadeStub
	BuyerFacadeStub
	VendorFacadeStub
	LetterFacadeStub
}
