package app

import (
	"context"
	"time"

	"github.com/avoandes/avomarket/internal/domain/model"
	"github.com/avoandes/avomarket/internal/letter"
	"github.com/avoandes/avomarket/internal/usecase"
)

// MarketFacade aggregates the marketplace use cases behind one surface the
// HTTP layer talks to.
type MarketFacade struct {
	auth      *usecase.AuthUseCase
	orders    *usecase.OrderUseCase
	inventory *usecase.InventoryUseCase
	letters   *letter.Generator
}

func NewMarketFacade(auth *usecase.AuthUseCase, orders *usecase.OrderUseCase, inventory *usecase.InventoryUseCase, letters *letter.Generator) *MarketFacade {
	return &MarketFacade{auth: auth, orders: orders, inventory: inventory, letters: letters}
}

func (f *MarketFacade) Register(ctx context.Context, in usecase.RegisterInput) (*model.User, string, error) {
	return f.auth.Register(ctx, in)
}

func (f *MarketFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *MarketFacade) ParseToken(token string) (string, model.Role, error) {
	return f.auth.ParseToken(token)
}

func (f *MarketFacade) BrowseInventory(ctx context.Context, filter usecase.Filter) ([]model.InventoryItem, error) {
	return f.inventory.Browse(ctx, filter)
}

func (f *MarketFacade) PlaceOrder(ctx context.Context, buyerID, itemID string, quantity int, orderDate time.Time) (*model.Order, error) {
	return f.orders.Place(ctx, buyerID, itemID, quantity, orderDate)
}

func (f *MarketFacade) AutoMatchOrder(ctx context.Context, buyerID string, in usecase.AutoMatchInput) (*model.Order, error) {
	return f.orders.AutoMatch(ctx, buyerID, in)
}

// BuyerOrders derives the buyer dashboard: the buyer's effective order set
// partitioned by status.
func (f *MarketFacade) BuyerOrders(ctx context.Context, buyerID string) (usecase.StatusBuckets, error) {
	orders, err := f.orders.ListForBuyer(ctx, buyerID)
	if err != nil {
		return usecase.StatusBuckets{}, err
	}
	return usecase.BucketByStatus(orders), nil
}

// VendorOrders derives the vendor dashboard from the candidate order set.
func (f *MarketFacade) VendorOrders(ctx context.Context, vendorID string) (usecase.StatusBuckets, error) {
	orders, err := f.orders.ListForVendor(ctx, vendorID)
	if err != nil {
		return usecase.StatusBuckets{}, err
	}
	return usecase.BucketByStatus(orders), nil
}

func (f *MarketFacade) AcceptOrder(ctx context.Context, vendorID, orderID string) (*model.Order, error) {
	return f.orders.Accept(ctx, vendorID, orderID)
}

func (f *MarketFacade) AdvanceOrder(ctx context.Context, vendorID, orderID string, expected model.OrderStatus) (*model.Order, error) {
	return f.orders.Advance(ctx, vendorID, orderID, expected)
}

func (f *MarketFacade) VendorInventory(ctx context.Context, vendorID string) ([]model.InventoryItem, error) {
	return f.inventory.ListForVendor(ctx, vendorID)
}

func (f *MarketFacade) AddInventoryItem(ctx context.Context, vendorID string, in usecase.AddItemInput) (*model.InventoryItem, error) {
	return f.inventory.Add(ctx, vendorID, in)
}

func (f *MarketFacade) RemoveInventoryItem(ctx context.Context, vendorID, itemID string) error {
	return f.inventory.Remove(ctx, vendorID, itemID)
}

// Letter renders the letter of intent for one of the order's parties.
func (f *MarketFacade) Letter(ctx context.Context, userID string, role model.Role, orderID string) ([]byte, string, error) {
	order, vendor, buyer, err := f.orders.LetterParties(ctx, userID, role, orderID)
	if err != nil {
		return nil, "", err
	}
	return f.letters.Render(order, vendor, buyer)
}
