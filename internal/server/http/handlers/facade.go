package handlers

import (
	"context"
	"time"

	"github.com/avoandes/avomarket/internal/domain/model"
	"github.com/avoandes/avomarket/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, in usecase.RegisterInput) (*model.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (string, model.Role, error)
}

// MarketplaceFacade exposes the public listing catalogue.
type MarketplaceFacade interface {
	BrowseInventory(ctx context.Context, filter usecase.Filter) ([]model.InventoryItem, error)
}

// BuyerFacade encapsulates buyer-side order operations.
type BuyerFacade interface {
	PlaceOrder(ctx context.Context, buyerID, itemID string, quantity int, orderDate time.Time) (*model.Order, error)
	AutoMatchOrder(ctx context.Context, buyerID string, in usecase.AutoMatchInput) (*model.Order, error)
	BuyerOrders(ctx context.Context, buyerID string) (usecase.StatusBuckets, error)
}

// VendorFacade encapsulates vendor-side order and listing operations.
type VendorFacade interface {
	VendorOrders(ctx context.Context, vendorID string) (usecase.StatusBuckets, error)
	AcceptOrder(ctx context.Context, vendorID, orderID string) (*model.Order, error)
	AdvanceOrder(ctx context.Context, vendorID, orderID string, expected model.OrderStatus) (*model.Order, error)
	VendorInventory(ctx context.Context, vendorID string) ([]model.InventoryItem, error)
	AddInventoryItem(ctx context.Context, vendorID string, in usecase.AddItemInput) (*model.InventoryItem, error)
	RemoveInventoryItem(ctx context.Context, vendorID, itemID string) error
}

// LetterFacade renders letters of intent for order parties.
type LetterFacade interface {
	Letter(ctx context.Context, userID string, role model.Role, orderID string) ([]byte, string, error)
}

// MarketFacade aggregates the full set of operations used across handlers.
type MarketFacade interface {
	AuthFacade
	MarketplaceFacade
	BuyerFacade
	VendorFacade
	LetterFacade
}
