package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/avoandes/avomarket/internal/domain/errors"
	"github.com/avoandes/avomarket/internal/domain/model"
	"github.com/avoandes/avomarket/internal/domain/repository"
)

// Auto-matched orders carry a pseudo listing that no vendor owns. The
// sentinel vendor id keeps them from ever colliding with a real account.
const (
	AutoMatchVendorID   = "auto-match"
	AutoMatchVendorName = "Auto-Match Vendor"
)

// OrderUseCase encapsulates the order lifecycle: creation, vendor acceptance
// and the forward-only delivery progression.
type OrderUseCase struct {
	orders    repository.OrderRepository
	inventory repository.InventoryRepository
	users     repository.UserRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, inventory repository.InventoryRepository, users repository.UserRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, inventory: inventory, users: users}
}

// Place creates a pending order for an existing inventory listing. The item's
// current price is frozen into the order; later listing changes never touch it.
func (u *OrderUseCase) Place(ctx context.Context, buyerID, itemID string, quantity int, orderDate time.Time) (*model.Order, error) {
	buyer, err := u.buyer(ctx, buyerID)
	if err != nil {
		return nil, err
	}

	item, err := u.inventory.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	return u.create(ctx, buyer, item, quantity, orderDate)
}

// AutoMatchInput carries the buyer's preference range for a synthesized order.
type AutoMatchInput struct {
	Type     model.AvocadoType
	Caliber  model.Caliber
	MinPrice decimal.Decimal
	MaxPrice decimal.Decimal
	Quantity int
}

// AutoMatch synthesizes an order from a price/quantity preference without a
// concrete listing. The unit price is the midpoint of the requested range and
// the pseudo item is bound to the auto-match sentinel vendor.
func (u *OrderUseCase) AutoMatch(ctx context.Context, buyerID string, in AutoMatchInput) (*model.Order, error) {
	buyer, err := u.buyer(ctx, buyerID)
	if err != nil {
		return nil, err
	}

	if !in.Type.Valid() {
		return nil, fmt.Errorf("%w: avocado type must be selected", domainErrors.ErrValidation)
	}
	if !in.Caliber.Valid() {
		return nil, fmt.Errorf("%w: caliber must be selected", domainErrors.ErrValidation)
	}
	if in.MinPrice.IsNegative() || in.MaxPrice.IsNegative() {
		return nil, fmt.Errorf("%w: price range must be non-negative", domainErrors.ErrValidation)
	}
	if in.MinPrice.GreaterThan(in.MaxPrice) {
		return nil, fmt.Errorf("%w: minimum price exceeds maximum", domainErrors.ErrValidation)
	}

	unitPrice := in.MinPrice.Add(in.MaxPrice).Div(decimal.NewFromInt(2))
	pseudo := &model.InventoryItem{
		ID:            uuid.NewString(),
		VendorID:      AutoMatchVendorID,
		VendorName:    AutoMatchVendorName,
		Type:          in.Type,
		Caliber:       in.Caliber,
		QuantityBoxes: in.Quantity,
		PricePerBox:   unitPrice,
		Location:      "Auto-Match",
	}

	return u.create(ctx, buyer, pseudo, in.Quantity, time.Now().UTC())
}

func (u *OrderUseCase) create(ctx context.Context, buyer *model.User, item *model.InventoryItem, quantity int, orderDate time.Time) (*model.Order, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", domainErrors.ErrValidation)
	}
	if orderDate.IsZero() {
		return nil, fmt.Errorf("%w: order date is required", domainErrors.ErrValidation)
	}

	snapshot := *item
	order := &model.Order{
		ID:            uuid.NewString(),
		BuyerID:       buyer.ID,
		BuyerName:     buyer.CompanyName,
		Type:          item.Type,
		Caliber:       item.Caliber,
		QuantityBoxes: quantity,
		OrderDate:     orderDate,
		TotalAmount:   item.PricePerBox.Mul(decimal.NewFromInt(int64(quantity))),
		Status:        model.OrderStatusPending,
		Item:          &snapshot,
	}

	if err := u.orders.Insert(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// Accept applies the pending→accepted transition and binds the accepting
// vendor. The order must be in the vendor's candidate set: already pending and
// matched by the vendor's current inventory on (type, caliber). Orders outside
// the candidate set are reported as not found; orders already claimed fail as
// invalid transitions so the loser of an accept race gets a truthful answer.
func (u *OrderUseCase) Accept(ctx context.Context, vendorID, orderID string) (*model.Order, error) {
	if _, err := u.vendor(ctx, vendorID); err != nil {
		return nil, err
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != model.OrderStatusPending {
		return nil, domainErrors.ErrInvalidTransition
	}

	items, err := u.inventory.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	if !matchesInventory(order, items) {
		return nil, domainErrors.ErrNotFound
	}

	return u.orders.Transition(ctx, orderID, model.OrderStatusPending, model.OrderStatusAccepted, vendorID)
}

// Advance moves an accepted order one step forward. The caller names the
// status it believes the order is in; a stale expectation fails instead of
// silently applying a different transition.
func (u *OrderUseCase) Advance(ctx context.Context, vendorID, orderID string, expected model.OrderStatus) (*model.Order, error) {
	if _, err := u.vendor(ctx, vendorID); err != nil {
		return nil, err
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.AcceptedVendorID != vendorID {
		return nil, domainErrors.ErrUnauthorized
	}

	next, ok := expected.Next()
	if !ok || expected == model.OrderStatusPending {
		return nil, domainErrors.ErrInvalidTransition
	}

	return u.orders.Transition(ctx, orderID, expected, next, "")
}

// ListForBuyer returns the effective order set for a buyer. Seed orders key
// buyers by the small numeric ids while session accounts get fresh uuids, so
// matching falls back to the company name; both match rules are load-bearing.
func (u *OrderUseCase) ListForBuyer(ctx context.Context, buyerID string) ([]model.Order, error) {
	buyer, err := u.buyer(ctx, buyerID)
	if err != nil {
		return nil, err
	}

	all, err := u.orders.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]model.Order, 0, len(all))
	for _, order := range all {
		if order.BuyerID == buyer.ID || order.BuyerName == buyer.CompanyName {
			result = append(result, order)
		}
	}
	return result, nil
}

// ListForVendor returns orders accepted by the vendor plus every pending order
// matched by the vendor's current inventory. Visibility of pending orders is
// recomputed from live inventory, so removing the matching listing hides the
// order again.
func (u *OrderUseCase) ListForVendor(ctx context.Context, vendorID string) ([]model.Order, error) {
	if _, err := u.vendor(ctx, vendorID); err != nil {
		return nil, err
	}

	items, err := u.inventory.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	all, err := u.orders.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]model.Order, 0, len(all))
	for _, order := range all {
		if order.AcceptedVendorID == vendorID {
			result = append(result, order)
			continue
		}
		if order.Status == model.OrderStatusPending && matchesInventory(&order, items) {
			result = append(result, order)
		}
	}
	return result, nil
}

// Get fetches an order from the effective set.
func (u *OrderUseCase) Get(ctx context.Context, orderID string) (*model.Order, error) {
	return u.orders.GetByID(ctx, orderID)
}

// LetterParties resolves the order, accepting vendor and buyer for a letter of
// intent. Only the two parties to an already accepted order may request it.
func (u *OrderUseCase) LetterParties(ctx context.Context, userID string, role model.Role, orderID string) (*model.Order, *model.User, *model.User, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, nil, nil, err
	}
	if order.Status == model.OrderStatusPending {
		return nil, nil, nil, domainErrors.ErrInvalidTransition
	}

	buyer, err := u.users.Get(ctx, model.RoleBuyer, order.BuyerID)
	if err != nil {
		return nil, nil, nil, err
	}

	switch role {
	case model.RoleVendor:
		if order.AcceptedVendorID != userID {
			return nil, nil, nil, domainErrors.ErrUnauthorized
		}
	case model.RoleBuyer:
		requester, err := u.buyer(ctx, userID)
		if err != nil {
			return nil, nil, nil, err
		}
		if order.BuyerID != requester.ID && order.BuyerName != requester.CompanyName {
			return nil, nil, nil, domainErrors.ErrUnauthorized
		}
	default:
		return nil, nil, nil, domainErrors.ErrUnauthorized
	}

	vendor, err := u.users.Get(ctx, model.RoleVendor, order.AcceptedVendorID)
	if err != nil {
		return nil, nil, nil, err
	}

	return order, vendor, buyer, nil
}

func (u *OrderUseCase) buyer(ctx context.Context, id string) (*model.User, error) {
	buyer, err := u.users.Get(ctx, model.RoleBuyer, id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrUnauthorized
		}
		return nil, err
	}
	return buyer, nil
}

func (u *OrderUseCase) vendor(ctx context.Context, id string) (*model.User, error) {
	vendor, err := u.users.Get(ctx, model.RoleVendor, id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrUnauthorized
		}
		return nil, err
	}
	return vendor, nil
}

func matchesInventory(order *model.Order, items []model.InventoryItem) bool {
	for _, item := range items {
		if item.Type == order.Type && item.Caliber == order.Caliber {
			return true
		}
	}
	return false
}
