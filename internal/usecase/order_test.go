package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/avoandes/avomarket/internal/domain/errors"
	"github.com/avoandes/avomarket/internal/domain/model"
	"github.com/avoandes/avomarket/internal/storage/memstore"
)

func newOrderUseCase(t *testing.T) (*OrderUseCase, *InventoryUseCase, *memstore.Store) {
	t.Helper()
	store := memstore.NewSeeded(slog.New(slog.NewJSONHandler(io.Discard, nil)))
	orders := NewOrderUseCase(store.Orders(), store.Inventory(), store.Users())
	inventory := NewInventoryUseCase(store.Inventory(), store.Users())
	return orders, inventory, store
}

func TestPlaceOrderComputesTotalOnce(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newOrderUseCase(t)

	// Seed item 1: Hass 48 at 45.00 per box, owned by vendor 1.
	order, err := uc.Place(ctx, "1", "1", 2000, time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	if !order.TotalAmount.Equal(decimal.RequireFromString("90000.00")) {
		t.Fatalf("expected total 90000.00, got %s", order.TotalAmount)
	}
	if order.Status != model.OrderStatusPending || order.AcceptedVendorID != "" {
		t.Fatalf("new order must be pending and unassigned: %+v", order)
	}
	if order.BuyerName != "Fresh Market Co." {
		t.Fatalf("buyer name not stamped: %q", order.BuyerName)
	}
	if order.Item == nil || !order.Item.PricePerBox.Equal(decimal.RequireFromString("45.00")) {
		t.Fatal("expected frozen item snapshot with listing price")
	}
}

func TestPlaceOrderValidation(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newOrderUseCase(t)
	when := time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC)

	if _, err := uc.Place(ctx, "1", "1", 0, when); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error for zero quantity, got %v", err)
	}
	if _, err := uc.Place(ctx, "1", "1", -3, when); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error for negative quantity, got %v", err)
	}
	if _, err := uc.Place(ctx, "1", "1", 10, time.Time{}); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error for missing order date, got %v", err)
	}
	if _, err := uc.Place(ctx, "1", "missing-item", 10, when); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found for unknown item, got %v", err)
	}
	if _, err := uc.Place(ctx, "ghost", "1", 10, when); !errors.Is(err, domainErrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized for unknown buyer, got %v", err)
	}
}

func TestTotalAmountInvariantToLaterPriceChanges(t *testing.T) {
	ctx := context.Background()
	uc, inventory, _ := newOrderUseCase(t)
	when := time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC)

	order, err := uc.Place(ctx, "1", "1", 100, when)
	if err != nil {
		t.Fatalf("place: %v", err)
	}

	// Replace the listing: vendor removes it and relists at a higher price.
	if err := inventory.Remove(ctx, "1", "1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := inventory.Add(ctx, "1", AddItemInput{Type: model.TypeHass, Caliber: "48", QuantityBoxes: 500, PricePerBox: decimal.RequireFromString("99.00")}); err != nil {
		t.Fatalf("add: %v", err)
	}

	refreshed, err := uc.Get(ctx, order.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !refreshed.TotalAmount.Equal(decimal.RequireFromString("4500.00")) {
		t.Fatalf("total must stay frozen at 4500.00, got %s", refreshed.TotalAmount)
	}
}

func TestAcceptRaceFirstVendorWins(t *testing.T) {
	ctx := context.Background()
	uc, inventory, _ := newOrderUseCase(t)

	// Vendor 3 lists Hass 48 so seed order 1 enters its candidate set too.
	if _, err := inventory.Add(ctx, "3", AddItemInput{Type: model.TypeHass, Caliber: "48", QuantityBoxes: 100, PricePerBox: decimal.RequireFromString("44.00")}); err != nil {
		t.Fatalf("add: %v", err)
	}

	accepted, err := uc.Accept(ctx, "1", "1")
	if err != nil {
		t.Fatalf("vendor 1 accept: %v", err)
	}
	if accepted.Status != model.OrderStatusAccepted || accepted.AcceptedVendorID != "1" {
		t.Fatalf("unexpected accept result: %+v", accepted)
	}

	if _, err := uc.Accept(ctx, "3", "1"); !errors.Is(err, domainErrors.ErrInvalidTransition) {
		t.Fatalf("second accept should fail invalid transition, got %v", err)
	}

	order, err := uc.Get(ctx, "1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if order.AcceptedVendorID != "1" {
		t.Fatalf("acceptedVendorId reassigned to %s", order.AcceptedVendorID)
	}
}

func TestAcceptRequiresMatchingInventory(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newOrderUseCase(t)

	// Seed order 8 is Bacon 48; no seed vendor lists Bacon.
	if _, err := uc.Accept(ctx, "1", "8"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found for order outside candidate set, got %v", err)
	}
	if _, err := uc.Accept(ctx, "1", "no-such-order"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found for unknown order, got %v", err)
	}
}

func TestAdvanceFullLifecycle(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newOrderUseCase(t)

	accepted, err := uc.Accept(ctx, "1", "1")
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if accepted.Status != model.OrderStatusAccepted {
		t.Fatalf("step 1: got %s", accepted.Status)
	}

	out, err := uc.Advance(ctx, "1", "1", model.OrderStatusAccepted)
	if err != nil {
		t.Fatalf("advance to out-for-delivery: %v", err)
	}
	if out.Status != model.OrderStatusOutForDelivery {
		t.Fatalf("step 2: got %s", out.Status)
	}

	delivered, err := uc.Advance(ctx, "1", "1", model.OrderStatusOutForDelivery)
	if err != nil {
		t.Fatalf("advance to delivered: %v", err)
	}
	if delivered.Status != model.OrderStatusDelivered {
		t.Fatalf("step 3: got %s", delivered.Status)
	}
	if delivered.AcceptedVendorID != "1" {
		t.Fatal("acceptedVendorId must survive later transitions")
	}

	if _, err := uc.Advance(ctx, "1", "1", model.OrderStatusDelivered); !errors.Is(err, domainErrors.ErrInvalidTransition) {
		t.Fatalf("delivered is terminal, got %v", err)
	}
}

func TestAdvanceGuards(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newOrderUseCase(t)

	// Order 4 is accepted by vendor 2; vendor 1 may not advance it.
	if _, err := uc.Advance(ctx, "1", "4", model.OrderStatusAccepted); !errors.Is(err, domainErrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	// Pending is not advanceable; accepting is its own operation.
	if _, err := uc.Advance(ctx, "2", "4", model.OrderStatusPending); !errors.Is(err, domainErrors.ErrInvalidTransition) {
		t.Fatalf("expected invalid transition for pending expectation, got %v", err)
	}
	// Stale expectation: order 4 is accepted, not out-for-delivery.
	if _, err := uc.Advance(ctx, "2", "4", model.OrderStatusOutForDelivery); !errors.Is(err, domainErrors.ErrInvalidTransition) {
		t.Fatalf("expected invalid transition for stale expectation, got %v", err)
	}
}

func TestAutoMatchOrder(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newOrderUseCase(t)

	order, err := uc.AutoMatch(ctx, "1", AutoMatchInput{
		Type:     model.TypeHass,
		Caliber:  "48",
		MinPrice: decimal.NewFromInt(30),
		MaxPrice: decimal.NewFromInt(50),
		Quantity: 1000,
	})
	if err != nil {
		t.Fatalf("auto match: %v", err)
	}
	if !order.Item.PricePerBox.Equal(decimal.NewFromInt(40)) {
		t.Fatalf("expected midpoint unit price 40, got %s", order.Item.PricePerBox)
	}
	if !order.TotalAmount.Equal(decimal.NewFromInt(40000)) {
		t.Fatalf("expected total 40000, got %s", order.TotalAmount)
	}
	if order.Item.VendorName != AutoMatchVendorName || order.Item.VendorID != AutoMatchVendorID {
		t.Fatalf("expected auto-match sentinel vendor, got %+v", order.Item)
	}

	// The synthesized order behaves like any other: vendor 1 lists Hass 48.
	accepted, err := uc.Accept(ctx, "1", order.ID)
	if err != nil {
		t.Fatalf("accept auto-matched order: %v", err)
	}
	if accepted.AcceptedVendorID != "1" {
		t.Fatalf("unexpected vendor binding: %+v", accepted)
	}
}

func TestAutoMatchValidation(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newOrderUseCase(t)

	base := AutoMatchInput{
		Type:     model.TypeHass,
		Caliber:  "48",
		MinPrice: decimal.NewFromInt(30),
		MaxPrice: decimal.NewFromInt(50),
		Quantity: 100,
	}

	missingType := base
	missingType.Type = ""
	if _, err := uc.AutoMatch(ctx, "1", missingType); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error for missing type, got %v", err)
	}

	missingCaliber := base
	missingCaliber.Caliber = ""
	if _, err := uc.AutoMatch(ctx, "1", missingCaliber); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error for missing caliber, got %v", err)
	}

	inverted := base
	inverted.MinPrice = decimal.NewFromInt(60)
	if _, err := uc.AutoMatch(ctx, "1", inverted); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error for inverted range, got %v", err)
	}

	negative := base
	negative.MinPrice = decimal.NewFromInt(-1)
	if _, err := uc.AutoMatch(ctx, "1", negative); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error for negative price, got %v", err)
	}

	zeroQuantity := base
	zeroQuantity.Quantity = 0
	if _, err := uc.AutoMatch(ctx, "1", zeroQuantity); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error for zero quantity, got %v", err)
	}
}

func TestListForBuyerMatchesIDOrName(t *testing.T) {
	ctx := context.Background()
	uc, _, store := newOrderUseCase(t)

	// A session account registered under the seed buyer's company name sees
	// the seed orders through the name fallback.
	sessionBuyer := &model.User{ID: "session-buyer", Role: model.RoleBuyer, Email: "fresh2@example.com", CompanyName: "Fresh Market Co."}
	if err := store.Users().Create(ctx, sessionBuyer); err != nil {
		t.Fatalf("create user: %v", err)
	}

	orders, err := uc.ListForBuyer(ctx, "session-buyer")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(orders) != 4 {
		t.Fatalf("expected the 4 Fresh Market seed orders, got %d", len(orders))
	}

	placed, err := uc.Place(ctx, "session-buyer", "1", 10, time.Date(2024, time.February, 6, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	orders, err = uc.ListForBuyer(ctx, "session-buyer")
	if err != nil {
		t.Fatalf("list again: %v", err)
	}
	if len(orders) != 5 || orders[4].ID != placed.ID {
		t.Fatalf("expected session order appended, got %d orders", len(orders))
	}
}

func TestListForVendorCandidateSet(t *testing.T) {
	ctx := context.Background()
	uc, inventory, _ := newOrderUseCase(t)

	orders, err := uc.ListForVendor(ctx, "1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	// Vendor 1 inventory: Hass 48 and Hass 60. Accepted by vendor 1: orders
	// 2, 3, 9, 12. Pending matches: order 1 (Hass 48) and order 6 (Hass 48).
	if len(orders) != 6 {
		t.Fatalf("expected 6 candidate orders, got %d", len(orders))
	}
	for _, o := range orders {
		visible := o.AcceptedVendorID == "1" || o.Status == model.OrderStatusPending
		if !visible {
			t.Fatalf("order %s should not be visible to vendor 1", o.ID)
		}
	}

	// Removing the Hass 48 listing hides the matching pending orders again.
	if err := inventory.Remove(ctx, "1", "1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	orders, err = uc.ListForVendor(ctx, "1")
	if err != nil {
		t.Fatalf("list after removal: %v", err)
	}
	if len(orders) != 4 {
		t.Fatalf("expected only accepted orders after removing the match, got %d", len(orders))
	}
	for _, o := range orders {
		if o.Status == model.OrderStatusPending {
			t.Fatalf("pending order %s should no longer be visible", o.ID)
		}
	}
}

func TestLetterParties(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newOrderUseCase(t)

	// Order 4: buyer 1, accepted by vendor 2.
	order, vendor, buyer, err := uc.LetterParties(ctx, "2", model.RoleVendor, "4")
	if err != nil {
		t.Fatalf("vendor letter: %v", err)
	}
	if order.ID != "4" || vendor.Name != "Tropical Harvest" || buyer.CompanyName != "Fresh Market Co." {
		t.Fatalf("unexpected parties: %+v %+v", vendor, buyer)
	}

	if _, _, _, err := uc.LetterParties(ctx, "1", model.RoleBuyer, "4"); err != nil {
		t.Fatalf("buyer letter: %v", err)
	}

	// Vendor 1 did not accept order 4.
	if _, _, _, err := uc.LetterParties(ctx, "1", model.RoleVendor, "4"); !errors.Is(err, domainErrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	// Buyer 2 does not own order 4.
	if _, _, _, err := uc.LetterParties(ctx, "2", model.RoleBuyer, "4"); !errors.Is(err, domainErrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized for foreign buyer, got %v", err)
	}
	// Order 1 is still pending: no letter exists yet.
	if _, _, _, err := uc.LetterParties(ctx, "1", model.RoleBuyer, "1"); !errors.Is(err, domainErrors.ErrInvalidTransition) {
		t.Fatalf("expected invalid transition for pending order, got %v", err)
	}
}
