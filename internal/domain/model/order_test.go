package model

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestOrderStatusNext(t *testing.T) {
	cases := []struct {
		status OrderStatus
		next   OrderStatus
		ok     bool
	}{
		{OrderStatusPending, OrderStatusAccepted, true},
		{OrderStatusAccepted, OrderStatusOutForDelivery, true},
		{OrderStatusOutForDelivery, OrderStatusDelivered, true},
		{OrderStatusDelivered, "", false},
		{OrderStatus("cancelled"), "", false},
	}

	for _, tc := range cases {
		next, ok := tc.status.Next()
		if ok != tc.ok || next != tc.next {
			t.Fatalf("Next(%q) = %q, %v; want %q, %v", tc.status, next, ok, tc.next, tc.ok)
		}
	}
}

func TestOrderStatusCanTransitionTo(t *testing.T) {
	if !OrderStatusPending.CanTransitionTo(OrderStatusAccepted) {
		t.Fatal("pending should transition to accepted")
	}
	if OrderStatusPending.CanTransitionTo(OrderStatusOutForDelivery) {
		t.Fatal("pending must not skip to out-for-delivery")
	}
	if OrderStatusAccepted.CanTransitionTo(OrderStatusPending) {
		t.Fatal("backward transition must be rejected")
	}
	if OrderStatusDelivered.CanTransitionTo(OrderStatusDelivered) {
		t.Fatal("delivered is terminal")
	}
	for _, s := range []OrderStatus{OrderStatusPending, OrderStatusAccepted, OrderStatusOutForDelivery} {
		if s.CanTransitionTo(OrderStatusPending) {
			t.Fatalf("no transition into pending allowed from %q", s)
		}
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	if OrderStatusOutForDelivery.Terminal() {
		t.Fatal("out-for-delivery is not terminal")
	}
	if !OrderStatusDelivered.Terminal() {
		t.Fatal("delivered is terminal")
	}
}

func TestOrderUnitPrice(t *testing.T) {
	price := decimal.RequireFromString("45.00")
	order := Order{
		QuantityBoxes: 2000,
		TotalAmount:   decimal.RequireFromString("90000.00"),
		Item:          &InventoryItem{PricePerBox: price},
	}
	if !order.UnitPrice().Equal(price) {
		t.Fatalf("unexpected unit price %s", order.UnitPrice())
	}

	order.Item = nil
	if !order.UnitPrice().Equal(decimal.NewFromInt(45)) {
		t.Fatalf("expected derived unit price 45, got %s", order.UnitPrice())
	}
}

func TestOrderCloneIsolatesItemSnapshot(t *testing.T) {
	original := Order{
		ID:     "1",
		Status: OrderStatusPending,
		Item:   &InventoryItem{ID: "i1", PricePerBox: decimal.NewFromInt(40)},
	}
	clone := original.Clone()
	clone.Status = OrderStatusAccepted
	clone.Item.PricePerBox = decimal.NewFromInt(99)

	if original.Status != OrderStatusPending {
		t.Fatal("clone mutated original status")
	}
	if !original.Item.PricePerBox.Equal(decimal.NewFromInt(40)) {
		t.Fatal("clone shares item snapshot with original")
	}
}

func TestRoleAndCategoryValidity(t *testing.T) {
	if !RoleBuyer.Valid() || !RoleVendor.Valid() || Role("admin").Valid() {
		t.Fatal("unexpected role validity")
	}
	if !TypeHass.Valid() || AvocadoType("Reed").Valid() {
		t.Fatal("unexpected avocado type validity")
	}
	if !Caliber("60").Valid() || Caliber("90").Valid() {
		t.Fatal("unexpected caliber validity")
	}
}
