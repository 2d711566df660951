package letter

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/avoandes/avomarket/internal/domain/model"
)

func TestFilename(t *testing.T) {
	orderDate := time.Date(2024, time.January, 25, 0, 0, 0, 0, time.UTC)
	if got := Filename(orderDate); got != "letterofintent-250124.pdf" {
		t.Fatalf("unexpected filename %q", got)
	}

	singleDigit := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	if got := Filename(singleDigit); got != "letterofintent-050324.pdf" {
		t.Fatalf("expected zero-padded filename, got %q", got)
	}
}

func TestDeliveryDate(t *testing.T) {
	orderDate := time.Date(2024, time.January, 25, 0, 0, 0, 0, time.UTC)
	want := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	if got := DeliveryDate(orderDate); !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestRenderProducesPDF(t *testing.T) {
	order := &model.Order{
		ID:            "4",
		BuyerID:       "1",
		BuyerName:     "Fresh Market Co.",
		Type:          model.TypeFuerte,
		Caliber:       "48",
		QuantityBoxes: 1200,
		OrderDate:     time.Date(2024, time.January, 22, 0, 0, 0, 0, time.UTC),
		TotalAmount:   decimal.RequireFromString("57600.00"),
		Status:        model.OrderStatusAccepted,
		Item:          &model.InventoryItem{PricePerBox: decimal.RequireFromString("48.00")},
	}
	vendor := &model.User{Role: model.RoleVendor, Name: "Tropical Harvest", Email: "vendor2@tropical.com"}
	buyer := &model.User{
		Role:        model.RoleBuyer,
		CompanyName: "Fresh Market Co.",
		ContactName: "Sarah Johnson",
		Email:       "buyer1@freshmarket.com",
		Phone:       "+1-555-1000",
		Address:     "123 Fresh Street, Los Angeles, CA 90210",
	}

	content, filename, err := NewGenerator().Render(order, vendor, buyer)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if filename != "letterofintent-220124.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}
	if !bytes.HasPrefix(content, []byte("%PDF")) {
		t.Fatal("expected PDF header")
	}
	if len(content) < 1000 {
		t.Fatalf("suspiciously small document: %d bytes", len(content))
	}
}

func TestRenderWithoutItemSnapshot(t *testing.T) {
	order := &model.Order{
		ID:            "7",
		QuantityBoxes: 600,
		OrderDate:     time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC),
		TotalAmount:   decimal.RequireFromString("24000.00"),
		Status:        model.OrderStatusDelivered,
		Type:          model.TypeBacon,
		Caliber:       "70",
	}
	vendor := &model.User{Role: model.RoleVendor, Name: "Premium Avocados"}
	buyer := &model.User{Role: model.RoleBuyer, CompanyName: "Grocery Chain Inc.", ContactName: "Michael Chen"}

	content, _, err := NewGenerator().Render(order, vendor, buyer)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(content) == 0 {
		t.Fatal("expected rendered document")
	}
}
