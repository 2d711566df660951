package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/avoandes/avomarket/internal/app"
	"github.com/avoandes/avomarket/internal/config"
	"github.com/avoandes/avomarket/internal/domain/repository"
	"github.com/avoandes/avomarket/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:      ":0",
		SessionSecret:   "secret",
		SessionTTL:      time.Minute,
		ShutdownTimeout: time.Millisecond,
		DisableSeed:     true,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	userRepo := test.NewUserRepositoryStub()
	orderRepo := &test.OrderRepositoryStub{}
	inventoryRepo := &test.InventoryRepositoryStub{}

	var facade *app.MarketFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(repository.UserRepository(userRepo)),
			fx.Replace(repository.OrderRepository(orderRepo)),
			fx.Replace(repository.InventoryRepository(inventoryRepo)),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected market facade instance")
	}

	if _, _, err := facade.ParseToken("garbage"); err == nil {
		t.Fatal("expected invalid token to be rejected")
	}
}

func TestModuleSeedsStoreByDefault(t *testing.T) {
	cfg := &config.Config{
		RunAddress:      ":0",
		SessionSecret:   "secret",
		SessionTTL:      time.Minute,
		ShutdownTimeout: time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	var orders repository.OrderRepository
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
		),
		fx.Populate(&orders),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })

	all, err := orders.List(context.Background())
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if len(all) == 0 {
		t.Fatal("expected seeded orders")
	}
	for _, o := range all {
		if !o.Status.Valid() {
			t.Fatalf("seed order %s has invalid status %q", o.ID, o.Status)
		}
	}
}
