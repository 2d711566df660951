package memstore

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/avoandes/avomarket/internal/config"
	"github.com/avoandes/avomarket/internal/domain/repository"
)

// Module wires in-memory storage and repository adapters.
var Module = fx.Options(
	fx.Provide(newStore),
	fx.Provide(
		func(s *Store) repository.Factory { return s },
		func(s *Store) repository.UserRepository { return s.Users() },
		func(s *Store) repository.OrderRepository { return s.Orders() },
		func(s *Store) repository.InventoryRepository { return s.Inventory() },
	),
)

type storeParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newStore(p storeParams) *Store {
	if p.Config.DisableSeed {
		return New(p.Logger)
	}
	return NewSeeded(p.Logger)
}
