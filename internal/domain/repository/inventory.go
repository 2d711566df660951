package repository

import (
	"context"

	"github.com/avoandes/avomarket/internal/domain/model"
)

// InventoryRepository describes listing storage with the same seed/session
// overlay semantics as orders. Removing a seed item records a tombstone.
type InventoryRepository interface {
	Insert(ctx context.Context, item *model.InventoryItem) error
	GetByID(ctx context.Context, id string) (*model.InventoryItem, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]model.InventoryItem, error)
	ListByVendor(ctx context.Context, vendorID string) ([]model.InventoryItem, error)
}
