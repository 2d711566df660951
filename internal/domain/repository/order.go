package repository

import (
	"context"

	"github.com/avoandes/avomarket/internal/domain/model"
)

// OrderRepository describes the session order collection. Reads always observe
// the effective set: the immutable seed records overlaid by session records
// sharing the same id.
type OrderRepository interface {
	// Insert stores a session-created order. Fails ErrAlreadyExists if the id
	// is taken in the effective set.
	Insert(ctx context.Context, order *model.Order) error
	// GetByID returns an order from the effective set.
	GetByID(ctx context.Context, id string) (*model.Order, error)
	// List returns the effective set: seed insertion order first, session-only
	// ids appended in creation order.
	List(ctx context.Context) ([]model.Order, error)
	// Transition atomically replaces the order record with one at the next
	// status. The current status must equal from and to must be its immediate
	// successor; accepting additionally binds vendorID. Fails ErrNotFound for
	// unknown ids and ErrInvalidTransition otherwise.
	Transition(ctx context.Context, id string, from, to model.OrderStatus, vendorID string) (*model.Order, error)
}
