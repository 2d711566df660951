package memstore

import (
	"context"
	"log/slog"
	"sync"

	domainErrors "github.com/avoandes/avomarket/internal/domain/errors"
	"github.com/avoandes/avomarket/internal/domain/model"
	"github.com/avoandes/avomarket/internal/domain/repository"
)

// Store acts as repository facade backed by process memory. Orders and
// inventory are kept as two logical collections each: an immutable seed slice
// fixed at construction and a mutable session overlay keyed by id. Every read
// recomputes the effective set from both, so session mutations shadow seed
// records with the same id without ever touching them.
type Store struct {
	mu     sync.RWMutex
	logger *slog.Logger

	seedOrders    []model.Order
	seedOrderIdx  map[string]int
	sessionOrders map[string]*model.Order
	sessionIDs    []string

	seedInventory    []model.InventoryItem
	seedInventoryIdx map[string]int
	sessionInventory map[string]*model.InventoryItem
	sessionItemIDs   []string
	removedInventory map[string]struct{}

	users        map[userKey]*model.User
	usersByEmail map[string]*model.User
}

type userKey struct {
	role model.Role
	id   string
}

type userRepository struct {
	storage *Store
}

type orderRepository struct {
	storage *Store
}

type inventoryRepository struct {
	storage *Store
}

// New creates an empty store.
func New(logger *slog.Logger) *Store {
	return &Store{
		logger:           logger,
		seedOrderIdx:     make(map[string]int),
		sessionOrders:    make(map[string]*model.Order),
		seedInventoryIdx: make(map[string]int),
		sessionInventory: make(map[string]*model.InventoryItem),
		removedInventory: make(map[string]struct{}),
		users:            make(map[userKey]*model.User),
		usersByEmail:     make(map[string]*model.User),
	}
}

// NewSeeded creates a store preloaded with the demo fixtures.
func NewSeeded(logger *slog.Logger) *Store {
	s := New(logger)
	s.applySeed()
	return s
}

// Factory methods for domain repositories.
func (s *Store) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Store) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Store) Inventory() repository.InventoryRepository {
	return &inventoryRepository{storage: s}
}

// effectiveOrderLocked resolves an id against the session overlay first, then
// the seed collection. Callers must hold at least a read lock.
func (s *Store) effectiveOrderLocked(id string) *model.Order {
	if order, ok := s.sessionOrders[id]; ok {
		return order
	}
	if idx, ok := s.seedOrderIdx[id]; ok {
		return &s.seedOrders[idx]
	}
	return nil
}

func (s *Store) effectiveItemLocked(id string) *model.InventoryItem {
	if _, removed := s.removedInventory[id]; removed {
		return nil
	}
	if item, ok := s.sessionInventory[id]; ok {
		return item
	}
	if idx, ok := s.seedInventoryIdx[id]; ok {
		return &s.seedInventory[idx]
	}
	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	s := r.storage
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.usersByEmail[user.Email]; exists {
		return domainErrors.ErrAlreadyExists
	}
	key := userKey{role: user.Role, id: user.ID}
	if _, exists := s.users[key]; exists {
		return domainErrors.ErrAlreadyExists
	}

	stored := *user
	s.users[key] = &stored
	s.usersByEmail[user.Email] = &stored
	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.usersByEmail[email]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *userRepository) Get(ctx context.Context, role model.Role, id string) (*model.User, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userKey{role: role, id: id}]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

// --- OrderRepository implementation ---

func (r *orderRepository) Insert(ctx context.Context, order *model.Order) error {
	s := r.storage
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.effectiveOrderLocked(order.ID) != nil {
		return domainErrors.ErrAlreadyExists
	}

	s.sessionOrders[order.ID] = order.Clone()
	s.sessionIDs = append(s.sessionIDs, order.ID)
	return nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()

	order := s.effectiveOrderLocked(id)
	if order == nil {
		return nil, domainErrors.ErrNotFound
	}
	return order.Clone(), nil
}

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Order, 0, len(s.seedOrders)+len(s.sessionIDs))
	for i := range s.seedOrders {
		id := s.seedOrders[i].ID
		if overlay, ok := s.sessionOrders[id]; ok {
			result = append(result, *overlay.Clone())
			continue
		}
		result = append(result, *s.seedOrders[i].Clone())
	}
	for _, id := range s.sessionIDs {
		if _, shadowsSeed := s.seedOrderIdx[id]; shadowsSeed {
			continue
		}
		result = append(result, *s.sessionOrders[id].Clone())
	}
	return result, nil
}

func (r *orderRepository) Transition(ctx context.Context, id string, from, to model.OrderStatus, vendorID string) (*model.Order, error) {
	s := r.storage
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.effectiveOrderLocked(id)
	if current == nil {
		return nil, domainErrors.ErrNotFound
	}
	if current.Status != from {
		return nil, domainErrors.ErrInvalidTransition
	}
	if !from.CanTransitionTo(to) {
		return nil, domainErrors.ErrInvalidTransition
	}
	if to == model.OrderStatusAccepted && vendorID == "" {
		return nil, domainErrors.ErrInvalidTransition
	}

	// Whole-record replacement: the stored order is swapped in one step, so a
	// concurrent read observes either the old or the new record, never a mix.
	next := current.Clone()
	next.Status = to
	if to == model.OrderStatusAccepted {
		next.AcceptedVendorID = vendorID
	}
	s.sessionOrders[id] = next

	s.logger.Info("order transitioned",
		slog.String("order", id),
		slog.String("from", string(from)),
		slog.String("to", string(to)),
	)
	return next.Clone(), nil
}

// --- InventoryRepository implementation ---

func (r *inventoryRepository) Insert(ctx context.Context, item *model.InventoryItem) error {
	s := r.storage
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.effectiveItemLocked(item.ID) != nil {
		return domainErrors.ErrAlreadyExists
	}

	stored := *item
	s.sessionInventory[item.ID] = &stored
	s.sessionItemIDs = append(s.sessionItemIDs, item.ID)
	return nil
}

func (r *inventoryRepository) GetByID(ctx context.Context, id string) (*model.InventoryItem, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()

	item := s.effectiveItemLocked(id)
	if item == nil {
		return nil, domainErrors.ErrNotFound
	}
	copied := *item
	return &copied, nil
}

func (r *inventoryRepository) Delete(ctx context.Context, id string) error {
	s := r.storage
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.effectiveItemLocked(id) == nil {
		return domainErrors.ErrNotFound
	}
	s.removedInventory[id] = struct{}{}
	return nil
}

func (r *inventoryRepository) List(ctx context.Context) ([]model.InventoryItem, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listInventoryLocked(func(model.InventoryItem) bool { return true }), nil
}

func (r *inventoryRepository) ListByVendor(ctx context.Context, vendorID string) ([]model.InventoryItem, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listInventoryLocked(func(item model.InventoryItem) bool { return item.VendorID == vendorID }), nil
}

func (s *Store) listInventoryLocked(keep func(model.InventoryItem) bool) []model.InventoryItem {
	result := make([]model.InventoryItem, 0, len(s.seedInventory)+len(s.sessionItemIDs))
	for i := range s.seedInventory {
		id := s.seedInventory[i].ID
		if _, removed := s.removedInventory[id]; removed {
			continue
		}
		item := s.seedInventory[i]
		if overlay, ok := s.sessionInventory[id]; ok {
			item = *overlay
		}
		if keep(item) {
			result = append(result, item)
		}
	}
	for _, id := range s.sessionItemIDs {
		if _, shadowsSeed := s.seedInventoryIdx[id]; shadowsSeed {
			continue
		}
		if _, removed := s.removedInventory[id]; removed {
			continue
		}
		item := *s.sessionInventory[id]
		if keep(item) {
			result = append(result, item)
		}
	}
	return result
}
