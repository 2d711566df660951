package test

import (
	"context"

	domainErrors "github.com/avoandes/avomarket/internal/domain/errors"
	"github.com/avoandes/avomarket/internal/domain/model"
	"github.com/avoandes/avomarket/internal/domain/repository"
)

type userKey struct {
	role model.Role
	id   string
}

// UserRepositoryStub stores accounts in-memory for tests.
type UserRepositoryStub struct {
	ByEmail map[string]*model.User
	ByKey   map[userKey]*model.User
	Err     error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		ByEmail: make(map[string]*model.User),
		ByKey:   make(map[userKey]*model.User),
	}
}

// Create registers an account unless the email is taken or the stub carries
// an explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, user *model.User) error {
	if s.Err != nil {
		return s.Err
	}
	if s.ByEmail == nil {
		s.ByEmail = make(map[string]*model.User)
	}
	if s.ByKey == nil {
		s.ByKey = make(map[userKey]*model.User)
	}
	if _, exists := s.ByEmail[user.Email]; exists {
		return domainErrors.ErrAlreadyExists
	}
	s.ByEmail[user.Email] = user
	s.ByKey[userKey{role: user.Role, id: user.ID}] = user
	return nil
}

// GetByEmail fetches an account by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByEmail[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Get fetches an account by role and identifier or returns not found.
func (s *UserRepositoryStub) Get(ctx context.Context, role model.Role, id string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByKey[userKey{role: role, id: id}]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// OrderRepositoryStub overrides order storage behaviour per test.
type OrderRepositoryStub struct {
	InsertFn     func(context.Context, *model.Order) error
	GetFn        func(context.Context, string) (*model.Order, error)
	ListFn       func(context.Context) ([]model.Order, error)
	TransitionFn func(context.Context, string, model.OrderStatus, model.OrderStatus, string) (*model.Order, error)
}

// Insert delegates to the override or accepts the order.
func (s *OrderRepositoryStub) Insert(ctx context.Context, order *model.Order) error {
	if s.InsertFn != nil {
		return s.InsertFn(ctx, order)
	}
	return nil
}

// GetByID delegates to the override or returns not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

// List delegates to the override or returns an empty set.
func (s *OrderRepositoryStub) List(ctx context.Context) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return nil, nil
}

// Transition delegates to the override or returns the advanced record.
func (s *OrderRepositoryStub) Transition(ctx context.Context, id string, from, to model.OrderStatus, vendorID string) (*model.Order, error) {
	if s.TransitionFn != nil {
		return s.TransitionFn(ctx, id, from, to, vendorID)
	}
	return &model.Order{ID: id, Status: to, AcceptedVendorID: vendorID}, nil
}

// InventoryRepositoryStub overrides listing storage behaviour per test.
type InventoryRepositoryStub struct {
	InsertFn       func(context.Context, *model.InventoryItem) error
	GetFn          func(context.Context, string) (*model.InventoryItem, error)
	DeleteFn       func(context.Context, string) error
	ListFn         func(context.Context) ([]model.InventoryItem, error)
	ListByVendorFn func(context.Context, string) ([]model.InventoryItem, error)
}

// Insert delegates to the override or accepts the listing.
func (s *InventoryRepositoryStub) Insert(ctx context.Context, item *model.InventoryItem) error {
	if s.InsertFn != nil {
		return s.InsertFn(ctx, item)
	}
	return nil
}

// GetByID delegates to the override or returns not found.
func (s *InventoryRepositoryStub) GetByID(ctx context.Context, id string) (*model.InventoryItem, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

// Delete delegates to the override or reports success.
func (s *InventoryRepositoryStub) Delete(ctx context.Context, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// List delegates to the override or returns an empty set.
func (s *InventoryRepositoryStub) List(ctx context.Context) ([]model.InventoryItem, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return nil, nil
}

// ListByVendor delegates to the override or returns an empty set.
func (s *InventoryRepositoryStub) ListByVendor(ctx context.Context, vendorID string) ([]model.InventoryItem, error) {
	if s.ListByVendorFn != nil {
		return s.ListByVendorFn(ctx, vendorID)
	}
	return nil, nil
}

var _ repository.UserRepository = (*UserRepositoryStub)(nil)
var _ repository.OrderRepository = (*OrderRepositoryStub)(nil)
var _ repository.InventoryRepository = (*InventoryRepositoryStub)(nil)
