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

// InventoryUseCase manages vendor listings and the public browse view.
type InventoryUseCase struct {
	inventory repository.InventoryRepository
	users     repository.UserRepository
}

// NewInventoryUseCase constructs InventoryUseCase.
func NewInventoryUseCase(inventory repository.InventoryRepository, users repository.UserRepository) *InventoryUseCase {
	return &InventoryUseCase{inventory: inventory, users: users}
}

// AddItemInput carries new listing fields supplied by a vendor.
type AddItemInput struct {
	Type          model.AvocadoType
	Caliber       model.Caliber
	QuantityBoxes int
	PricePerBox   decimal.Decimal
	HarvestDate   time.Time
}

// Add creates a listing stamped with the acting vendor's identity. The
// harvest date defaults to today and the location to the vendor's profile.
func (u *InventoryUseCase) Add(ctx context.Context, vendorID string, in AddItemInput) (*model.InventoryItem, error) {
	vendor, err := u.users.Get(ctx, model.RoleVendor, vendorID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrUnauthorized
		}
		return nil, err
	}

	if !in.Type.Valid() {
		return nil, fmt.Errorf("%w: avocado type must be selected", domainErrors.ErrValidation)
	}
	if !in.Caliber.Valid() {
		return nil, fmt.Errorf("%w: caliber must be selected", domainErrors.ErrValidation)
	}
	if in.QuantityBoxes < 0 {
		return nil, fmt.Errorf("%w: quantity must be non-negative", domainErrors.ErrValidation)
	}
	if in.PricePerBox.IsNegative() {
		return nil, fmt.Errorf("%w: price must be non-negative", domainErrors.ErrValidation)
	}

	location := vendor.Location
	if location == "" {
		location = "Unknown"
	}
	harvestDate := in.HarvestDate
	if harvestDate.IsZero() {
		harvestDate = time.Now().UTC().Truncate(24 * time.Hour)
	}

	item := &model.InventoryItem{
		ID:            uuid.NewString(),
		VendorID:      vendor.ID,
		VendorName:    vendor.Name,
		Type:          in.Type,
		Caliber:       in.Caliber,
		QuantityBoxes: in.QuantityBoxes,
		PricePerBox:   in.PricePerBox,
		Location:      location,
		HarvestDate:   harvestDate,
	}

	if err := u.inventory.Insert(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Remove deletes a listing owned by the acting vendor. Orders referencing the
// item keep their frozen snapshot, so no order is invalidated by removal.
func (u *InventoryUseCase) Remove(ctx context.Context, vendorID, itemID string) error {
	item, err := u.inventory.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item.VendorID != vendorID {
		return domainErrors.ErrUnauthorized
	}
	return u.inventory.Delete(ctx, itemID)
}

// ListForVendor returns the vendor's own listings.
func (u *InventoryUseCase) ListForVendor(ctx context.Context, vendorID string) ([]model.InventoryItem, error) {
	return u.inventory.ListByVendor(ctx, vendorID)
}

// Filter narrows the public browse view. Nil price bounds are unbounded;
// empty type/caliber match everything.
type Filter struct {
	Type     model.AvocadoType
	Caliber  model.Caliber
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

func (f Filter) matches(item model.InventoryItem) bool {
	if f.Type != "" && item.Type != f.Type {
		return false
	}
	if f.Caliber != "" && item.Caliber != f.Caliber {
		return false
	}
	if f.MinPrice != nil && item.PricePerBox.LessThan(*f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && item.PricePerBox.GreaterThan(*f.MaxPrice) {
		return false
	}
	return true
}

// Browse returns every listing passing the filter, price bounds inclusive.
func (u *InventoryUseCase) Browse(ctx context.Context, filter Filter) ([]model.InventoryItem, error) {
	items, err := u.inventory.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]model.InventoryItem, 0, len(items))
	for _, item := range items {
		if filter.matches(item) {
			result = append(result, item)
		}
	}
	return result, nil
}
