package memstore

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/avoandes/avomarket/internal/domain/model"
)

// SeedPassword is the shared password of the demo accounts.
const SeedPassword = "password"

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func price(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func snapshot(pricePerBox string) *model.InventoryItem {
	return &model.InventoryItem{PricePerBox: price(pricePerBox)}
}

func seedInventory() []model.InventoryItem {
	return []model.InventoryItem{
		{ID: "1", VendorID: "1", VendorName: "Green Valley Farms", Type: model.TypeHass, Caliber: "48", QuantityBoxes: 500, PricePerBox: price("45.00"), Location: "California, USA", HarvestDate: date(2024, time.January, 15)},
		{ID: "2", VendorID: "1", VendorName: "Green Valley Farms", Type: model.TypeHass, Caliber: "60", QuantityBoxes: 300, PricePerBox: price("42.00"), Location: "California, USA", HarvestDate: date(2024, time.January, 15)},
		{ID: "3", VendorID: "2", VendorName: "Tropical Harvest", Type: model.TypeFuerte, Caliber: "48", QuantityBoxes: 800, PricePerBox: price("48.00"), Location: "Mexico", HarvestDate: date(2024, time.January, 10)},
		{ID: "4", VendorID: "3", VendorName: "Premium Avocados", Type: model.TypeHass, Caliber: "70", QuantityBoxes: 200, PricePerBox: price("40.00"), Location: "Peru", HarvestDate: date(2024, time.January, 20)},
		{ID: "5", VendorID: "2", VendorName: "Tropical Harvest", Type: model.TypeFuerte, Caliber: "60", QuantityBoxes: 400, PricePerBox: price("45.00"), Location: "Mexico", HarvestDate: date(2024, time.January, 10)},
	}
}

func seedOrders() []model.Order {
	return []model.Order{
		{ID: "1", BuyerID: "1", BuyerName: "Fresh Market Co.", Type: model.TypeHass, Caliber: "48", QuantityBoxes: 2000, OrderDate: date(2024, time.January, 25), Status: model.OrderStatusPending, TotalAmount: price("90000.00"), Item: snapshot("45.00")},
		{ID: "2", BuyerID: "1", BuyerName: "Fresh Market Co.", Type: model.TypeHass, Caliber: "60", QuantityBoxes: 1000, OrderDate: date(2024, time.January, 23), Status: model.OrderStatusOutForDelivery, AcceptedVendorID: "1", TotalAmount: price("42000.00"), Item: snapshot("42.00")},
		{ID: "3", BuyerID: "1", BuyerName: "Fresh Market Co.", Type: model.TypeHass, Caliber: "70", QuantityBoxes: 1500, OrderDate: date(2024, time.January, 24), Status: model.OrderStatusDelivered, AcceptedVendorID: "1", TotalAmount: price("60000.00"), Item: snapshot("40.00")},
		{ID: "4", BuyerID: "1", BuyerName: "Fresh Market Co.", Type: model.TypeFuerte, Caliber: "48", QuantityBoxes: 1200, OrderDate: date(2024, time.January, 22), Status: model.OrderStatusAccepted, AcceptedVendorID: "2", TotalAmount: price("57600.00"), Item: snapshot("48.00")},
		{ID: "5", BuyerID: "2", BuyerName: "Grocery Chain Inc.", Type: model.TypeFuerte, Caliber: "60", QuantityBoxes: 2000, OrderDate: date(2024, time.January, 26), Status: model.OrderStatusAccepted, AcceptedVendorID: "2", TotalAmount: price("90000.00"), Item: snapshot("45.00")},
		{ID: "6", BuyerID: "2", BuyerName: "Grocery Chain Inc.", Type: model.TypeHass, Caliber: "48", QuantityBoxes: 800, OrderDate: date(2024, time.January, 28), Status: model.OrderStatusPending, TotalAmount: price("36000.00"), Item: snapshot("45.00")},
		{ID: "7", BuyerID: "2", BuyerName: "Grocery Chain Inc.", Type: model.TypeBacon, Caliber: "70", QuantityBoxes: 600, OrderDate: date(2024, time.January, 20), Status: model.OrderStatusDelivered, AcceptedVendorID: "3", TotalAmount: price("24000.00"), Item: snapshot("40.00")},
		{ID: "8", BuyerID: "3", BuyerName: "Organic Foods Ltd.", Type: model.TypeBacon, Caliber: "48", QuantityBoxes: 800, OrderDate: date(2024, time.January, 27), Status: model.OrderStatusPending, TotalAmount: price("36000.00"), Item: snapshot("45.00")},
		{ID: "9", BuyerID: "3", BuyerName: "Organic Foods Ltd.", Type: model.TypeZutano, Caliber: "60", QuantityBoxes: 500, OrderDate: date(2024, time.January, 21), Status: model.OrderStatusAccepted, AcceptedVendorID: "1", TotalAmount: price("21000.00"), Item: snapshot("42.00")},
		{ID: "10", BuyerID: "3", BuyerName: "Organic Foods Ltd.", Type: model.TypeHass, Caliber: "84", QuantityBoxes: 300, OrderDate: date(2024, time.January, 19), Status: model.OrderStatusOutForDelivery, AcceptedVendorID: "2", TotalAmount: price("12000.00"), Item: snapshot("40.00")},
		{ID: "11", BuyerID: "4", BuyerName: "Premium Produce Co.", Type: model.TypeFuerte, Caliber: "70", QuantityBoxes: 1500, OrderDate: date(2024, time.January, 29), Status: model.OrderStatusPending, TotalAmount: price("67500.00"), Item: snapshot("45.00")},
		{ID: "12", BuyerID: "4", BuyerName: "Premium Produce Co.", Type: model.TypeHass, Caliber: "48", QuantityBoxes: 1000, OrderDate: date(2024, time.January, 18), Status: model.OrderStatusDelivered, AcceptedVendorID: "1", TotalAmount: price("45000.00"), Item: snapshot("45.00")},
	}
}

func seedUsers() []model.User {
	return []model.User{
		{ID: "1", Role: model.RoleVendor, Email: "vendor1@greenvalley.com", Name: "Green Valley Farms", Location: "California, USA", ContactInfo: "+1-555-0123"},
		{ID: "2", Role: model.RoleVendor, Email: "vendor2@tropical.com", Name: "Tropical Harvest", Location: "Mexico", ContactInfo: "+52-555-0456"},
		{ID: "3", Role: model.RoleVendor, Email: "vendor3@premium.com", Name: "Premium Avocados", Location: "Peru", ContactInfo: "+51-555-0789"},
		{ID: "1", Role: model.RoleBuyer, Email: "buyer1@freshmarket.com", CompanyName: "Fresh Market Co.", ContactName: "Sarah Johnson", Phone: "+1-555-1000", Address: "123 Fresh Street, Los Angeles, CA 90210"},
		{ID: "2", Role: model.RoleBuyer, Email: "buyer2@grocerychain.com", CompanyName: "Grocery Chain Inc.", ContactName: "Michael Chen", Phone: "+1-555-2000", Address: "456 Chain Avenue, New York, NY 10001"},
		{ID: "3", Role: model.RoleBuyer, Email: "buyer3@organicfoods.com", CompanyName: "Organic Foods Ltd.", ContactName: "Emily Rodriguez", Phone: "+1-555-3000", Address: "789 Organic Way, Portland, OR 97201"},
		{ID: "4", Role: model.RoleBuyer, Email: "buyer4@premiumproduce.com", CompanyName: "Premium Produce Co.", ContactName: "David Kim", Phone: "+1-555-4000", Address: "321 Premium Blvd, Miami, FL 33101"},
	}
}

func (s *Store) applySeed() {
	s.seedInventory = seedInventory()
	for i := range s.seedInventory {
		s.seedInventoryIdx[s.seedInventory[i].ID] = i
	}

	s.seedOrders = seedOrders()
	for i := range s.seedOrders {
		s.seedOrderIdx[s.seedOrders[i].ID] = i
	}

	// MinCost keeps startup fast; these are throwaway demo credentials.
	hash, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	for _, user := range seedUsers() {
		user.PasswordHash = string(hash)
		stored := user
		s.users[userKey{role: user.Role, id: user.ID}] = &stored
		s.usersByEmail[user.Email] = &stored
	}
}
