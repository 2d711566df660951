package dto

import "github.com/shopspring/decimal"

// AddItemRequest describes a new vendor listing. Dates use YYYY-MM-DD.
type AddItemRequest struct {
	Type          string          `json:"type"`
	Caliber       string          `json:"caliber"`
	QuantityBoxes int             `json:"quantityBoxes"`
	PricePerBox   decimal.Decimal `json:"pricePerBox"`
	HarvestDate   string          `json:"harvestDate"`
}

// InventoryItemResponse is the wire view of a listing.
type InventoryItemResponse struct {
	ID            string          `json:"id"`
	VendorID      string          `json:"vendorId"`
	VendorName    string          `json:"vendorName"`
	Type          string          `json:"type"`
	Caliber       string          `json:"caliber"`
	QuantityBoxes int             `json:"quantityBoxes"`
	PricePerBox   decimal.Decimal `json:"pricePerBox"`
	Location      string          `json:"location"`
	HarvestDate   string          `json:"harvestDate"`
}
