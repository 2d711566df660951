package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// AvocadoType is a produce variety.
type AvocadoType string

const (
	TypeHass   AvocadoType = "Hass"
	TypeFuerte AvocadoType = "Fuerte"
	TypeBacon  AvocadoType = "Bacon"
	TypeZutano AvocadoType = "Zutano"
)

// AvocadoTypes lists every known variety.
var AvocadoTypes = []AvocadoType{TypeHass, TypeFuerte, TypeBacon, TypeZutano}

// Valid reports whether the type is a known variety.
func (t AvocadoType) Valid() bool {
	for _, known := range AvocadoTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Caliber is a sizing grade, treated as an opaque categorical value.
type Caliber string

// Calibers lists the grades tradable on the marketplace.
var Calibers = []Caliber{"48", "60", "70", "84"}

// Valid reports whether the caliber is a known grade.
func (c Caliber) Valid() bool {
	for _, known := range Calibers {
		if c == known {
			return true
		}
	}
	return false
}

// InventoryItem is a vendor listing. Items are owned by exactly one vendor and
// are never mutated in place; orders hold frozen copies.
type InventoryItem struct {
	ID            string
	VendorID      string
	VendorName    string
	Type          AvocadoType
	Caliber       Caliber
	QuantityBoxes int
	PricePerBox   decimal.Decimal
	Location      string
	HarvestDate   time.Time
}
