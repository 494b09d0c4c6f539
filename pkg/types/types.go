// Package domain defines the core business types for grocery price lookups.
package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// VendorID identifies an external grocery vendor API.
type VendorID string

// Vendor ID constants.
const (
	VendorKroger  VendorID = "kroger"
	VendorWalmart VendorID = "walmart"
)

// DefaultCurrency is used when a vendor omits the currency code.
const DefaultCurrency = "USD"

// AvailabilityStatus is the normalized stock status reported by a vendor.
type AvailabilityStatus string

// Availability constants.
const (
	AvailabilityInStock    AvailabilityStatus = "in_stock"
	AvailabilityLimited    AvailabilityStatus = "limited"
	AvailabilityOutOfStock AvailabilityStatus = "out_of_stock"
	AvailabilityUnknown    AvailabilityStatus = "unknown"
)

// ParseAvailability maps a vendor stock string onto an AvailabilityStatus.
// Empty input returns nil because the vendor did not report availability.
func ParseAvailability(raw string) *AvailabilityStatus {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var s AvailabilityStatus
	switch strings.ToUpper(strings.ReplaceAll(raw, " ", "_")) {
	case "IN_STOCK", "AVAILABLE", "HIGH":
		s = AvailabilityInStock
	case "LOW", "LIMITED", "LIMITED_STOCK":
		s = AvailabilityLimited
	case "OUT_OF_STOCK", "TEMPORARILY_OUT_OF_STOCK", "NOT_AVAILABLE", "UNAVAILABLE":
		s = AvailabilityOutOfStock
	default:
		s = AvailabilityUnknown
	}
	return &s
}

// PriceRecord is one vendor's normalized answer for an item. Nil price
// fields mean the vendor matched the item but reported no live price.
type PriceRecord struct {
	Vendor       VendorID            `json:"vendor"`
	ItemName     string              `json:"item_name"`
	UnitLabel    *string             `json:"unit_label"`
	RegularPrice *decimal.Decimal    `json:"regular_price"`
	PromoPrice   *decimal.Decimal    `json:"promo_price"`
	UnitPrice    *decimal.Decimal    `json:"unit_price,omitempty"`
	Currency     string              `json:"currency"`
	Availability *AvailabilityStatus `json:"availability"`
}

// Address is a postal address attached to a vendor location.
type Address struct {
	Line1   string `json:"line1"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
}

// LocationRecord is a normalized store returned by a vendor's locator.
type LocationRecord struct {
	Vendor        VendorID `json:"vendor"`
	LocationID    string   `json:"location_id"`
	Name          string   `json:"name"`
	Chain         string   `json:"chain,omitempty"`
	Phone         string   `json:"phone,omitempty"`
	Address       Address  `json:"address"`
	DistanceMiles *float64 `json:"distance_miles"`
}

// MoneyFromFloat converts an optional vendor amount into Money. Nil and
// non-positive amounts return nil since vendors use 0 for "no price".
func MoneyFromFloat(v *float64) *decimal.Decimal {
	if v == nil || *v <= 0 {
		return nil
	}
	d := decimal.NewFromFloat(*v).Round(2)
	return &d
}

// MoneyFromAmount converts an optional vendor amount into Money. Only a
// missing amount is nil; a reported 0 stays 0.
func MoneyFromAmount(v *float64) *decimal.Decimal {
	if v == nil {
		return nil
	}
	d := decimal.NewFromFloat(*v).Round(2)
	return &d
}

// OptionalString returns nil for blank strings.
func OptionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// NormalizeItemName lowercases and trims an item name for lookups.
func NormalizeItemName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
