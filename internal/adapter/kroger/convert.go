package kroger

import (
	"strings"

	domain "github.com/donaldgifford/grocery-prices/pkg/types"
)

// ToPriceRecords converts Products API entries into price records, one per
// product, using each product's first line item.
func ToPriceRecords(products []Product) []domain.PriceRecord {
	records := make([]domain.PriceRecord, 0, len(products))
	for i := range products {
		records = append(records, toPriceRecord(&products[i]))
	}
	return records
}

func toPriceRecord(p *Product) domain.PriceRecord {
	r := domain.PriceRecord{
		Vendor:   domain.VendorKroger,
		ItemName: productName(p),
		Currency: domain.DefaultCurrency,
	}

	if len(p.Items) == 0 {
		return r
	}
	item := &p.Items[0]

	r.UnitLabel = domain.OptionalString(item.Size)

	if item.Price != nil {
		r.RegularPrice = domain.MoneyFromFloat(item.Price.Regular)
		r.PromoPrice = domain.MoneyFromFloat(item.Price.Promo)
		if c := strings.TrimSpace(item.Price.Currency); c != "" {
			r.Currency = strings.ToUpper(c)
		}
	}

	r.Availability = availability(item)
	return r
}

func productName(p *Product) string {
	if p.Description != "" {
		return p.Description
	}
	if p.ProductDescription != nil {
		return p.ProductDescription.Description
	}
	return ""
}

// availability prefers the location stock level and falls back to
// fulfillment channels. Neither present means unreported.
func availability(item *Item) *domain.AvailabilityStatus {
	if item.Inventory != nil && item.Inventory.StockLevel != "" {
		return domain.ParseAvailability(item.Inventory.StockLevel)
	}
	if item.Fulfillment == nil {
		return nil
	}

	f := item.Fulfillment
	s := domain.AvailabilityOutOfStock
	if f.InStore || f.Curbside || f.Delivery || f.ShipToHome {
		s = domain.AvailabilityInStock
	}
	return &s
}

// ToLocationRecords converts Locations API entries, preserving vendor order.
func ToLocationRecords(locations []Location) []domain.LocationRecord {
	records := make([]domain.LocationRecord, 0, len(locations))
	for i := range locations {
		l := &locations[i]

		rec := domain.LocationRecord{
			Vendor:     domain.VendorKroger,
			LocationID: l.LocationID,
			Name:       l.Name,
			Chain:      l.Chain,
			Phone:      l.Phone,
			Address: domain.Address{
				Line1:   l.Address.AddressLine1,
				City:    l.Address.City,
				State:   l.Address.State,
				ZipCode: l.Address.ZipCode,
			},
		}
		if l.Distance != nil && l.Distance.valid {
			d := l.Distance.value
			rec.DistanceMiles = &d
		}

		records = append(records, rec)
	}
	return records
}
