package walmart

import (
	"strings"

	"github.com/shopspring/decimal"

	domain "github.com/donaldgifford/grocery-prices/pkg/types"
)

// ToPriceRecords converts price-availability items. Items without a name
// take the queried term. Walmart reports real amounts, so a price of 0 is
// kept rather than treated as missing.
func ToPriceRecords(items []Item, term string) []domain.PriceRecord {
	records := make([]domain.PriceRecord, 0, len(items))
	for i := range items {
		it := &items[i]

		r := domain.PriceRecord{
			Vendor:       domain.VendorWalmart,
			ItemName:     it.ItemName,
			UnitLabel:    domain.OptionalString(it.UnitOfMeasure),
			Currency:     domain.DefaultCurrency,
			Availability: domain.ParseAvailability(it.AvailabilityStatus),
		}
		if strings.TrimSpace(r.ItemName) == "" {
			r.ItemName = term
		}

		if p := it.CurrentPrice; p != nil {
			r.RegularPrice = amount(p.CurrentValue)
			r.UnitPrice = amount(p.UnitValue)
			if c := strings.TrimSpace(p.CurrencyCode); c != "" {
				r.Currency = strings.ToUpper(c)
			}
		}

		records = append(records, r)
	}
	return records
}

func amount(a *Amount) *decimal.Decimal {
	if a == nil {
		return nil
	}
	return domain.MoneyFromAmount(a.CurrencyAmount)
}
