package kroger

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/grocery-prices/pkg/types"
)

func ptr[T any](v T) *T { return &v }

func TestToPriceRecords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		product Product
		check   func(t *testing.T, r domain.PriceRecord)
	}{
		{
			name: "full price and promo",
			product: Product{
				Description: "Ribeye Steak",
				Items: []Item{{
					Size:      "1 lb",
					Price:     &Price{Regular: ptr(12.99), Promo: ptr(10.99)},
					Inventory: &Inventory{StockLevel: "HIGH"},
				}},
			},
			check: func(t *testing.T, r domain.PriceRecord) {
				t.Helper()
				assert.Equal(t, domain.VendorKroger, r.Vendor)
				assert.Equal(t, "Ribeye Steak", r.ItemName)
				require.NotNil(t, r.UnitLabel)
				assert.Equal(t, "1 lb", *r.UnitLabel)
				require.NotNil(t, r.RegularPrice)
				assert.Equal(t, "12.99", r.RegularPrice.String())
				require.NotNil(t, r.PromoPrice)
				assert.Equal(t, "10.99", r.PromoPrice.String())
				assert.Equal(t, "USD", r.Currency)
				require.NotNil(t, r.Availability)
				assert.Equal(t, domain.AvailabilityInStock, *r.Availability)
			},
		},
		{
			name: "zero promo and missing price map to nil",
			product: Product{
				Description: "Ground Beef",
				Items:       []Item{{Price: &Price{Promo: ptr(0.0)}}},
			},
			check: func(t *testing.T, r domain.PriceRecord) {
				t.Helper()
				assert.Nil(t, r.RegularPrice)
				assert.Nil(t, r.PromoPrice)
				assert.Nil(t, r.UnitLabel)
				assert.Nil(t, r.Availability)
			},
		},
		{
			name:    "no line items",
			product: Product{Description: "Mystery"},
			check: func(t *testing.T, r domain.PriceRecord) {
				t.Helper()
				assert.Equal(t, "Mystery", r.ItemName)
				assert.Nil(t, r.RegularPrice)
				assert.Equal(t, "USD", r.Currency)
			},
		},
		{
			name: "only first line item is used",
			product: Product{
				Description: "Eggs",
				Items: []Item{
					{Size: "12 ct", Price: &Price{Regular: ptr(3.49)}},
					{Size: "18 ct", Price: &Price{Regular: ptr(4.99)}},
				},
			},
			check: func(t *testing.T, r domain.PriceRecord) {
				t.Helper()
				assert.Equal(t, "12 ct", *r.UnitLabel)
				assert.Equal(t, "3.49", r.RegularPrice.String())
			},
		},
		{
			name: "nested description and fulfillment",
			product: Product{
				ProductDescription: &ProductDescription{Description: "Milk"},
				Items:              []Item{{Fulfillment: &Fulfillment{}}},
			},
			check: func(t *testing.T, r domain.PriceRecord) {
				t.Helper()
				assert.Equal(t, "Milk", r.ItemName)
				require.NotNil(t, r.Availability)
				assert.Equal(t, domain.AvailabilityOutOfStock, *r.Availability)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			records := ToPriceRecords([]Product{tt.product})
			require.Len(t, records, 1)
			tt.check(t, records[0])
		})
	}
}

func TestToPriceRecords_Empty(t *testing.T) {
	t.Parallel()

	records := ToPriceRecords(nil)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestPriceRecord_NullPricesSerialize(t *testing.T) {
	t.Parallel()

	records := ToPriceRecords([]Product{{Description: "Ribeye", Items: []Item{{}}}})
	data, err := json.Marshal(records[0])
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Contains(t, got, "regular_price")
	assert.Nil(t, got["regular_price"])
	assert.Nil(t, got["promo_price"])
}

func TestToLocationRecords_Distance(t *testing.T) {
	t.Parallel()

	raw := `{"data":[
		{"locationId":"62000115","chain":"KINGSOOPERS","name":"King Soopers - Academy","phone":"7195551234",
		 "address":{"addressLine1":"5050 N Academy Blvd","city":"Colorado Springs","state":"CO","zipCode":"80918"},
		 "distance":"2.4"},
		{"locationId":"62000120","name":"King Soopers - Powers",
		 "address":{"addressLine1":"3750 Bloomington St","city":"Colorado Springs","state":"CO","zipCode":"80922"},
		 "distance":3.75},
		{"locationId":"62000130","name":"King Soopers - Austin Bluffs","distance":"far"}
	]}`

	var resp locationsResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &resp))

	records := ToLocationRecords(resp.Data)
	require.Len(t, records, 3)

	assert.Equal(t, "62000115", records[0].LocationID)
	assert.Equal(t, "KINGSOOPERS", records[0].Chain)
	assert.Equal(t, "80918", records[0].Address.ZipCode)
	require.NotNil(t, records[0].DistanceMiles)
	assert.InDelta(t, 2.4, *records[0].DistanceMiles, 0.0001)

	require.NotNil(t, records[1].DistanceMiles)
	assert.InDelta(t, 3.75, *records[1].DistanceMiles, 0.0001)

	assert.Nil(t, records[2].DistanceMiles)
}
