package kroger

import (
	"bytes"
	"encoding/json"
	"strconv"
)

type productsResponse struct {
	Data []Product `json:"data"`
}

// Product is one entry of the Products API search response.
type Product struct {
	ProductID          string              `json:"productId"`
	UPC                string              `json:"upc"`
	Brand              string              `json:"brand"`
	Description        string              `json:"description"`
	ProductDescription *ProductDescription `json:"productDescription,omitempty"`
	Items              []Item              `json:"items"`
}

// ProductDescription is the nested description some Products API
// responses use instead of the top-level field.
type ProductDescription struct {
	Description string `json:"description"`
}

// Item is a sellable line item of a Product.
type Item struct {
	ItemID      string       `json:"itemId"`
	Size        string       `json:"size"`
	Price       *Price       `json:"price,omitempty"`
	Inventory   *Inventory   `json:"inventory,omitempty"`
	Fulfillment *Fulfillment `json:"fulfillment,omitempty"`
}

// Price holds the per-location price of an Item. Either field may be
// missing or zero when the location has no live price.
type Price struct {
	Regular  *float64 `json:"regular,omitempty"`
	Promo    *float64 `json:"promo,omitempty"`
	Currency string   `json:"currency,omitempty"`
}

// Inventory holds the stock level at the queried location.
type Inventory struct {
	StockLevel string `json:"stockLevel"`
}

// Fulfillment lists the channels through which an Item can be bought.
type Fulfillment struct {
	Curbside   bool `json:"curbside"`
	Delivery   bool `json:"delivery"`
	InStore    bool `json:"inStore"`
	ShipToHome bool `json:"shipToHome"`
}

type locationsResponse struct {
	Data []Location `json:"data"`
}

// Location is one entry of the Locations API response.
type Location struct {
	LocationID string          `json:"locationId"`
	Chain      string          `json:"chain"`
	Name       string          `json:"name"`
	Phone      string          `json:"phone"`
	Address    LocationAddress `json:"address"`
	Distance   *flexFloat      `json:"distance,omitempty"`
}

// LocationAddress is the postal address of a Location.
type LocationAddress struct {
	AddressLine1 string `json:"addressLine1"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
}

// flexFloat accepts a JSON number or a numeric string. Anything else
// decodes as invalid rather than failing the whole response.
type flexFloat struct {
	value float64
	valid bool
}

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}

	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		f.value, f.valid = n, true
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return nil
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		f.value, f.valid = n, true
	}
	return nil
}
