package walmart

type priceAvailabilityRequest struct {
	OfferIDs []string `json:"offerIds"`
	ZipCode  string   `json:"zipCode,omitempty"`
}

type priceAvailabilityResponse struct {
	Items []Item `json:"items"`
}

// Item is one offer of the price-availability response.
type Item struct {
	OfferID            string        `json:"offerId"`
	ItemName           string        `json:"itemName"`
	UnitOfMeasure      string        `json:"unitOfMeasure"`
	CurrentPrice       *CurrentPrice `json:"currentPrice,omitempty"`
	AvailabilityStatus string        `json:"availabilityStatus"`
}

// CurrentPrice holds the live price of an offer.
type CurrentPrice struct {
	CurrentValue *Amount `json:"currentValue,omitempty"`
	UnitValue    *Amount `json:"unitValue,omitempty"`
	CurrencyCode string  `json:"currencyCode"`
}

// Amount is a monetary value as Walmart encodes it.
type Amount struct {
	CurrencyAmount *float64 `json:"currencyAmount,omitempty"`
}
