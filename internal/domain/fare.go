package domain

// FareLine is the price of one passenger-type block.
type FareLine struct {
	Type  PassengerType `json:"type"`
	Count int           `json:"count"`

	// UnitPrice is the fare per passenger of this type
	UnitPrice float64 `json:"unitPrice"`

	// Amount is UnitPrice x Count
	Amount float64 `json:"amount"`

	// Tax is the tax charged on Amount
	Tax float64 `json:"tax"`
}

// FareSummary is the price breakdown of a booking. All amounts are rounded
// to two decimals.
type FareSummary struct {
	BasePrice float64 `json:"basePrice"`
	Currency  string  `json:"currency"`

	// Lines holds one entry per passenger type with at least one seat
	Lines []FareLine `json:"lines"`

	Subtotal  float64 `json:"subtotal"`
	TaxAmount float64 `json:"taxAmount"`

	// DiscountAmount is the promotional discount line; it is shown to the
	// user but not subtracted from GrossTotal
	DiscountAmount float64 `json:"discountAmount"`

	// GrossTotal is Subtotal plus TaxAmount
	GrossTotal float64 `json:"grossTotal"`

	// OfferTotal is the headline payable amount
	OfferTotal float64 `json:"offerTotal"`

	TotalPassengers int `json:"totalPassengers"`
}

// LineTaxTotal returns the sum of the per-block tax lines.
func (f FareSummary) LineTaxTotal() float64 {
	var total float64
	for _, l := range f.Lines {
		total += l.Tax
	}
	return total
}

// BookingSummary is everything the price panel needs.
type BookingSummary struct {
	Flight       FlightResult    `json:"flight"`
	SearchParams SearchParams    `json:"searchParams"`
	Fare         FareSummary     `json:"fare"`
	Passengers   []PassengerInfo `json:"passengers"`
	Step         string          `json:"step"`
}
