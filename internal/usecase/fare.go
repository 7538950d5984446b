package usecase

import (
	"math"

	"github.com/flight-search/flight-booking-system/internal/domain"
)

// Fare multipliers and rates.
const (
	// AdultFareRate is the share of the base fare paid per adult.
	AdultFareRate = 1.0

	// ChildFareRate is the share of the base fare paid per child (25% off).
	ChildFareRate = 0.75

	// InfantFareRate is the share of the base fare paid per infant (90% off).
	InfantFareRate = 0.10

	// TaxRate is applied to the subtotal and to every passenger block.
	TaxRate = 0.12

	// DisplayDiscountRate is the share of the base fare shown as the discount line.
	DisplayDiscountRate = 0.10

	// OfferRate turns the gross total into the offer total.
	OfferRate = 0.95
)

// fareRates maps passenger types to their share of the base fare.
var fareRates = map[domain.PassengerType]float64{
	domain.PassengerAdult:  AdultFareRate,
	domain.PassengerChild:  ChildFareRate,
	domain.PassengerInfant: InfantFareRate,
}

// ComputeFare derives the fare breakdown from the base price of the selected
// offer and the passenger counts.
//
//	subtotal = base*adults + base*0.75*children + base*0.10*infants
//	tax      = subtotal*0.12            (also per block in Lines)
//	discount = base*0.10                (display only)
//	gross    = subtotal + tax
//	offer    = gross*0.95
//
// Intermediate values keep full precision; only the returned amounts are
// rounded to cents. The per-block tax lines always sum to the total tax: any
// rounding remainder is carried by the last line.
func ComputeFare(basePrice float64, counts domain.PassengerCounts) domain.FareSummary {
	var subtotal float64
	lines := make([]domain.FareLine, 0, len(domain.PassengerTypes))

	for _, t := range domain.PassengerTypes {
		count := counts.Of(t)
		unit := basePrice * fareRates[t]
		amount := unit * float64(count)
		subtotal += amount

		if count <= 0 {
			continue
		}
		lines = append(lines, domain.FareLine{
			Type:      t,
			Count:     count,
			UnitPrice: RoundMoney(unit),
			Amount:    RoundMoney(amount),
			Tax:       RoundMoney(amount * TaxRate),
		})
	}

	tax := subtotal * TaxRate
	gross := subtotal + tax
	reconcileLineTax(lines, RoundMoney(tax))

	return domain.FareSummary{
		BasePrice:       RoundMoney(basePrice),
		Lines:           lines,
		Subtotal:        RoundMoney(subtotal),
		TaxAmount:       RoundMoney(tax),
		DiscountAmount:  RoundMoney(basePrice * DisplayDiscountRate),
		GrossTotal:      RoundMoney(gross),
		OfferTotal:      RoundMoney(gross * OfferRate),
		TotalPassengers: counts.Total(),
	}
}

// reconcileLineTax moves the cent difference between the rounded lines and
// the rounded total onto the last line.
func reconcileLineTax(lines []domain.FareLine, total float64) {
	if len(lines) == 0 {
		return
	}
	var sum int64
	for _, l := range lines {
		sum += toCents(l.Tax)
	}
	last := &lines[len(lines)-1]
	last.Tax = float64(toCents(last.Tax)+toCents(total)-sum) / 100
}

func toCents(x float64) int64 {
	return int64(math.Round(x * 100))
}

// RoundMoney rounds to two decimals, halves away from zero.
func RoundMoney(x float64) float64 {
	return math.Round(x*100) / 100
}
