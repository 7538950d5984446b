package domain

// Airport is an entry of the airport picker.
type Airport struct {
	Code string `json:"code"`
	Name string `json:"name"`
	City string `json:"city"`
}

// Airports is the catalogue offered by the search form. It is informational;
// search input is not restricted to it.
var Airports = []Airport{
	{Code: "DAC", Name: "Dhaka", City: "Dhaka, Bangladesh"},
	{Code: "DXB", Name: "Dubai", City: "Dubai, UAE"},
	{Code: "LHR", Name: "London Heathrow", City: "London, UK"},
	{Code: "JFK", Name: "John F. Kennedy", City: "New York, USA"},
	{Code: "BKK", Name: "Bangkok", City: "Bangkok, Thailand"},
	{Code: "SIN", Name: "Singapore", City: "Singapore"},
	{Code: "KUL", Name: "Kuala Lumpur", City: "Kuala Lumpur, Malaysia"},
	{Code: "CGP", Name: "Chittagong", City: "Chittagong, Bangladesh"},
}

// LookupAirport returns the catalogue entry for code.
func LookupAirport(code string) (Airport, bool) {
	for _, a := range Airports {
		if a.Code == code {
			return a, true
		}
	}
	return Airport{}, false
}
