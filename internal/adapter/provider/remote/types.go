package remote

// flightPayload is one offer as returned by the search endpoint. Field names
// follow the endpoint's JSON.
type flightPayload struct {
	ID            string   `json:"id"`
	Airline       string   `json:"airline"`
	AirlineLogo   string   `json:"airlineLogo"`
	FlightNumber  string   `json:"flightNumber"`
	DepartureTime string   `json:"departureTime"`
	ArrivalTime   string   `json:"arrivalTime"`
	Duration      string   `json:"duration"`
	Stops         int      `json:"stops"`
	Price         *float64 `json:"price"`
	Currency      string   `json:"currency"`
	Origin        string   `json:"origin"`
	Destination   string   `json:"destination"`
	Aircraft      string   `json:"aircraft"`
	Refundable    bool     `json:"refundable"`
	Class         string   `json:"class"`
}

// envelopeResponse is the wrapped form some deployments answer with.
type envelopeResponse struct {
	Flights []flightPayload `json:"flights"`
}
