package domain

import "strings"

// SortField selects the attribute results are ordered by.
type SortField string

// Available sort fields.
const (
	// SortByPrice orders by base fare
	SortByPrice SortField = "price"

	// SortByDuration orders by block time
	SortByDuration SortField = "duration"

	// SortByDeparture orders by departure time
	SortByDeparture SortField = "departure"
)

// IsValid checks if the sort field is a valid value.
func (s SortField) IsValid() bool {
	switch s {
	case SortByPrice, SortByDuration, SortByDeparture:
		return true
	default:
		return false
	}
}

// SortOrder is ascending or descending.
type SortOrder string

// Sort orders.
const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// IsValid checks if the sort order is a valid value.
func (o SortOrder) IsValid() bool {
	return o == SortAsc || o == SortDesc
}

// CompareMode chooses how duration and departure values are compared.
type CompareMode string

const (
	// CompareExact compares full durations in minutes and departure times chronologically.
	CompareExact CompareMode = "exact"

	// CompareLegacy compares only the hour component of durations and departure
	// times as plain strings. Kept for clients that rely on that ordering.
	CompareLegacy CompareMode = "legacy"
)

// IsValid checks if the compare mode is a valid value.
func (m CompareMode) IsValid() bool {
	return m == CompareExact || m == CompareLegacy
}

// SortOptions describes how to order a result list.
type SortOptions struct {
	Field SortField
	Order SortOrder
	Mode  CompareMode
}

// DefaultSortOptions returns price ascending with exact comparisons.
func DefaultSortOptions() SortOptions {
	return SortOptions{Field: SortByPrice, Order: SortAsc, Mode: CompareExact}
}

// ParseSortField converts a string to a SortField, falling back to price.
func ParseSortField(s string) SortField {
	field := SortField(strings.ToLower(s))
	if field.IsValid() {
		return field
	}
	return SortByPrice
}

// ParseSortOrder converts a string to a SortOrder, falling back to ascending.
func ParseSortOrder(s string) SortOrder {
	order := SortOrder(strings.ToLower(s))
	if order.IsValid() {
		return order
	}
	return SortAsc
}

// ParseCompareMode converts a string to a CompareMode, falling back to exact.
func ParseCompareMode(s string) CompareMode {
	mode := CompareMode(strings.ToLower(s))
	if mode.IsValid() {
		return mode
	}
	return CompareExact
}

// StopsBucket groups offers by number of stops as in the filter sidebar.
type StopsBucket string

// Stop buckets.
const (
	StopsDirect  StopsBucket = "direct"
	StopsOne     StopsBucket = "1-stop"
	StopsTwoPlus StopsBucket = "2-stops"
)

// IsValid checks if the bucket is known.
func (b StopsBucket) IsValid() bool {
	switch b {
	case StopsDirect, StopsOne, StopsTwoPlus:
		return true
	default:
		return false
	}
}

// Contains reports whether a stop count falls into the bucket.
func (b StopsBucket) Contains(stops int) bool {
	switch b {
	case StopsDirect:
		return stops == 0
	case StopsOne:
		return stops == 1
	case StopsTwoPlus:
		return stops >= 2
	default:
		return false
	}
}

// FilterOptions are optional result filters. Nil or empty criteria do not filter.
type FilterOptions struct {
	// MinPrice and MaxPrice bound the base fare (inclusive)
	MinPrice *float64 `json:"minPrice,omitempty"`
	MaxPrice *float64 `json:"maxPrice,omitempty"`

	// Stops keeps offers falling into any of the listed buckets
	Stops []StopsBucket `json:"stops,omitempty"`

	// Airlines keeps offers whose airline name matches (case-insensitive)
	Airlines []string `json:"airlines,omitempty"`

	// MaxDurationHours drops offers longer than this many hours
	MaxDurationHours *int `json:"maxDurationHours,omitempty"`

	// RefundableOnly keeps refundable fares only
	RefundableOnly bool `json:"refundableOnly,omitempty"`
}

// IsEmpty reports whether no criterion is set.
func (f *FilterOptions) IsEmpty() bool {
	return f == nil || (f.MinPrice == nil && f.MaxPrice == nil && len(f.Stops) == 0 &&
		len(f.Airlines) == 0 && f.MaxDurationHours == nil && !f.RefundableOnly)
}

// MatchesFlight checks if an offer matches all the filter criteria.
func (f *FilterOptions) MatchesFlight(flight FlightResult) bool {
	if f == nil {
		return true
	}

	if f.MinPrice != nil && flight.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && flight.Price > *f.MaxPrice {
		return false
	}

	if len(f.Stops) > 0 {
		found := false
		for _, b := range f.Stops {
			if b.Contains(flight.Stops) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if len(f.Airlines) > 0 {
		found := false
		for _, name := range f.Airlines {
			if strings.EqualFold(strings.TrimSpace(name), flight.Airline) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if f.MaxDurationHours != nil && flight.DurationMinutes() > *f.MaxDurationHours*60 {
		return false
	}

	if f.RefundableOnly && !flight.Refundable {
		return false
	}

	return true
}
