package usecase

import (
	"fmt"
	"strings"

	"github.com/flight-search/flight-booking-system/internal/domain"
)

// PrimaryContactEmail seeds the email of the first adult.
const PrimaryContactEmail = "guest@example.com"

// BuildRoster creates one empty passenger record per seat, adults first, then
// children, then infants. Ids are "<type>-<index within type>".
func BuildRoster(counts domain.PassengerCounts) []domain.PassengerInfo {
	roster := make([]domain.PassengerInfo, 0, max(counts.Total(), 0))

	for _, t := range domain.PassengerTypes {
		for i := 0; i < counts.Of(t); i++ {
			p := domain.PassengerInfo{
				ID:   fmt.Sprintf("%s-%d", t, i),
				Type: t,
			}
			if t == domain.PassengerAdult {
				passport := ""
				p.PassportNumber = &passport
				if i == 0 {
					p.Email = PrimaryContactEmail
				}
			}
			roster = append(roster, p)
		}
	}

	return roster
}

// UpdatePassenger merges update into the passenger with the given id and
// returns the new roster. The input roster is not modified.
func UpdatePassenger(roster []domain.PassengerInfo, id string, update domain.PassengerUpdate) ([]domain.PassengerInfo, error) {
	out := domain.ClonePassengers(roster)
	for i := range out {
		if out[i].ID != id {
			continue
		}
		if update.PassportNumber != nil && out[i].Type != domain.PassengerAdult {
			return nil, fmt.Errorf("%w: passport number only applies to adults", domain.ErrInvalidRequest)
		}
		out[i] = update.Apply(out[i])
		return out, nil
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrPassengerNotFound, id)
}

// requiredField is a mandatory passenger field with its display name.
type requiredField struct {
	label string
	value func(domain.PassengerInfo) string
}

var commonRequiredFields = []requiredField{
	{label: "Title", value: func(p domain.PassengerInfo) string { return p.Title }},
	{label: "First name", value: func(p domain.PassengerInfo) string { return p.FirstName }},
	{label: "Last name", value: func(p domain.PassengerInfo) string { return p.LastName }},
	{label: "Gender", value: func(p domain.PassengerInfo) string { return p.Gender }},
	{label: "Date of birth", value: func(p domain.PassengerInfo) string { return p.DateOfBirth }},
	{label: "Country", value: func(p domain.PassengerInfo) string { return p.Country }},
}

// ValidateRoster returns one message per missing mandatory field, in roster
// order. Every passenger needs title, names, gender, date of birth and
// country; the passenger at position 0 also needs an email and every adult a
// passport number. Messages read "<Type> <n>: <Field> is required" where n
// counts passengers of the same type from 1.
func ValidateRoster(roster []domain.PassengerInfo) []string {
	var errs []string
	positions := make(map[domain.PassengerType]int, len(domain.PassengerTypes))

	for i, p := range roster {
		positions[p.Type]++
		prefix := fmt.Sprintf("%s %d", p.Type.Label(), positions[p.Type])
		missing := func(field string) {
			errs = append(errs, fmt.Sprintf("%s: %s is required", prefix, field))
		}

		for _, f := range commonRequiredFields {
			if isBlank(f.value(p)) {
				missing(f.label)
			}
		}
		if i == 0 && isBlank(p.Email) {
			missing("Email")
		}
		if p.Type == domain.PassengerAdult && isBlank(p.Passport()) {
			missing("Passport number")
		}
	}

	return errs
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
