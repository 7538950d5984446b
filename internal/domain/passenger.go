package domain

import "strings"

// PassengerType classifies a traveller by age band.
type PassengerType string

// Supported passenger types.
const (
	PassengerAdult  PassengerType = "adult"
	PassengerChild  PassengerType = "child"
	PassengerInfant PassengerType = "infant"
)

// PassengerTypes lists the types in roster order.
var PassengerTypes = []PassengerType{PassengerAdult, PassengerChild, PassengerInfant}

// IsValid reports whether t is a known passenger type.
func (t PassengerType) IsValid() bool {
	switch t {
	case PassengerAdult, PassengerChild, PassengerInfant:
		return true
	default:
		return false
	}
}

// MinCount is the lowest seat count allowed for the type.
func (t PassengerType) MinCount() int {
	if t == PassengerAdult {
		return 1
	}
	return 0
}

// Label returns the capitalized type name used in messages ("Adult").
func (t PassengerType) Label() string {
	s := string(t)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// PassengerInfo is one traveller record of the roster.
type PassengerInfo struct {
	// ID is stable for the lifetime of the roster ("adult-0", "child-1", ...)
	ID   string        `json:"id"`
	Type PassengerType `json:"type"`

	Title       string `json:"title"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Gender      string `json:"gender"`
	DateOfBirth string `json:"dateOfBirth"`
	Country     string `json:"country"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`

	// PassportNumber is only carried by adults.
	PassportNumber *string `json:"passportNumber,omitempty"`
}

// Passport returns the passport number or "" when none is set.
func (p PassengerInfo) Passport() string {
	if p.PassportNumber == nil {
		return ""
	}
	return *p.PassportNumber
}

// PassengerUpdate is a partial set of passenger fields; nil fields are left untouched.
type PassengerUpdate struct {
	Title          *string `json:"title,omitempty"`
	FirstName      *string `json:"firstName,omitempty"`
	LastName       *string `json:"lastName,omitempty"`
	Gender         *string `json:"gender,omitempty"`
	DateOfBirth    *string `json:"dateOfBirth,omitempty"`
	Country        *string `json:"country,omitempty"`
	Email          *string `json:"email,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	PassportNumber *string `json:"passportNumber,omitempty"`
}

// Apply returns a copy of p with the non-nil fields of u merged in.
// ID and Type never change.
func (u PassengerUpdate) Apply(p PassengerInfo) PassengerInfo {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&p.Title, u.Title)
	set(&p.FirstName, u.FirstName)
	set(&p.LastName, u.LastName)
	set(&p.Gender, u.Gender)
	set(&p.DateOfBirth, u.DateOfBirth)
	set(&p.Country, u.Country)
	set(&p.Email, u.Email)
	set(&p.Phone, u.Phone)
	if u.PassportNumber != nil {
		passport := *u.PassportNumber
		p.PassportNumber = &passport
	} else if p.PassportNumber != nil {
		passport := *p.PassportNumber
		p.PassportNumber = &passport
	}
	return p
}

// Clone returns a deep copy of p.
func (p PassengerInfo) Clone() PassengerInfo {
	if p.PassportNumber != nil {
		passport := *p.PassportNumber
		p.PassportNumber = &passport
	}
	return p
}

// ClonePassengers deep-copies a roster. A nil roster stays nil.
func ClonePassengers(in []PassengerInfo) []PassengerInfo {
	if in == nil {
		return nil
	}
	out := make([]PassengerInfo, len(in))
	for i, p := range in {
		out[i] = p.Clone()
	}
	return out
}
