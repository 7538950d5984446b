// Package http provides the HTTP handler layer for the booking API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/flight-search/flight-booking-system/internal/domain"
	"github.com/flight-search/flight-booking-system/internal/infrastructure/timeutil"
)

// RequestValidator adapts go-playground/validator to echo.Validator.
// Violations are reported as *domain.ValidationErrors keyed by JSON field path.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates a validator that names fields after their json tags.
func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &RequestValidator{validate: v}
}

// Validate implements echo.Validator.
func (rv *RequestValidator) Validate(i any) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
	}

	errs := &domain.ValidationErrors{}
	for _, fe := range fieldErrs {
		field := fieldPath(fe)
		errs.Add(field, fieldMessage(field, fe))
	}
	return errs
}

// fieldPath drops the struct name from the namespace ("SearchRequest.passengers.adult" -> "passengers.adult").
func fieldPath(fe validator.FieldError) string {
	_, path, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Field()
	}
	return path
}

func fieldMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "datetime":
		return field + " must be a date in YYYY-MM-DD format"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return field + " is invalid"
	}
}

// bindAndValidate binds the request body into req and runs the registered validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errBadBody
	}
	return c.Validate(req)
}

var errBadBody = errors.New("malformed request body")

// normalize applies request defaults and case folding before validation.
func (r *SearchRequest) normalize() {
	r.TripType = strings.ToLower(strings.TrimSpace(r.TripType))
	r.Class = strings.ToLower(strings.TrimSpace(r.Class))
	if r.Passengers == (PassengerCountsDTO{}) {
		r.Passengers.Adult = domain.DefaultPassengerCounts().Adult
	}
}

// toSearchForm converts a validated request into the domain form.
func toSearchForm(req *SearchRequest) (domain.SearchForm, error) {
	departure, err := timeutil.ParseOptionalISODate(req.DepartureDate)
	if err != nil {
		return domain.SearchForm{}, err
	}
	var ret *time.Time
	if req.TripType == "" || domain.TripType(req.TripType) == domain.TripRoundTrip {
		if ret, err = timeutil.ParseOptionalISODate(req.ReturnDate); err != nil {
			return domain.SearchForm{}, err
		}
	}

	counts := domain.PassengerCounts{
		Adult:    req.Passengers.Adult,
		Children: req.Passengers.Children,
		Infant:   req.Passengers.Infant,
	}

	return domain.SearchForm{
		TripType:      domain.TripType(req.TripType),
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: departure,
		ReturnDate:    ret,
		Passengers:    counts,
		CabinClass:    domain.CabinClass(req.Class),
	}, nil
}

// toPassengerUpdate converts a validated request into a domain update.
func toPassengerUpdate(req *PassengerUpdateRequest) domain.PassengerUpdate {
	return domain.PassengerUpdate{
		Title:          req.Title,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Gender:         req.Gender,
		DateOfBirth:    req.DateOfBirth,
		Country:        req.Country,
		Email:          req.Email,
		Phone:          req.Phone,
		PassportNumber: req.PassportNumber,
	}
}

// parseResultsQuery reads sort and filter options from the query string.
// Unknown sort values fall back to the defaults; malformed filter values are
// reported as validation errors.
func parseResultsQuery(c echo.Context) (domain.SortOptions, *domain.FilterOptions, error) {
	sortOpts := domain.SortOptions{
		Field: domain.ParseSortField(c.QueryParam("sortBy")),
		Order: domain.ParseSortOrder(c.QueryParam("order")),
		Mode:  domain.ParseCompareMode(c.QueryParam("mode")),
	}

	var (
		minPrice, maxPrice float64
		maxDuration        int
		refundable         bool
		stops, airlines    []string
	)
	err := echo.QueryParamsBinder(c).
		Float64("minPrice", &minPrice).
		Float64("maxPrice", &maxPrice).
		Int("maxDuration", &maxDuration).
		Bool("refundable", &refundable).
		Strings("stops", &stops).
		Strings("airlines", &airlines).
		BindErrors()

	errs := &domain.ValidationErrors{}
	for _, e := range err {
		var be *echo.BindingError
		if errors.As(e, &be) {
			errs.Add(be.Field, be.Field+" is invalid")
		}
	}

	filter := &domain.FilterOptions{RefundableOnly: refundable}
	if c.QueryParam("minPrice") != "" {
		filter.MinPrice = &minPrice
	}
	if c.QueryParam("maxPrice") != "" {
		filter.MaxPrice = &maxPrice
	}
	if c.QueryParam("maxDuration") != "" {
		filter.MaxDurationHours = &maxDuration
	}
	if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MinPrice > *filter.MaxPrice {
		errs.Add("minPrice", "minPrice cannot exceed maxPrice")
	}

	for _, s := range splitList(stops) {
		bucket := domain.StopsBucket(strings.ToLower(s))
		if !bucket.IsValid() {
			errs.Add("stops", "stops must be one of: direct, 1-stop, 2-stops")
			continue
		}
		filter.Stops = append(filter.Stops, bucket)
	}
	filter.Airlines = splitList(airlines)

	if errs.HasErrors() {
		return sortOpts, nil, errs
	}
	if filter.IsEmpty() {
		return sortOpts, nil, nil
	}
	return sortOpts, filter, nil
}

// splitList flattens repeated and comma-separated query values.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
