package booking

import (
	"errors"
	"reflect"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/diagnosis/luxehaven/internal/domain"
	"github.com/diagnosis/luxehaven/internal/utils"
)

// FieldErrors maps a request field (JSON name) to a user-facing message.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+fe[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

const (
	msgFullName      = "Full name is required and must be at least 2 characters"
	msgEmail         = "Valid email address is required"
	msgPhone         = "Valid phone number is required"
	msgCheckIn       = "Valid check-in date is required"
	msgCheckOut      = "Valid check-out date is required"
	msgDateRange     = "Check-out date must be after check-in date"
	msgServiceType   = "Service type is required"
	msgGuests        = "Number of guests must be between 1 and 20"
	msgAgreeToTerms  = "You must agree to the terms and conditions"
	msgServiceChoice = "Service type must be one of: "
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "full_name", func(fl validator.FieldLevel) bool {
		return utf8.RuneCountInString(utils.StripMarkup(fl.Field().String())) >= domain.MinNameLen
	})
	mustRegister(v, "contact_email", func(fl validator.FieldLevel) bool {
		return utils.IsValidEmail(fl.Field().String())
	})
	mustRegister(v, "contact_phone", func(fl validator.FieldLevel) bool {
		return utils.IsValidPhone(fl.Field().String())
	})
	mustRegister(v, "service_type", func(fl validator.FieldLevel) bool {
		_, ok := domain.ParseServiceType(fl.Field().String())
		return ok
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// Validate checks every field of req and returns the sanitized booking, or
// FieldErrors holding all violations. now decides what "today" is. The
// returned booking carries no id.
func Validate(req domain.BookingRequest, now time.Time) (domain.Booking, error) {
	errs := FieldErrors{}

	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return domain.Booking{}, err
		}
		for _, fe := range verrs {
			errs[fe.Field()] = messageFor(fe)
		}
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	checkIn, inOK := parseDate(string(req.CheckInDate), now.Location())
	checkOut, outOK := parseDate(string(req.CheckOutDate), now.Location())

	if !inOK || checkIn.Before(today) {
		errs["checkInDate"] = msgCheckIn
	}
	if !outOK || checkOut.Before(today) {
		errs["checkOutDate"] = msgCheckOut
	}
	if inOK && outOK && !checkOut.After(checkIn) {
		errs["checkOutDate"] = msgDateRange
	}

	if len(errs) > 0 {
		return domain.Booking{}, errs
	}

	st, _ := domain.ParseServiceType(string(req.ServiceType))
	return domain.Booking{
		FullName:        utils.StripMarkup(string(req.FullName)),
		Email:           utils.NormalizeEmail(string(req.Email)),
		Phone:           utils.NormalizeString(string(req.Phone)),
		CheckInDate:     strings.TrimSpace(string(req.CheckInDate)),
		CheckOutDate:    strings.TrimSpace(string(req.CheckOutDate)),
		PreferredTime:   utils.StripMarkup(string(req.PreferredTime)),
		ServiceType:     st,
		NumberOfGuests:  int(req.NumberOfGuests),
		SpecialRequests: utils.StripMarkup(string(req.SpecialRequests)),
		AgreeToTerms:    bool(req.AgreeToTerms),
		Status:          domain.BookingPending,
	}, nil
}

func messageFor(fe validator.FieldError) string {
	switch fe.Field() {
	case "fullName":
		return msgFullName
	case "email":
		return msgEmail
	case "phone":
		return msgPhone
	case "serviceType":
		if fe.Tag() == "required" {
			return msgServiceType
		}
		return msgServiceChoice + serviceChoices()
	case "numberOfGuests":
		return msgGuests
	case "agreeToTerms":
		return msgAgreeToTerms
	default:
		return "Invalid value"
	}
}

func serviceChoices() string {
	types := domain.ServiceTypes()
	names := make([]string, len(types))
	for i, st := range types {
		names[i] = string(st)
	}
	return strings.Join(names, ", ")
}

// parseDate accepts a calendar date or an RFC 3339 timestamp.
func parseDate(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.ParseInLocation(domain.DateLayout, s, loc); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(loc), true
	}
	return time.Time{}, false
}
