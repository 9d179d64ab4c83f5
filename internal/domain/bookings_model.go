package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case BookingPending, BookingConfirmed, BookingCancelled:
		return BookingStatus(s), true
	default:
		return "", false
	}
}

type ServiceType string

const (
	ServiceAccommodation ServiceType = "accommodation"
	ServiceSpa           ServiceType = "spa"
	ServiceDining        ServiceType = "dining"
	ServiceEvents        ServiceType = "events"
	ServiceWedding       ServiceType = "wedding"
	ServiceConcierge     ServiceType = "concierge"
)

var serviceLabels = map[ServiceType]string{
	ServiceAccommodation: "Hotel Accommodation",
	ServiceSpa:           "Spa & Wellness Services",
	ServiceDining:        "Fine Dining Experience",
	ServiceEvents:        "Events & Meetings",
	ServiceWedding:       "Wedding Services",
	ServiceConcierge:     "Concierge Services",
}

// ServiceTypes lists the bookable services in display order.
func ServiceTypes() []ServiceType {
	return []ServiceType{
		ServiceAccommodation,
		ServiceSpa,
		ServiceDining,
		ServiceEvents,
		ServiceWedding,
		ServiceConcierge,
	}
}

func ParseServiceType(s string) (ServiceType, bool) {
	st := ServiceType(strings.TrimSpace(s))
	if _, ok := serviceLabels[st]; ok {
		return st, true
	}
	return "", false
}

// Label returns the display name, or the raw value for unknown services.
func (s ServiceType) Label() string {
	if label, ok := serviceLabels[s]; ok {
		return label
	}
	return string(s)
}

// GuestCount accepts a JSON number or a numeric string. Anything else decodes
// to zero so the range rule reports it instead of the JSON decoder.
type GuestCount int

func (g *GuestCount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*g = 0
		return nil
	}

	var raw string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			*g = 0
			return nil
		}
	} else {
		raw = string(data)
	}

	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		*g = 0
		return nil
	}
	*g = GuestCount(n)
	return nil
}

// FormString holds a text field from the booking form. A value of any other
// JSON type decodes to the empty string so the field's own rule reports it.
type FormString string

func (f *FormString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*f = ""
		return nil
	}
	*f = FormString(s)
	return nil
}

// FormBool holds a checkbox from the booking form. Only a JSON true counts as
// checked; strings, numbers and null decode to false.
type FormBool bool

func (f *FormBool) UnmarshalJSON(data []byte) error {
	*f = FormBool(bytes.Equal(bytes.TrimSpace(data), []byte("true")))
	return nil
}

// BookingRequest is the inquiry as submitted by the booking form.
type BookingRequest struct {
	FullName        FormString `json:"fullName" validate:"full_name"`
	Email           FormString `json:"email" validate:"contact_email"`
	Phone           FormString `json:"phone" validate:"contact_phone"`
	CheckInDate     FormString `json:"checkInDate"`
	CheckOutDate    FormString `json:"checkOutDate"`
	PreferredTime   FormString `json:"preferredTime"`
	ServiceType     FormString `json:"serviceType" validate:"required,service_type"`
	NumberOfGuests  GuestCount `json:"numberOfGuests" validate:"min=1,max=20"`
	SpecialRequests FormString `json:"specialRequests"`
	AgreeToTerms    FormBool   `json:"agreeToTerms" validate:"required"`
}

// Booking is an accepted, sanitized inquiry.
type Booking struct {
	ID              string        `json:"id"`
	FullName        string        `json:"fullName"`
	Email           string        `json:"email"`
	Phone           string        `json:"phone"`
	CheckInDate     string        `json:"checkInDate"`
	CheckOutDate    string        `json:"checkOutDate"`
	PreferredTime   string        `json:"preferredTime"`
	ServiceType     ServiceType   `json:"serviceType"`
	NumberOfGuests  int           `json:"numberOfGuests"`
	SpecialRequests string        `json:"specialRequests"`
	AgreeToTerms    bool          `json:"agreeToTerms"`
	Status          BookingStatus `json:"status"`
	CreatedAt       time.Time     `json:"createdAt"`
}

// Business Rules
const (
	MinGuests   = 1
	MaxGuests   = 20
	MinNameLen  = 2
	DateLayout  = "2006-01-02"
	DisplayDate = "January 2, 2006"
)
