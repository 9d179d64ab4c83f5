package booking

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/diagnosis/luxehaven/internal/domain"
)

var fixedNow = time.Date(2026, 10, 18, 15, 30, 0, 0, time.UTC)

func validRequest() domain.BookingRequest {
	return domain.BookingRequest{
		FullName:       "Jane Doe",
		Email:          "jane@example.com",
		Phone:          "+15551234567",
		CheckInDate:    "2026-10-19",
		CheckOutDate:   "2026-10-21",
		ServiceType:    "spa",
		NumberOfGuests: 2,
		AgreeToTerms:   true,
	}
}

func fieldErrors(t *testing.T, err error) FieldErrors {
	t.Helper()
	var fe FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	return fe
}

func TestValidate_Accepts(t *testing.T) {
	b, err := Validate(validRequest(), fixedNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.ID != "" {
		t.Fatalf("validator must not assign ids, got %q", b.ID)
	}
	if b.ServiceType != domain.ServiceSpa || b.NumberOfGuests != 2 || b.Status != domain.BookingPending {
		t.Fatalf("unexpected booking %+v", b)
	}
}

func TestValidate_TodayIsAllowed(t *testing.T) {
	req := validRequest()
	req.CheckInDate = "2026-10-18"
	if _, err := Validate(req, fixedNow); err != nil {
		t.Fatalf("check-in today should pass: %v", err)
	}
}

func TestValidate_MissingTermsAlwaysReported(t *testing.T) {
	req := validRequest()
	req.AgreeToTerms = false
	_, err := Validate(req, fixedNow)
	fe := fieldErrors(t, err)
	if fe["agreeToTerms"] == "" {
		t.Fatalf("expected agreeToTerms error, got %v", fe)
	}

	empty := domain.BookingRequest{}
	fe = fieldErrors(t, func() error { _, err := Validate(empty, fixedNow); return err }())
	if fe["agreeToTerms"] == "" {
		t.Fatalf("expected agreeToTerms error on empty request, got %v", fe)
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	_, err := Validate(domain.BookingRequest{}, fixedNow)
	fe := fieldErrors(t, err)

	for _, field := range []string{"fullName", "email", "phone", "checkInDate", "checkOutDate", "serviceType", "numberOfGuests", "agreeToTerms"} {
		if fe[field] == "" {
			t.Errorf("expected error for %s", field)
		}
	}
	if fe["serviceType"] != msgServiceType {
		t.Errorf("unexpected serviceType message %q", fe["serviceType"])
	}
}

func TestValidate_CheckOutNotAfterCheckIn(t *testing.T) {
	for _, out := range []domain.FormString{"2026-10-19", "2026-10-18"} {
		req := validRequest()
		req.CheckOutDate = out
		fe := fieldErrors(t, func() error { _, err := Validate(req, fixedNow); return err }())
		if fe["checkOutDate"] != msgDateRange {
			t.Errorf("checkOut %s: expected range error, got %q", out, fe["checkOutDate"])
		}
	}
}

func TestValidate_PastAndMalformedDates(t *testing.T) {
	req := validRequest()
	req.CheckInDate = "2026-10-17"
	req.CheckOutDate = "someday"
	fe := fieldErrors(t, func() error { _, err := Validate(req, fixedNow); return err }())

	if fe["checkInDate"] != msgCheckIn {
		t.Errorf("expected check-in error, got %q", fe["checkInDate"])
	}
	if fe["checkOutDate"] != msgCheckOut {
		t.Errorf("expected check-out error, got %q", fe["checkOutDate"])
	}
}

func TestValidate_RFC3339Dates(t *testing.T) {
	req := validRequest()
	req.CheckInDate = "2026-10-19T14:00:00Z"
	req.CheckOutDate = "2026-10-20T11:00:00Z"
	if _, err := Validate(req, fixedNow); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_GuestBoundaries(t *testing.T) {
	tests := []struct {
		guests domain.GuestCount
		ok     bool
	}{
		{0, false},
		{1, true},
		{20, true},
		{21, false},
		{-3, false},
	}
	for _, tt := range tests {
		req := validRequest()
		req.NumberOfGuests = tt.guests
		_, err := Validate(req, fixedNow)
		if tt.ok && err != nil {
			t.Errorf("guests=%d: unexpected error %v", tt.guests, err)
		}
		if !tt.ok {
			fe := fieldErrors(t, err)
			if fe["numberOfGuests"] != msgGuests {
				t.Errorf("guests=%d: expected range error, got %v", tt.guests, fe)
			}
		}
	}
}

func TestValidate_FieldRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.BookingRequest)
		field  string
	}{
		{"blank name", func(r *domain.BookingRequest) { r.FullName = "   " }, "fullName"},
		{"one letter name", func(r *domain.BookingRequest) { r.FullName = " J " }, "fullName"},
		{"markup only name", func(r *domain.BookingRequest) { r.FullName = "<>" }, "fullName"},
		{"name left with one letter", func(r *domain.BookingRequest) { r.FullName = "<script>x</script>J" }, "fullName"},
		{"bad email", func(r *domain.BookingRequest) { r.Email = "not-an-email" }, "email"},
		{"bad phone", func(r *domain.BookingRequest) { r.Phone = "call me" }, "phone"},
		{"leading zero phone", func(r *domain.BookingRequest) { r.Phone = "0555123" }, "phone"},
		{"unknown service", func(r *domain.BookingRequest) { r.ServiceType = "casino" }, "serviceType"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			_, err := Validate(req, fixedNow)
			fe := fieldErrors(t, err)
			if fe[tt.field] == "" {
				t.Fatalf("expected error for %s, got %v", tt.field, fe)
			}
			if len(fe) != 1 {
				t.Fatalf("expected exactly one error, got %v", fe)
			}
		})
	}
}

func TestValidate_Sanitizes(t *testing.T) {
	req := validRequest()
	req.FullName = "  Jane <script>alert(1)</script>Doe "
	req.Email = " Jane@Example.com "
	req.Phone = " (555) 123-4567 "
	req.SpecialRequests = "<b>Sea view</b> please"
	req.PreferredTime = "<i>14:00</i>"

	b, err := Validate(req, fixedNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.FullName != "Jane Doe" {
		t.Errorf("fullName = %q", b.FullName)
	}
	if b.Email != "jane@example.com" {
		t.Errorf("email = %q", b.Email)
	}
	if b.Phone != "(555) 123-4567" {
		t.Errorf("phone = %q", b.Phone)
	}
	if b.SpecialRequests != "bSea view/b please" {
		t.Errorf("specialRequests = %q", b.SpecialRequests)
	}
	if b.PreferredTime != "i14:00/i" {
		t.Errorf("preferredTime = %q", b.PreferredTime)
	}
}

func TestGuestCount_Unmarshal(t *testing.T) {
	tests := map[string]domain.GuestCount{
		`{"numberOfGuests": 4}`:     4,
		`{"numberOfGuests": "7"}`:   7,
		`{"numberOfGuests": "two"}`: 0,
		`{"numberOfGuests": 2.5}`:   0,
		`{"numberOfGuests": null}`:  0,
		`{}`:                        0,
	}
	for body, want := range tests {
		var req domain.BookingRequest
		if err := json.Unmarshal([]byte(body), &req); err != nil {
			t.Fatalf("%s: unexpected decode error %v", body, err)
		}
		if req.NumberOfGuests != want {
			t.Errorf("%s: got %d, want %d", body, req.NumberOfGuests, want)
		}
	}
}

func TestFormFields_WrongTypesDecodeToZero(t *testing.T) {
	body := `{
		"fullName": 12345,
		"email": {"address": "jane@example.com"},
		"phone": null,
		"serviceType": ["spa"],
		"agreeToTerms": "true"
	}`
	var req domain.BookingRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unexpected decode error %v", err)
	}
	if req.FullName != "" || req.Email != "" || req.Phone != "" || req.ServiceType != "" {
		t.Fatalf("expected empty text fields, got %+v", req)
	}
	if req.AgreeToTerms {
		t.Fatal("string \"true\" must not tick the terms box")
	}

	_, err := Validate(req, fixedNow)
	fe := fieldErrors(t, err)
	for _, field := range []string{"fullName", "email", "phone", "serviceType", "agreeToTerms"} {
		if fe[field] == "" {
			t.Errorf("expected %s error, got %v", field, fe)
		}
	}
	if fe["agreeToTerms"] != msgAgreeToTerms {
		t.Errorf("agreeToTerms = %q", fe["agreeToTerms"])
	}
}

func TestFormBool_OnlyTrueLiteralChecks(t *testing.T) {
	tests := map[string]domain.FormBool{
		`{"agreeToTerms": true}`:  true,
		`{"agreeToTerms": false}`: false,
		`{"agreeToTerms": 1}`:     false,
		`{"agreeToTerms": "yes"}`: false,
		`{"agreeToTerms": null}`:  false,
	}
	for body, want := range tests {
		var req domain.BookingRequest
		if err := json.Unmarshal([]byte(body), &req); err != nil {
			t.Fatalf("%s: unexpected decode error %v", body, err)
		}
		if req.AgreeToTerms != want {
			t.Errorf("%s: got %v, want %v", body, req.AgreeToTerms, want)
		}
	}
}

func TestFieldErrors_ErrorIsSorted(t *testing.T) {
	fe := FieldErrors{"phone": "p", "email": "e"}
	if got := fe.Error(); got != "validation failed: email: e; phone: p" {
		t.Fatalf("unexpected %q", got)
	}
}
