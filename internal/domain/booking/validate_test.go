package booking

import (
	"context"
	"testing"
	"time"

	"github.com/phukrit7171/appointment-booking-api/internal/httperr"
)

type fakeLookup struct {
	existsFn func(ctx context.Context, id uint) (bool, error)
}

func (f *fakeLookup) Exists(ctx context.Context, id uint) (bool, error) {
	if f.existsFn == nil {
		panic("Exists not configured")
	}
	return f.existsFn(ctx, id)
}

func allServicesExist() *fakeLookup {
	return &fakeLookup{existsFn: func(context.Context, uint) (bool, error) {
		return true, nil
	}}
}

func TestBookingRequestValidate(t *testing.T) {
	now := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	future := now.Add(2 * time.Hour)

	valid := BookingRequest{
		ClientName:  "Alice",
		ClientEmail: "alice@example.com",
		StartTime:   future,
		ServiceID:   1,
	}

	t.Run("valid request passes", func(t *testing.T) {
		if err := valid.Validate(context.Background(), now, allServicesExist()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("blank client name", func(t *testing.T) {
		r := valid
		r.ClientName = "   "
		err := r.Validate(context.Background(), now, allServicesExist())
		assertValidation(t, err, "client name")
	})

	t.Run("blank client email", func(t *testing.T) {
		r := valid
		r.ClientEmail = ""
		err := r.Validate(context.Background(), now, allServicesExist())
		assertValidation(t, err, "client email")
	})

	t.Run("email without at sign", func(t *testing.T) {
		r := valid
		r.ClientEmail = "invalid-email"
		err := r.Validate(context.Background(), now, allServicesExist())
		assertValidation(t, err, "email format")
	})

	t.Run("minimal email passes", func(t *testing.T) {
		r := valid
		r.ClientEmail = "a@b"
		if err := r.Validate(context.Background(), now, allServicesExist()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("time equal to now rejected", func(t *testing.T) {
		r := valid
		r.StartTime = now
		err := r.Validate(context.Background(), now, allServicesExist())
		if !httperr.IsBusiness(err, httperr.CodeInvalidDateTime) {
			t.Fatalf("got %v, want %s", err, httperr.CodeInvalidDateTime)
		}
	})

	t.Run("time in the past rejected", func(t *testing.T) {
		r := valid
		r.StartTime = now.Add(-time.Minute)
		err := r.Validate(context.Background(), now, allServicesExist())
		if !httperr.IsBusiness(err, httperr.CodeInvalidDateTime) {
			t.Fatalf("got %v, want %s", err, httperr.CodeInvalidDateTime)
		}
	})

	t.Run("unknown service rejected", func(t *testing.T) {
		lookup := &fakeLookup{existsFn: func(context.Context, uint) (bool, error) {
			return false, nil
		}}
		err := valid.Validate(context.Background(), now, lookup)
		if !httperr.IsBusiness(err, httperr.CodeServiceNotFound) {
			t.Fatalf("got %v, want %s", err, httperr.CodeServiceNotFound)
		}
	})

	t.Run("name checked before email", func(t *testing.T) {
		r := valid
		r.ClientName = ""
		r.ClientEmail = "no-at-sign"
		err := r.Validate(context.Background(), now, allServicesExist())
		assertValidation(t, err, "client name")
	})
}

func TestValidateServiceRequest(t *testing.T) {
	cases := []struct {
		name        string
		svcName     string
		description string
		duration    int
		wantErr     bool
	}{
		{"valid", "Haircut", "A classic haircut", 30, false},
		{"blank name", "  ", "desc", 30, true},
		{"blank description", "Haircut", "", 30, true},
		{"zero duration", "Haircut", "desc", 0, true},
		{"negative duration", "Haircut", "desc", -5, true},
		{"full day accepted", "Retreat", "day-long booking", 1440, false},
		{"over a day rejected", "Retreat", "too long", 1441, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateServiceRequest(tc.svcName, tc.description, tc.duration)
			if tc.wantErr {
				if !httperr.IsBusiness(err, httperr.CodeValidation) {
					t.Fatalf("got %v, want %s", err, httperr.CodeValidation)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func assertValidation(t *testing.T, err error, field string) {
	t.Helper()

	be, ok := httperr.AsBusiness(err)
	if !ok || be.Code != httperr.CodeValidation {
		t.Fatalf("got %v, want %s", err, httperr.CodeValidation)
	}
	if be.Detail != field {
		t.Fatalf("violated field = %q, want %q", be.Detail, field)
	}
}
