package booking

import (
	"context"
	"strings"
	"time"

	"github.com/phukrit7171/appointment-booking-api/internal/httperr"
)

// ServiceLookup is the collaborator the appointment validator uses to
// check that the referenced service exists.
type ServiceLookup interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

// BookingRequest carries the client-supplied fields of an appointment
// write, before any persistence is attempted.
type BookingRequest struct {
	ClientName  string
	ClientEmail string
	StartTime   time.Time
	ServiceID   uint
}

// Validate enforces the field and business rules in order; the first
// violated rule wins.
func (r BookingRequest) Validate(ctx context.Context, now time.Time, services ServiceLookup) error {
	if strings.TrimSpace(r.ClientName) == "" {
		return httperr.ErrValidation("client name")
	}

	if strings.TrimSpace(r.ClientEmail) == "" {
		return httperr.ErrValidation("client email")
	}

	// deliberately permissive: an "@" anywhere is enough
	if !strings.Contains(r.ClientEmail, "@") {
		return httperr.ErrValidation("email format")
	}

	if !r.StartTime.After(now) {
		return httperr.ErrBusiness(httperr.CodeInvalidDateTime)
	}

	exists, err := services.Exists(ctx, r.ServiceID)
	if err != nil {
		return err
	}
	if !exists {
		return httperr.ErrBusiness(httperr.CodeServiceNotFound)
	}

	return nil
}

const maxDurationMinutes = 1440 // 24 hours

// ValidateServiceRequest enforces the service create/update rules.
func ValidateServiceRequest(name, description string, durationMinutes int) error {
	if strings.TrimSpace(name) == "" {
		return httperr.ErrValidation("name")
	}

	if strings.TrimSpace(description) == "" {
		return httperr.ErrValidation("description")
	}

	if durationMinutes <= 0 {
		return httperr.ErrValidation("duration must be positive")
	}

	if durationMinutes > maxDurationMinutes {
		return httperr.ErrValidation("duration cannot exceed 1440 minutes")
	}

	return nil
}
