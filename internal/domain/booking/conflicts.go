package booking

import (
	"context"
	"time"

	"github.com/phukrit7171/appointment-booking-api/internal/models"
)

// FindConflicts returns the service's existing appointments whose occupied
// interval overlaps the candidate slot. excludeID skips the appointment
// being updated so it never conflicts with its own slot.
//
// All appointments of a service share the service's duration, so any
// booking that could still overlap the slot starts no earlier than
// slot.Start - duration. The repository fetch uses that widened window;
// the precise overlap test happens here.
func FindConflicts(
	ctx context.Context,
	repo AppointmentRepository,
	serviceID uint,
	slot Interval,
	duration time.Duration,
	excludeID *uint,
) ([]models.Appointment, error) {

	candidates, err := repo.FindByServiceInRange(
		ctx,
		serviceID,
		slot.Start.Add(-duration),
		slot.End,
		excludeID,
	)
	if err != nil {
		return nil, err
	}

	var conflicts []models.Appointment
	for _, ap := range candidates {
		occupied := NewInterval(ap.AppointmentTime.Time, duration)
		if occupied.Overlaps(slot) {
			conflicts = append(conflicts, ap)
		}
	}

	return conflicts, nil
}
