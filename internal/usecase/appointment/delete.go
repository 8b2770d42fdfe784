package appointment

import (
	"context"

	"github.com/phukrit7171/appointment-booking-api/internal/audit"
	"github.com/phukrit7171/appointment-booking-api/internal/domain/booking"
)

type DeleteAppointment struct {
	appointments booking.AppointmentRepository
	audit        audit.Recorder
}

func NewDeleteAppointment(
	appointments booking.AppointmentRepository,
	audit audit.Recorder,
) *DeleteAppointment {
	return &DeleteAppointment{
		appointments: appointments,
		audit:        audit,
	}
}

// Execute removes the appointment unconditionally by identity.
func (uc *DeleteAppointment) Execute(ctx context.Context, id uint) error {
	if err := uc.appointments.Delete(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionAppointmentDeleted,
		Entity:   "appointment",
		EntityID: &id,
	})

	return nil
}
