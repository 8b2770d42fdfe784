package appointment

import (
	"context"

	"github.com/phukrit7171/appointment-booking-api/internal/audit"
	"github.com/phukrit7171/appointment-booking-api/internal/domain/booking"
	"github.com/phukrit7171/appointment-booking-api/internal/httperr"
	"github.com/phukrit7171/appointment-booking-api/internal/models"
)

type UpdateAppointment struct {
	appointments booking.AppointmentRepository
	services     booking.ServiceRepository
	clock        booking.Clock
	audit        audit.Recorder
}

func NewUpdateAppointment(
	appointments booking.AppointmentRepository,
	services booking.ServiceRepository,
	clock booking.Clock,
	audit audit.Recorder,
) *UpdateAppointment {
	return &UpdateAppointment{
		appointments: appointments,
		services:     services,
		clock:        clock,
		audit:        audit,
	}
}

// Execute replaces all fields of the appointment through the same pipeline
// as creation, except the target is excluded from the conflict set so an
// unchanged slot never conflicts with itself.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	id uint,
	in BookingInput,
) (*models.Appointment, error) {

	if err := in.request().Validate(ctx, uc.clock.Now(), uc.services); err != nil {
		return nil, err
	}

	svc, err := uc.services.GetByID(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}

	slot := booking.NewInterval(in.AppointmentTime.Time, svc.Duration())

	conflicts, err := booking.FindConflicts(
		ctx,
		uc.appointments,
		in.ServiceID,
		slot,
		svc.Duration(),
		&id,
	)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		uc.audit.Dispatch(audit.Event{
			Action:   audit.ActionBookingConflict,
			Entity:   "appointment",
			EntityID: &id,
			Metadata: map[string]any{
				"service_id": in.ServiceID,
				"start":      slot.Start,
				"end":        slot.End,
			},
		})
		return nil, httperr.ErrBusiness(httperr.CodeDoubleBooking)
	}

	ap := &models.Appointment{
		ID:              id,
		ClientName:      in.ClientName,
		ClientEmail:     in.ClientEmail,
		AppointmentTime: in.AppointmentTime,
		ServiceID:       in.ServiceID,
	}

	if err := uc.appointments.Update(ctx, ap); err != nil {
		return nil, err
	}

	ap.Service = *svc

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionAppointmentUpdated,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
