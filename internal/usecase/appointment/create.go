package appointment

import (
	"context"

	"github.com/phukrit7171/appointment-booking-api/internal/audit"
	"github.com/phukrit7171/appointment-booking-api/internal/domain/booking"
	"github.com/phukrit7171/appointment-booking-api/internal/httperr"
	"github.com/phukrit7171/appointment-booking-api/internal/models"
)

type BookingInput struct {
	ClientName      string
	ClientEmail     string
	AppointmentTime models.LocalTime
	ServiceID       uint
}

func (in BookingInput) request() booking.BookingRequest {
	return booking.BookingRequest{
		ClientName:  in.ClientName,
		ClientEmail: in.ClientEmail,
		StartTime:   in.AppointmentTime.Time,
		ServiceID:   in.ServiceID,
	}
}

type CreateAppointment struct {
	appointments booking.AppointmentRepository
	services     booking.ServiceRepository
	clock        booking.Clock
	audit        audit.Recorder
}

func NewCreateAppointment(
	appointments booking.AppointmentRepository,
	services booking.ServiceRepository,
	clock booking.Clock,
	audit audit.Recorder,
) *CreateAppointment {
	return &CreateAppointment{
		appointments: appointments,
		services:     services,
		clock:        clock,
		audit:        audit,
	}
}

// Execute runs the write pipeline: validate, resolve the service, check
// conflicts, persist. Any failing stage short-circuits; the persist is the
// single side effect.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in BookingInput,
) (*models.Appointment, error) {

	if err := in.request().Validate(ctx, uc.clock.Now(), uc.services); err != nil {
		return nil, err
	}

	// existence was just checked; a miss here is a delete racing us
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
		nil,
	)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		uc.audit.Dispatch(audit.Event{
			Action: audit.ActionBookingConflict,
			Entity: "appointment",
			Metadata: map[string]any{
				"service_id": in.ServiceID,
				"start":      slot.Start,
				"end":        slot.End,
			},
		})
		return nil, httperr.ErrBusiness(httperr.CodeDoubleBooking)
	}

	ap := &models.Appointment{
		ClientName:      in.ClientName,
		ClientEmail:     in.ClientEmail,
		AppointmentTime: in.AppointmentTime,
		ServiceID:       in.ServiceID,
	}

	if err := uc.appointments.Create(ctx, ap); err != nil {
		return nil, err
	}

	ap.Service = *svc

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionAppointmentCreated,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
