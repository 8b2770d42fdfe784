package appointment

import (
	"context"

	"github.com/phukrit7171/appointment-booking-api/internal/domain/booking"
	"github.com/phukrit7171/appointment-booking-api/internal/models"
)

// QueryAppointments serves the read path; no validation or conflict logic.
type QueryAppointments struct {
	appointments booking.AppointmentRepository
}

func NewQueryAppointments(
	appointments booking.AppointmentRepository,
) *QueryAppointments {
	return &QueryAppointments{appointments: appointments}
}

func (uc *QueryAppointments) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	return uc.appointments.GetByID(ctx, id)
}

func (uc *QueryAppointments) List(ctx context.Context) ([]models.Appointment, error) {
	return uc.appointments.List(ctx)
}
