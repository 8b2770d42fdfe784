package booking

import (
	"context"
	"time"

	"github.com/phukrit7171/appointment-booking-api/internal/models"
)

type ServiceRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Service, error)
	Exists(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context) ([]models.Service, error)

	Create(ctx context.Context, svc *models.Service) error
	Update(ctx context.Context, svc *models.Service) error
	Delete(ctx context.Context, id uint) error
}

type AppointmentRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Appointment, error)
	List(ctx context.Context) ([]models.Appointment, error)

	Create(ctx context.Context, ap *models.Appointment) error
	Update(ctx context.Context, ap *models.Appointment) error
	Delete(ctx context.Context, id uint) error

	// FindByServiceInRange returns the service's appointments starting in
	// [start, end), ordered by start time, minus excludeID when set.
	FindByServiceInRange(
		ctx context.Context,
		serviceID uint,
		start time.Time,
		end time.Time,
		excludeID *uint,
	) ([]models.Appointment, error)

	CountForService(ctx context.Context, serviceID uint) (int64, error)
}
