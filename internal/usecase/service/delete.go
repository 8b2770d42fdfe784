package service

import (
	"context"

	"github.com/phukrit7171/appointment-booking-api/internal/audit"
	"github.com/phukrit7171/appointment-booking-api/internal/cache"
	"github.com/phukrit7171/appointment-booking-api/internal/domain/booking"
	"github.com/phukrit7171/appointment-booking-api/internal/httperr"
)

// DependentCounter reports how many appointments still reference a service.
type DependentCounter interface {
	CountForService(ctx context.Context, serviceID uint) (int64, error)
}

type DeleteService struct {
	repo         booking.ServiceRepository
	appointments DependentCounter
	cache        *cache.ServiceCache
	audit        audit.Recorder
}

func NewDeleteService(
	repo booking.ServiceRepository,
	appointments DependentCounter,
	cache *cache.ServiceCache,
	audit audit.Recorder,
) *DeleteService {
	return &DeleteService{
		repo:         repo,
		appointments: appointments,
		cache:        cache,
		audit:        audit,
	}
}

// Execute removes the service unless any appointment still references it.
func (uc *DeleteService) Execute(ctx context.Context, id uint) error {
	count, err := uc.appointments.CountForService(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return httperr.ErrBusiness(httperr.CodeDependentRecords)
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, id)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionServiceDeleted,
		Entity:   "service",
		EntityID: &id,
	})

	return nil
}
