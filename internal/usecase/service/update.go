package service

import (
	"context"

	"github.com/phukrit7171/appointment-booking-api/internal/audit"
	"github.com/phukrit7171/appointment-booking-api/internal/cache"
	"github.com/phukrit7171/appointment-booking-api/internal/domain/booking"
	"github.com/phukrit7171/appointment-booking-api/internal/models"
)

type UpdateService struct {
	repo  booking.ServiceRepository
	cache *cache.ServiceCache
	audit audit.Recorder
}

func NewUpdateService(
	repo booking.ServiceRepository,
	cache *cache.ServiceCache,
	audit audit.Recorder,
) *UpdateService {
	return &UpdateService{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

// Execute replaces all fields of the service, subject to the same rules
// as creation.
func (uc *UpdateService) Execute(
	ctx context.Context,
	id uint,
	in ServiceInput,
) (*models.Service, error) {

	if err := booking.ValidateServiceRequest(
		in.Name,
		in.Description,
		in.DefaultDurationMinutes,
	); err != nil {
		return nil, err
	}

	svc := &models.Service{
		ID:                     id,
		Name:                   in.Name,
		Description:            in.Description,
		DefaultDurationMinutes: in.DefaultDurationMinutes,
	}

	if err := uc.repo.Update(ctx, svc); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, id)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionServiceUpdated,
		Entity:   "service",
		EntityID: &svc.ID,
	})

	return svc, nil
}
