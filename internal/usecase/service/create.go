package service

import (
	"context"

	"github.com/phukrit7171/appointment-booking-api/internal/audit"
	"github.com/phukrit7171/appointment-booking-api/internal/cache"
	"github.com/phukrit7171/appointment-booking-api/internal/domain/booking"
	"github.com/phukrit7171/appointment-booking-api/internal/models"
)

type ServiceInput struct {
	Name                   string
	Description            string
	DefaultDurationMinutes int
}

type CreateService struct {
	repo  booking.ServiceRepository
	cache *cache.ServiceCache
	audit audit.Recorder
}

func NewCreateService(
	repo booking.ServiceRepository,
	cache *cache.ServiceCache,
	audit audit.Recorder,
) *CreateService {
	return &CreateService{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

func (uc *CreateService) Execute(
	ctx context.Context,
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
		Name:                   in.Name,
		Description:            in.Description,
		DefaultDurationMinutes: in.DefaultDurationMinutes,
	}

	if err := uc.repo.Create(ctx, svc); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, svc.ID)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionServiceCreated,
		Entity:   "service",
		EntityID: &svc.ID,
	})

	return svc, nil
}
