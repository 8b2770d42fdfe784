package service

import (
	"context"

	"github.com/phukrit7171/appointment-booking-api/internal/cache"
	"github.com/phukrit7171/appointment-booking-api/internal/domain/booking"
	"github.com/phukrit7171/appointment-booking-api/internal/models"
)

// QueryServices serves the read path: cache first, database on a miss.
// Reads never run validation or conflict logic.
type QueryServices struct {
	repo  booking.ServiceRepository
	cache *cache.ServiceCache
}

func NewQueryServices(
	repo booking.ServiceRepository,
	cache *cache.ServiceCache,
) *QueryServices {
	return &QueryServices{
		repo:  repo,
		cache: cache,
	}
}

func (uc *QueryServices) GetByID(ctx context.Context, id uint) (*models.Service, error) {
	if uc.cache != nil {
		if svc, ok := uc.cache.GetService(ctx, id); ok {
			return svc, nil
		}
	}

	svc, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.SetService(ctx, svc)
	}
	return svc, nil
}

func (uc *QueryServices) List(ctx context.Context) ([]models.Service, error) {
	if uc.cache != nil {
		if services, ok := uc.cache.GetList(ctx); ok {
			return services, nil
		}
	}

	services, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.SetList(ctx, services)
	}
	return services, nil
}
