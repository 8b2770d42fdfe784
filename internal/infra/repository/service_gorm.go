package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/phukrit7171/appointment-booking-api/internal/domain/booking"
	"github.com/phukrit7171/appointment-booking-api/internal/httperr"
	"github.com/phukrit7171/appointment-booking-api/internal/models"
)

type ServiceGormRepository struct {
	db *gorm.DB
}

func NewServiceGormRepository(db *gorm.DB) *ServiceGormRepository {
	return &ServiceGormRepository{db: db}
}

func (r *ServiceGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
		}
		return nil, err
	}
	return &svc, nil
}

func (r *ServiceGormRepository) Exists(
	ctx context.Context,
	id uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ServiceGormRepository) List(
	ctx context.Context,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *ServiceGormRepository) Create(
	ctx context.Context,
	svc *models.Service,
) error {
	return r.db.WithContext(ctx).Create(svc).Error
}

func (r *ServiceGormRepository) Update(
	ctx context.Context,
	svc *models.Service,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("id = ?", svc.ID).
		Updates(map[string]any{
			"name":                     svc.Name,
			"description":              svc.Description,
			"default_duration_minutes": svc.DefaultDurationMinutes,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness(httperr.CodeServiceNotFound)
	}
	return nil
}

func (r *ServiceGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Service{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness(httperr.CodeServiceNotFound)
	}
	return nil
}

// Compile-time check
var _ booking.ServiceRepository = (*ServiceGormRepository)(nil)
