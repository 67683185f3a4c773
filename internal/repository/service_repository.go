package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/kejingzs/kejing-backend/internal/models"
	"gorm.io/gorm"
)

// ServiceRepository defines the interface for service offering data access
type ServiceRepository interface {
	Create(ctx context.Context, service *models.Service) error
	GetByID(ctx context.Context, id uint) (*models.Service, error)
	List(ctx context.Context, limit, offset int) ([]models.Service, int64, error)
	Update(ctx context.Context, id uint, upd *models.ServiceUpdate) (*models.Service, error)
	Delete(ctx context.Context, id uint) error
}

// serviceRepository implements ServiceRepository using GORM
type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository creates a new ServiceRepository instance
func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &serviceRepository{db: db}
}

// Create creates a new service offering
func (r *serviceRepository) Create(ctx context.Context, service *models.Service) error {
	result := r.db.WithContext(ctx).Create(service)
	if result.Error != nil {
		return fmt.Errorf("failed to create service: %w", result.Error)
	}
	return nil
}

// GetByID retrieves a service by its ID
func (r *serviceRepository) GetByID(ctx context.Context, id uint) (*models.Service, error) {
	var service models.Service
	result := r.db.WithContext(ctx).First(&service, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get service by ID: %w", result.Error)
	}
	return &service, nil
}

// List retrieves services sorted by display order, then insertion order
func (r *serviceRepository) List(ctx context.Context, limit, offset int) ([]models.Service, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Service{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count services: %w", err)
	}

	var services []models.Service
	result := r.db.WithContext(ctx).
		Order("display_order ASC, id ASC").
		Limit(limit).
		Offset(offset).
		Find(&services)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to list services: %w", result.Error)
	}
	return services, total, nil
}

// Update applies a partial update; only non-nil fields are written
func (r *serviceRepository) Update(ctx context.Context, id uint, upd *models.ServiceUpdate) (*models.Service, error) {
	service, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if upd.Name != nil {
		fields["name"] = *upd.Name
	}
	if upd.Description != nil {
		fields["description"] = *upd.Description
	}
	if upd.Icon != nil {
		fields["icon"] = *upd.Icon
	}
	if upd.DisplayOrder != nil {
		fields["display_order"] = *upd.DisplayOrder
	}
	if len(fields) == 0 {
		return service, nil
	}

	result := r.db.WithContext(ctx).Model(service).Updates(fields)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update service: %w", result.Error)
	}
	return service, nil
}

// Delete deletes a service by its ID
func (r *serviceRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Service{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete service: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
