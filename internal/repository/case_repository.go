package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/kejingzs/kejing-backend/internal/models"
	"gorm.io/gorm"
)

// CaseRepository defines the interface for case study data access
type CaseRepository interface {
	Create(ctx context.Context, c *models.Case) error
	GetByID(ctx context.Context, id uint) (*models.Case, error)
	List(ctx context.Context, limit, offset int) ([]models.Case, int64, error)
	Update(ctx context.Context, id uint, upd *models.CaseUpdate) (*models.Case, error)
	Delete(ctx context.Context, id uint) error
}

// caseRepository implements CaseRepository using GORM
type caseRepository struct {
	db *gorm.DB
}

// NewCaseRepository creates a new CaseRepository instance
func NewCaseRepository(db *gorm.DB) CaseRepository {
	return &caseRepository{db: db}
}

// Create creates a new case study
func (r *caseRepository) Create(ctx context.Context, c *models.Case) error {
	result := r.db.WithContext(ctx).Create(c)
	if result.Error != nil {
		return fmt.Errorf("failed to create case: %w", result.Error)
	}
	return nil
}

// GetByID retrieves a case study by its ID
func (r *caseRepository) GetByID(ctx context.Context, id uint) (*models.Case, error) {
	var c models.Case
	result := r.db.WithContext(ctx).First(&c, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get case by ID: %w", result.Error)
	}
	return &c, nil
}

// List retrieves case studies in insertion order with pagination
func (r *caseRepository) List(ctx context.Context, limit, offset int) ([]models.Case, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Case{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count cases: %w", err)
	}

	var cases []models.Case
	result := r.db.WithContext(ctx).
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&cases)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to list cases: %w", result.Error)
	}
	return cases, total, nil
}

// Update applies a partial update; only non-nil fields are written
func (r *caseRepository) Update(ctx context.Context, id uint, upd *models.CaseUpdate) (*models.Case, error) {
	c, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if upd.Title != nil {
		fields["title"] = *upd.Title
	}
	if upd.Description != nil {
		fields["description"] = *upd.Description
	}
	if upd.Image != nil {
		fields["image"] = *upd.Image
	}
	if upd.Date != nil {
		fields["date"] = *upd.Date
	}
	if len(fields) == 0 {
		return c, nil
	}

	result := r.db.WithContext(ctx).Model(c).Updates(fields)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update case: %w", result.Error)
	}
	return c, nil
}

// Delete deletes a case study by its ID
func (r *caseRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Case{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete case: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
