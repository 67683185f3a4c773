package repository

import (
	"context"
	"fmt"

	"github.com/kejingzs/kejing-backend/internal/models"
	"gorm.io/gorm"
)

// StatsRepository provides live aggregate counts over the catalog tables.
// Counts are always computed from the database; nothing is cached.
type StatsRepository interface {
	GetStatistics(ctx context.Context) (*models.Statistics, error)
}

// statsRepository implements StatsRepository using GORM
type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new StatsRepository instance
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

// GetStatistics computes current entity counts across the catalog
func (r *statsRepository) GetStatistics(ctx context.Context) (*models.Statistics, error) {
	stats := &models.Statistics{}

	if err := r.db.WithContext(ctx).Model(&models.Album{}).Count(&stats.AlbumCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count albums: %w", err)
	}
	if err := r.db.WithContext(ctx).Model(&models.Image{}).Count(&stats.ImageCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count images: %w", err)
	}
	if err := r.db.WithContext(ctx).Model(&models.Service{}).Count(&stats.ServiceCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count services: %w", err)
	}
	if err := r.db.WithContext(ctx).Model(&models.Contact{}).Count(&stats.ContactCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count contacts: %w", err)
	}
	if err := r.db.WithContext(ctx).Model(&models.Contact{}).Where("is_read = ?", false).Count(&stats.UnreadContactCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count unread contacts: %w", err)
	}

	return stats, nil
}
