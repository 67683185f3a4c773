package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/kejingzs/kejing-backend/internal/models"
	"gorm.io/gorm"
)

// ContactRepository defines the interface for contact submission data access.
// Submissions are immutable apart from the one-way read flag.
type ContactRepository interface {
	Create(ctx context.Context, contact *models.Contact) error
	GetByID(ctx context.Context, id uint) (*models.Contact, error)
	List(ctx context.Context, limit, offset int) ([]models.Contact, int64, error)
	MarkRead(ctx context.Context, id uint) (*models.Contact, error)
	Delete(ctx context.Context, id uint) error
	CountUnread(ctx context.Context) (int64, error)
}

// contactRepository implements ContactRepository using GORM
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new ContactRepository instance
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

// Create creates a new contact submission
func (r *contactRepository) Create(ctx context.Context, contact *models.Contact) error {
	result := r.db.WithContext(ctx).Create(contact)
	if result.Error != nil {
		return fmt.Errorf("failed to create contact: %w", result.Error)
	}
	return nil
}

// GetByID retrieves a contact submission by its ID
func (r *contactRepository) GetByID(ctx context.Context, id uint) (*models.Contact, error) {
	var contact models.Contact
	result := r.db.WithContext(ctx).First(&contact, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get contact by ID: %w", result.Error)
	}
	return &contact, nil
}

// List retrieves contact submissions in insertion order with pagination
func (r *contactRepository) List(ctx context.Context, limit, offset int) ([]models.Contact, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Contact{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count contacts: %w", err)
	}

	var contacts []models.Contact
	result := r.db.WithContext(ctx).
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&contacts)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to list contacts: %w", result.Error)
	}
	return contacts, total, nil
}

// MarkRead sets the read flag on a contact submission. Marking an
// already-read submission is a no-op and not an error.
func (r *contactRepository) MarkRead(ctx context.Context, id uint) (*models.Contact, error) {
	contact, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if contact.IsRead {
		return contact, nil
	}

	result := r.db.WithContext(ctx).Model(contact).Update("is_read", true)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to mark contact read: %w", result.Error)
	}
	return contact, nil
}

// Delete deletes a contact submission by its ID
func (r *contactRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Contact{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete contact: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountUnread returns the number of unread contact submissions
func (r *contactRepository) CountUnread(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&models.Contact{}).
		Where("is_read = ?", false).
		Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to count unread contacts: %w", result.Error)
	}
	return count, nil
}
