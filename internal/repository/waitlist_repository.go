package repository

import (
	"errors"

	"github.com/makemymate/makemymate-api/internal/model"
	"gorm.io/gorm"
)

type WaitlistRepository interface {
	Create(entry *model.WaitlistEntry) error
	EmailExists(email string) (bool, error)
	CountByRole(role string) (int64, error)
	Count() (int64, error)
}

type waitlistRepository struct {
	db *gorm.DB
}

func NewWaitlistRepository(db *gorm.DB) WaitlistRepository {
	return &waitlistRepository{db: db}
}

func (r *waitlistRepository) Create(entry *model.WaitlistEntry) error {
	return r.db.Create(entry).Error
}

func (r *waitlistRepository) EmailExists(email string) (bool, error) {
	var entry model.WaitlistEntry
	err := r.db.Select("id").Where("email = ?", email).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *waitlistRepository) CountByRole(role string) (int64, error) {
	var count int64
	err := r.db.Model(&model.WaitlistEntry{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

func (r *waitlistRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.WaitlistEntry{}).Count(&count).Error
	return count, err
}
