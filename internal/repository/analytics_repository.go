package repository

import (
	"github.com/makemymate/makemymate-api/internal/model"
	"gorm.io/gorm"
)

type AnalyticsRepository interface {
	Create(event *model.AnalyticsEvent) error
}

type analyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) Create(event *model.AnalyticsEvent) error {
	return r.db.Create(event).Error
}
