package repository

import (
	"github.com/makemymate/makemymate-api/internal/model"
	"gorm.io/gorm"
)

type ResponseRepository interface {
	Create(response *model.CharacterResponse) error
	FindBySessionID(sessionID string) ([]model.CharacterResponse, error)
}

type responseRepository struct {
	db *gorm.DB
}

func NewResponseRepository(db *gorm.DB) ResponseRepository {
	return &responseRepository{db: db}
}

func (r *responseRepository) Create(response *model.CharacterResponse) error {
	// Append-only: re-answering the same question inserts a new row.
	return r.db.Create(response).Error
}

func (r *responseRepository) FindBySessionID(sessionID string) ([]model.CharacterResponse, error) {
	var responses []model.CharacterResponse
	if err := r.db.Where("session_id = ?", sessionID).Order("created_at ASC").Find(&responses).Error; err != nil {
		return nil, err
	}
	return responses, nil
}
