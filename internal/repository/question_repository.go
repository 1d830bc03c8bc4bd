package repository

import (
	"github.com/makemymate/makemymate-api/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	FindByLanguage(languageCode string) ([]model.QuizQuestion, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) FindByLanguage(languageCode string) ([]model.QuizQuestion, error) {
	var questions []model.QuizQuestion
	if err := r.db.Where("language_code = ?", languageCode).Order("question_order ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}
