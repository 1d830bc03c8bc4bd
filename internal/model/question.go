package model

import (
	"time"

	"gorm.io/datatypes"
)

// QuizQuestion is immutable from the client's perspective; rows are seeded per language.
type QuizQuestion struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	Section       string         `json:"section" gorm:"not null;index"` // "character", "appearance", "redflags"
	QuestionText  string         `json:"question_text" gorm:"type:text;not null"`
	QuestionType  string         `json:"question_type" gorm:"not null"` // "multiple-choice", "slider"
	Options       datatypes.JSON `json:"options,omitempty" gorm:"type:jsonb"`
	MinValue      *int           `json:"min_value,omitempty"`
	MaxValue      *int           `json:"max_value,omitempty"`
	MinLabel      *string        `json:"min_label,omitempty"`
	MaxLabel      *string        `json:"max_label,omitempty"`
	QuestionOrder int            `json:"question_order" gorm:"not null"`
	LanguageCode  string         `json:"language_code" gorm:"not null;index"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}
