package model

import "time"

// CharacterResponse is one answered quiz question within a session. Rows are
// append-only; re-answering inserts a new row under the same session/question pair.
type CharacterResponse struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	SessionID    string    `json:"session_id" gorm:"not null;index"`
	QuestionID   uint      `json:"question_id" gorm:"not null;index"`
	Response     string    `json:"response" gorm:"type:text;not null"`
	LanguageCode string    `json:"language_code" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
}

func (CharacterResponse) TableName() string {
	return "character_responses"
}
