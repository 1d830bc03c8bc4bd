package dto

import (
	"time"

	"github.com/makemymate/makemymate-api/internal/quiz"
)

type QuestionResponse struct {
	ID            uint     `json:"id"`
	Section       string   `json:"section"`
	QuestionText  string   `json:"question_text"`
	QuestionType  string   `json:"question_type"`
	Options       []string `json:"options,omitempty"`
	MinValue      *int     `json:"min_value,omitempty"`
	MaxValue      *int     `json:"max_value,omitempty"`
	MinLabel      *string  `json:"min_label,omitempty"`
	MaxLabel      *string  `json:"max_label,omitempty"`
	QuestionOrder int      `json:"question_order"`
	LanguageCode  string   `json:"language_code"`
}

type QuizSessionResponse struct {
	SessionID string             `json:"session_id"`
	State     string             `json:"state"`
	Cursor    int                `json:"cursor"`
	Questions []QuestionResponse `json:"questions"`
}

type AdvanceResponse struct {
	Completed bool            `json:"completed"`
	Cursor    int             `json:"cursor"`
	Progress  quiz.Progress   `json:"progress"`
	Answers   []QuizAnswerDTO `json:"answers,omitempty"` // populated once completed
}

// GeneratedCharacterDTO is the character shape of the generate-character API. Field
// names follow the public contract; ShareID/ShareURL are null when persistence failed
// and the character cannot be shared or revisited.
type GeneratedCharacterDTO struct {
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Traits      []string `json:"traits"`
	Personality string   `json:"personality"`
	Background  string   `json:"background"`
	Aesthetic   string   `json:"aesthetic"`
	ImageURL    string   `json:"imageUrl"`
	ShareID     *string  `json:"shareId"`
	ShareURL    *string  `json:"shareUrl"`
}

type GenerateCharacterResponse struct {
	Success   bool                  `json:"success"`
	Character GeneratedCharacterDTO `json:"character"`
}

// CharacterResponse is the persisted-record shape used by gallery and detail reads.
type CharacterResponse struct {
	ID                    uint      `json:"id"`
	ShareID               string    `json:"share_id"`
	CharacterName         string    `json:"character_name"`
	CharacterTitle        string    `json:"character_title,omitempty"`
	CharacterDescription  string    `json:"character_description"`
	CharacterTraits       []string  `json:"character_traits"`
	PersonalityProfile    string    `json:"personality_profile,omitempty"`
	AppearanceDescription string    `json:"appearance_description,omitempty"`
	BackgroundStory       string    `json:"background_story,omitempty"`
	ImageURL              string    `json:"image_url"`
	AestheticStyle        string    `json:"aesthetic_style"`
	ViewCount             int       `json:"view_count"`
	LikeCount             int       `json:"like_count"`
	ShareCount            int       `json:"share_count"`
	LanguageCode          string    `json:"language_code"`
	CreatedAt             time.Time `json:"created_at"`
}

type CharacterListResponse struct {
	Characters []CharacterResponse `json:"characters"`
	NextCursor string              `json:"next_cursor,omitempty"`
}

type CharacterCountResponse struct {
	Count int64 `json:"count"`
}

type LikeResponse struct {
	Liked        bool `json:"liked"`
	AlreadyLiked bool `json:"already_liked"`
}

type WaitlistStats struct {
	Readers int64 `json:"readers"`
	Authors int64 `json:"authors"`
	Total   int64 `json:"total"`
}

type WaitlistStatsResponse struct {
	Stats WaitlistStats `json:"stats"`
}

type WaitlistSignupResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
