package model

import (
	"time"

	"gorm.io/datatypes"
)

// Character is a generated character record. ShareID is minted once at insert time and
// never changes; counters only move up, via the increment repository methods.
type Character struct {
	ID                    uint           `gorm:"primarykey" json:"id"`
	ShareID               string         `json:"share_id" gorm:"uniqueIndex;not null"`
	SessionID             string         `json:"session_id" gorm:"index"`
	CharacterName         string         `json:"character_name" gorm:"not null"`
	CharacterTitle        string         `json:"character_title"`
	CharacterDescription  string         `json:"character_description" gorm:"type:text"`
	CharacterTraits       datatypes.JSON `json:"character_traits" gorm:"type:jsonb"`
	PersonalityProfile    string         `json:"personality_profile" gorm:"type:text"`
	AppearanceDescription string         `json:"appearance_description" gorm:"type:text"`
	BackgroundStory       string         `json:"background_story" gorm:"type:text"`
	ImageURL              string         `json:"image_url"`
	ImagePrompt           string         `json:"image_prompt" gorm:"type:text"`
	AestheticStyle        string         `json:"aesthetic_style"`
	IsPublic              bool           `json:"is_public" gorm:"default:true;index"`
	ViewCount             int            `json:"view_count" gorm:"default:0"`
	LikeCount             int            `json:"like_count" gorm:"default:0"`
	ShareCount            int            `json:"share_count" gorm:"default:0"`
	LanguageCode          string         `json:"language_code" gorm:"not null;index"`
	CreatedAt             time.Time      `json:"created_at"`
	UpdatedAt             time.Time      `json:"updated_at"`
}

func (Character) TableName() string {
	return "generated_characters"
}
