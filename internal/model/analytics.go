package model

import (
	"time"

	"gorm.io/datatypes"
)

// AnalyticsEvent rows correlate quiz and generation activity by session id.
type AnalyticsEvent struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	EventType    string         `json:"event_type" gorm:"not null;index"`
	SessionID    string         `json:"session_id" gorm:"not null;index"`
	LanguageCode string         `json:"language_code" gorm:"not null"`
	Metadata     datatypes.JSON `json:"metadata,omitempty" gorm:"type:jsonb"`
	CreatedAt    time.Time      `json:"created_at"`
}

func (AnalyticsEvent) TableName() string {
	return "analytics"
}
