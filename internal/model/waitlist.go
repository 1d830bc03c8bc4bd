package model

import "time"

type WaitlistEntry struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	FirstName string    `json:"first_name" gorm:"not null"`
	LastName  string    `json:"last_name" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Role      string    `json:"role" gorm:"not null"` // "reader", "author"
	Consent   bool      `json:"consent" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (WaitlistEntry) TableName() string {
	return "bookmate_waitlist"
}
