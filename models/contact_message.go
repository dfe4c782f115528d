package models

import "time"

// ContactMessage is an append-only contact form submission. Rows are created
// by the public submit endpoint with a server-assigned timestamp and are
// never mutated or deleted.
type ContactMessage struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	Email     string    `json:"email" gorm:"type:varchar(255);not null"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	Timestamp time.Time `json:"timestamp" gorm:"not null"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}
