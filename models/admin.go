package models

import "time"

// Admin is the single administrator credential. The row is seeded at startup
// and never updated or deleted through the API; the unique index on Username
// guarantees at most one row per username even under concurrent seeding.
type Admin struct {
	ID           uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string    `json:"username" gorm:"type:varchar(50);not null;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"column:password;type:varchar(255);not null"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Admin) TableName() string {
	return "admins"
}
