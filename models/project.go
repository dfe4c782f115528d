package models

import "time"

// Project represents one portfolio entry. Title, Description and ImageURL
// are required for every persisted row; ProjectURL is optional and stored as
// NULL when absent.
type Project struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string    `json:"title" gorm:"type:text;not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	ImageURL    string    `json:"image_url" gorm:"type:text;not null"`
	ProjectURL  *string   `json:"project_url,omitempty" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Project) TableName() string {
	return "projects"
}
