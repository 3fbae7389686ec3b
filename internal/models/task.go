package model

import "time"

// Task is a row of the tasks table.
// IsDeleted is part of the schema but nothing sets or filters on it;
// deletes remove the row.
type Task struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Category  string    `gorm:"not null" json:"category"`
	Date      time.Time `gorm:"not null" json:"date"`
	Edit      bool      `gorm:"not null;default:false" json:"edit"`
	IsDeleted bool      `gorm:"not null;default:false" json:"is_deleted"`
}

func (Task) TableName() string {
	return "tasks"
}
