package models

import (
	"time"

	"gorm.io/gorm"
)

// Task priorities. The UI cycles them 0 -> 1 -> 2 -> 0.
const (
	PriorityLow    = 0
	PriorityMedium = 1
	PriorityHigh   = 2
)

func ValidPriority(priority int) bool {
	return priority >= PriorityLow && priority <= PriorityHigh
}

type Task struct {
	gorm.Model

	Title       string `gorm:"not null"`
	Done        bool   `gorm:"not null;default:false"`
	Priority    int    `gorm:"not null;default:0"`
	StartDate   *time.Time
	DueDate     *time.Time
	CompletedAt *time.Time
	ProjectID   uint `gorm:"not null;index"`
	// Denormalized copy of the project's owner, frozen at creation.
	UserID uint `gorm:"not null;index"`

	// Relationships
	Project Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	User    User    `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
