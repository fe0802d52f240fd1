package models

import (
	"time"

	"deskhub/internal/shared/constants"
)

type FeedbackModel struct {
	ID            uint      `gorm:"primaryKey"`
	Type          string    `gorm:"size:20;not null;index"`
	Name          string    `gorm:"size:150"`
	Email         string    `gorm:"size:254"`
	Subject       string    `gorm:"size:255"`
	Message       string    `gorm:"type:text;not null"`
	SubmittedAt   time.Time `gorm:"not null;index"`
	Reviewed      bool      `gorm:"not null;index"`
	ReviewerNotes string    `gorm:"type:text"`
}

func (FeedbackModel) TableName() string { return constants.TableFeedback }
