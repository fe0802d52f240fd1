package models

import (
	"time"

	"deskhub/internal/shared/constants"
)

type NotificationTemplateModel struct {
	ID        uint   `gorm:"primaryKey"`
	EventType string `gorm:"uniqueIndex;size:30;not null"`
	Name      string `gorm:"size:120;not null"`
	Subject   string `gorm:"size:255;not null"`
	Body      string `gorm:"type:text;not null"`
	Enabled   bool   `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (NotificationTemplateModel) TableName() string { return constants.TableNotificationTemplates }

// EmailSettingsModel is a single-row table; the repository always reads and
// writes the first row.
type EmailSettingsModel struct {
	ID          uint   `gorm:"primaryKey"`
	Host        string `gorm:"size:255"`
	Port        int    `gorm:"not null"`
	Username    string `gorm:"size:255"`
	Password    string `gorm:"size:255"`
	FromAddress string `gorm:"size:254"`
	FromName    string `gorm:"size:120"`
	Enabled     bool   `gorm:"not null"`
	UpdatedAt   time.Time
}

func (EmailSettingsModel) TableName() string { return constants.TableEmailSettings }
