package models

import (
	"time"

	"gorm.io/datatypes"

	"deskhub/internal/shared/constants"
)

// TicketModel carries the reporter contact columns inline; anonymous
// submitters have no account row to reference. The unique index on DisplayID
// is what turns a concurrent display-ID collision into an insert failure.
type TicketModel struct {
	ID          uint   `gorm:"primaryKey"`
	DisplayID   string `gorm:"uniqueIndex;size:20;not null"`
	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"type:text;not null"`

	ReporterName       string `gorm:"size:150;not null"`
	ReporterEmail      string `gorm:"size:254;not null"`
	ReporterPhone      string `gorm:"size:40"`
	ReporterBuilding   string `gorm:"size:120"`
	ReporterRoom       string `gorm:"size:60"`
	ReporterDepartment string `gorm:"size:120"`
	ReporterIP         string `gorm:"size:45"`

	ProjectID  uint  `gorm:"not null;index"`
	StatusID   uint  `gorm:"not null;index"`
	PriorityID *uint `gorm:"index"`
	CategoryID *uint `gorm:"index"`
	AssigneeID *uint `gorm:"index"`

	CustomFormData datatypes.JSON `gorm:"type:json"`

	CreatedAt  time.Time `gorm:"index"`
	UpdatedAt  time.Time
	ResolvedAt *time.Time `gorm:"index"`
	ClosedAt   *time.Time
}

func (TicketModel) TableName() string { return constants.TableTickets }

type CommentModel struct {
	ID            uint   `gorm:"primaryKey"`
	TicketID      uint   `gorm:"not null;index"`
	AuthorAgentID *uint  `gorm:"index"`
	AuthorName    string `gorm:"size:150"`
	AuthorIP      string `gorm:"size:45"`
	Body          string `gorm:"type:text;not null"`
	Internal      bool   `gorm:"not null"`
	System        bool   `gorm:"not null"`
	CreatedAt     time.Time
}

func (CommentModel) TableName() string { return constants.TableComments }

type AttachmentModel struct {
	ID           uint   `gorm:"primaryKey"`
	TicketID     *uint  `gorm:"index"`
	CommentID    *uint  `gorm:"index"`
	StoredPath   string `gorm:"size:500;not null"`
	FileName     string `gorm:"size:255;not null"`
	Size         int64  `gorm:"not null;default:0"`
	UploaderID   *uint
	UploaderName string `gorm:"size:150"`
	CreatedAt    time.Time
}

func (AttachmentModel) TableName() string { return constants.TableAttachments }
