package models

import (
	"time"

	"deskhub/internal/shared/constants"
)

// No foreign key constraints or gorm associations on any model; relationships
// are managed by application logic.

type ProjectModel struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"uniqueIndex;size:120;not null"`
	Description  string `gorm:"type:text"`
	ContactEmail string `gorm:"size:254"`
	Active       bool   `gorm:"not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (ProjectModel) TableName() string { return constants.TableProjects }

type CategoryModel struct {
	ID          uint   `gorm:"primaryKey"`
	ProjectID   uint   `gorm:"not null;index"`
	Name        string `gorm:"size:120;not null"`
	Description string `gorm:"type:text"`
	Active      bool   `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (CategoryModel) TableName() string { return constants.TableCategories }

type StatusModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:60;not null"`
	Code      string `gorm:"uniqueIndex;size:40;not null"`
	Color     string `gorm:"size:7;not null"`
	IsDefault bool   `gorm:"not null"`
	Resolved  bool   `gorm:"not null"`
	Closed    bool   `gorm:"not null"`
	SortOrder int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (StatusModel) TableName() string { return constants.TableStatuses }

type PriorityModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:60;not null"`
	Code      string `gorm:"uniqueIndex;size:40;not null"`
	Color     string `gorm:"size:7;not null"`
	SortOrder int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PriorityModel) TableName() string { return constants.TablePriorities }

type FieldTemplateModel struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"uniqueIndex;size:60;not null"`
	LabelDefault string `gorm:"size:120;not null"`
	FieldType    string `gorm:"size:10;not null"`
	HelpDefault  string `gorm:"type:text"`
	ChoicesJSON  string `gorm:"type:text"`
	Active       bool   `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (FieldTemplateModel) TableName() string { return constants.TableFieldTemplates }

type FormFieldModel struct {
	ID            uint   `gorm:"primaryKey"`
	CategoryID    uint   `gorm:"not null;uniqueIndex:uniq_category_template"`
	TemplateID    uint   `gorm:"not null;uniqueIndex:uniq_category_template;index"`
	LabelOverride string `gorm:"size:120"`
	HelpOverride  string `gorm:"type:text"`
	Required      bool   `gorm:"not null"`
	DisplayOrder  int    `gorm:"not null;default:0"`
	Active        bool   `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (FormFieldModel) TableName() string { return constants.TableCustomFormFields }
