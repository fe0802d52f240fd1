package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"deskhub/internal/domain/catalog"
	"deskhub/internal/infrastructure/persistence/mappers"
	"deskhub/internal/infrastructure/persistence/models"
	"deskhub/internal/shared/db"
)

type FormFieldRepository struct {
	db             *gorm.DB
	mapper         mappers.FormFieldMapper
	templateMapper mappers.FieldTemplateMapper
}

func NewFormFieldRepository(gdb *gorm.DB) *FormFieldRepository {
	return &FormFieldRepository{
		db:             gdb,
		mapper:         mappers.NewFormFieldMapper(),
		templateMapper: mappers.NewFieldTemplateMapper(),
	}
}

func (r *FormFieldRepository) Save(ctx context.Context, f *catalog.FormField) error {
	model := r.mapper.ToModel(f)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save form field: %w", err)
	}

	return f.SetID(model.ID)
}

func (r *FormFieldRepository) Update(ctx context.Context, f *catalog.FormField) error {
	model := r.mapper.ToModel(f)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.FormFieldModel{}).
		Where("id = ?", model.ID).
		Select("LabelOverride", "HelpOverride", "Required", "DisplayOrder", "Active", "UpdatedAt").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update form field: %w", result.Error)
	}

	return nil
}

func (r *FormFieldRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Delete(&models.FormFieldModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete form field: %w", err)
	}
	return nil
}

func (r *FormFieldRepository) GetByID(ctx context.Context, id uint) (*catalog.FormField, error) {
	var model models.FormFieldModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get form field: %w", err)
	}

	field, err := r.mapper.ToEntity(&model)
	if err != nil {
		return nil, err
	}

	if err := r.attachTemplates(ctx, []*catalog.FormField{field}); err != nil {
		return nil, err
	}

	return field, nil
}

func (r *FormFieldRepository) ListByCategory(ctx context.Context, categoryID uint) ([]*catalog.FormField, error) {
	var modelList []*models.FormFieldModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("category_id = ?", categoryID).
		Order("display_order ASC, id ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list form fields: %w", err)
	}

	fields, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, err
	}

	if err := r.attachTemplates(ctx, fields); err != nil {
		return nil, err
	}

	return fields, nil
}

func (r *FormFieldRepository) DeleteByCategory(ctx context.Context, categoryID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("category_id = ?", categoryID).
		Delete(&models.FormFieldModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete category form fields: %w", err)
	}
	return nil
}

func (r *FormFieldRepository) CountByTemplate(ctx context.Context, templateID uint) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.FormFieldModel{}).
		Where("template_id = ?", templateID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count template bindings: %w", err)
	}

	return count, nil
}

func (r *FormFieldRepository) attachTemplates(ctx context.Context, fields []*catalog.FormField) error {
	if len(fields) == 0 {
		return nil
	}

	tx := db.GetTxFromContext(ctx, r.db)

	templateIDs := make([]uint, 0, len(fields))
	for _, f := range fields {
		templateIDs = append(templateIDs, f.TemplateID())
	}

	var templateModels []*models.FieldTemplateModel
	if err := tx.Where("id IN ?", templateIDs).Find(&templateModels).Error; err != nil {
		return fmt.Errorf("failed to load field templates: %w", err)
	}

	templates := make(map[uint]*catalog.FieldTemplate, len(templateModels))
	for _, tm := range templateModels {
		template, err := r.templateMapper.ToEntity(tm)
		if err != nil {
			return err
		}
		templates[template.ID()] = template
	}

	for _, f := range fields {
		if template, ok := templates[f.TemplateID()]; ok {
			f.AttachTemplate(template)
		}
	}

	return nil
}
