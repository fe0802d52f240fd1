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

type CategoryRepository struct {
	db             *gorm.DB
	mapper         mappers.CategoryMapper
	fieldMapper    mappers.FormFieldMapper
	templateMapper mappers.FieldTemplateMapper
}

func NewCategoryRepository(gdb *gorm.DB) *CategoryRepository {
	return &CategoryRepository{
		db:             gdb,
		mapper:         mappers.NewCategoryMapper(),
		fieldMapper:    mappers.NewFormFieldMapper(),
		templateMapper: mappers.NewFieldTemplateMapper(),
	}
}

func (r *CategoryRepository) Save(ctx context.Context, c *catalog.Category) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save category: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *CategoryRepository) Update(ctx context.Context, c *catalog.Category) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.CategoryModel{}).
		Where("id = ?", model.ID).
		Select("ProjectID", "Name", "Description", "Active", "UpdatedAt").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update category: %w", result.Error)
	}

	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Delete(&models.CategoryModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uint) (*catalog.Category, error) {
	var model models.CategoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		return nil, err
	}

	fields, err := r.loadFields(ctx, entity.ID())
	if err != nil {
		return nil, err
	}
	entity.AttachFields(fields)

	return entity, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]*catalog.Category, error) {
	return r.list(ctx, nil)
}

func (r *CategoryRepository) ListByProject(ctx context.Context, projectID uint, activeOnly bool) ([]*catalog.Category, error) {
	conds := map[string]interface{}{"project_id": projectID}
	if activeOnly {
		conds["active"] = true
	}
	return r.list(ctx, conds)
}

func (r *CategoryRepository) ListActive(ctx context.Context) ([]*catalog.Category, error) {
	return r.list(ctx, map[string]interface{}{"active": true})
}

func (r *CategoryRepository) list(ctx context.Context, conds map[string]interface{}) ([]*catalog.Category, error) {
	var modelList []*models.CategoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Order("name ASC")
	if len(conds) > 0 {
		query = query.Where(conds)
	}
	if err := query.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

// loadFields loads the category's bindings with their templates, ordered by
// display position.
func (r *CategoryRepository) loadFields(ctx context.Context, categoryID uint) ([]*catalog.FormField, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var fieldModels []*models.FormFieldModel
	if err := tx.
		Where("category_id = ?", categoryID).
		Order("display_order ASC, id ASC").
		Find(&fieldModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load category fields: %w", err)
	}
	if len(fieldModels) == 0 {
		return nil, nil
	}

	templateIDs := make([]uint, 0, len(fieldModels))
	for _, fm := range fieldModels {
		templateIDs = append(templateIDs, fm.TemplateID)
	}

	var templateModels []*models.FieldTemplateModel
	if err := tx.Where("id IN ?", templateIDs).Find(&templateModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load field templates: %w", err)
	}

	templates := make(map[uint]*catalog.FieldTemplate, len(templateModels))
	for _, tm := range templateModels {
		template, err := r.templateMapper.ToEntity(tm)
		if err != nil {
			return nil, err
		}
		templates[template.ID()] = template
	}

	fields := make([]*catalog.FormField, 0, len(fieldModels))
	for _, fm := range fieldModels {
		field, err := r.fieldMapper.ToEntity(fm)
		if err != nil {
			return nil, err
		}
		if template, ok := templates[field.TemplateID()]; ok {
			field.AttachTemplate(template)
		}
		fields = append(fields, field)
	}

	return fields, nil
}
