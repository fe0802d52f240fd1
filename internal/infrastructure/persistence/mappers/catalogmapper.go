// Package mappers converts between domain entities and persistence models.
package mappers

import (
	"fmt"

	"deskhub/internal/domain/catalog"
	"deskhub/internal/infrastructure/persistence/models"
)

type ProjectMapper interface {
	ToModel(p *catalog.Project) *models.ProjectModel
	ToEntity(m *models.ProjectModel) (*catalog.Project, error)
	ToEntities(ms []*models.ProjectModel) ([]*catalog.Project, error)
}

type ProjectMapperImpl struct{}

func NewProjectMapper() ProjectMapper {
	return &ProjectMapperImpl{}
}

func (pm *ProjectMapperImpl) ToModel(p *catalog.Project) *models.ProjectModel {
	return &models.ProjectModel{
		ID:           p.ID(),
		Name:         p.Name(),
		Description:  p.Description(),
		ContactEmail: p.ContactEmail(),
		Active:       p.IsActive(),
		CreatedAt:    p.CreatedAt(),
		UpdatedAt:    p.UpdatedAt(),
	}
}

func (pm *ProjectMapperImpl) ToEntity(m *models.ProjectModel) (*catalog.Project, error) {
	return catalog.ReconstructProject(
		m.ID, m.Name, m.Description, m.ContactEmail, m.Active, m.CreatedAt, m.UpdatedAt,
	)
}

func (pm *ProjectMapperImpl) ToEntities(ms []*models.ProjectModel) ([]*catalog.Project, error) {
	entities := make([]*catalog.Project, 0, len(ms))
	for _, m := range ms {
		entity, err := pm.ToEntity(m)
		if err != nil {
			return nil, fmt.Errorf("failed to map project %d: %w", m.ID, err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

type CategoryMapper interface {
	ToModel(c *catalog.Category) *models.CategoryModel
	ToEntity(m *models.CategoryModel) (*catalog.Category, error)
	ToEntities(ms []*models.CategoryModel) ([]*catalog.Category, error)
}

type CategoryMapperImpl struct{}

func NewCategoryMapper() CategoryMapper {
	return &CategoryMapperImpl{}
}

func (cm *CategoryMapperImpl) ToModel(c *catalog.Category) *models.CategoryModel {
	return &models.CategoryModel{
		ID:          c.ID(),
		ProjectID:   c.ProjectID(),
		Name:        c.Name(),
		Description: c.Description(),
		Active:      c.IsActive(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
	}
}

func (cm *CategoryMapperImpl) ToEntity(m *models.CategoryModel) (*catalog.Category, error) {
	return catalog.ReconstructCategory(
		m.ID, m.ProjectID, m.Name, m.Description, m.Active, m.CreatedAt, m.UpdatedAt,
	)
}

func (cm *CategoryMapperImpl) ToEntities(ms []*models.CategoryModel) ([]*catalog.Category, error) {
	entities := make([]*catalog.Category, 0, len(ms))
	for _, m := range ms {
		entity, err := cm.ToEntity(m)
		if err != nil {
			return nil, fmt.Errorf("failed to map category %d: %w", m.ID, err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

type StatusMapper interface {
	ToModel(s *catalog.Status) *models.StatusModel
	ToEntity(m *models.StatusModel) (*catalog.Status, error)
	ToEntities(ms []*models.StatusModel) ([]*catalog.Status, error)
}

type StatusMapperImpl struct{}

func NewStatusMapper() StatusMapper {
	return &StatusMapperImpl{}
}

func (sm *StatusMapperImpl) ToModel(s *catalog.Status) *models.StatusModel {
	return &models.StatusModel{
		ID:        s.ID(),
		Name:      s.Name(),
		Code:      s.Code(),
		Color:     s.Color(),
		IsDefault: s.IsDefault(),
		Resolved:  s.IsResolved(),
		Closed:    s.IsClosed(),
		SortOrder: s.SortOrder(),
		CreatedAt: s.CreatedAt(),
		UpdatedAt: s.UpdatedAt(),
	}
}

func (sm *StatusMapperImpl) ToEntity(m *models.StatusModel) (*catalog.Status, error) {
	return catalog.ReconstructStatus(
		m.ID, m.Name, m.Code, m.Color, m.IsDefault, m.Resolved, m.Closed, m.SortOrder,
		m.CreatedAt, m.UpdatedAt,
	)
}

func (sm *StatusMapperImpl) ToEntities(ms []*models.StatusModel) ([]*catalog.Status, error) {
	entities := make([]*catalog.Status, 0, len(ms))
	for _, m := range ms {
		entity, err := sm.ToEntity(m)
		if err != nil {
			return nil, fmt.Errorf("failed to map status %d: %w", m.ID, err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

type PriorityMapper interface {
	ToModel(p *catalog.Priority) *models.PriorityModel
	ToEntity(m *models.PriorityModel) (*catalog.Priority, error)
	ToEntities(ms []*models.PriorityModel) ([]*catalog.Priority, error)
}

type PriorityMapperImpl struct{}

func NewPriorityMapper() PriorityMapper {
	return &PriorityMapperImpl{}
}

func (pm *PriorityMapperImpl) ToModel(p *catalog.Priority) *models.PriorityModel {
	return &models.PriorityModel{
		ID:        p.ID(),
		Name:      p.Name(),
		Code:      p.Code(),
		Color:     p.Color(),
		SortOrder: p.SortOrder(),
		CreatedAt: p.CreatedAt(),
		UpdatedAt: p.UpdatedAt(),
	}
}

func (pm *PriorityMapperImpl) ToEntity(m *models.PriorityModel) (*catalog.Priority, error) {
	return catalog.ReconstructPriority(
		m.ID, m.Name, m.Code, m.Color, m.SortOrder, m.CreatedAt, m.UpdatedAt,
	)
}

func (pm *PriorityMapperImpl) ToEntities(ms []*models.PriorityModel) ([]*catalog.Priority, error) {
	entities := make([]*catalog.Priority, 0, len(ms))
	for _, m := range ms {
		entity, err := pm.ToEntity(m)
		if err != nil {
			return nil, fmt.Errorf("failed to map priority %d: %w", m.ID, err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

type FieldTemplateMapper interface {
	ToModel(t *catalog.FieldTemplate) *models.FieldTemplateModel
	ToEntity(m *models.FieldTemplateModel) (*catalog.FieldTemplate, error)
	ToEntities(ms []*models.FieldTemplateModel) ([]*catalog.FieldTemplate, error)
}

type FieldTemplateMapperImpl struct{}

func NewFieldTemplateMapper() FieldTemplateMapper {
	return &FieldTemplateMapperImpl{}
}

func (fm *FieldTemplateMapperImpl) ToModel(t *catalog.FieldTemplate) *models.FieldTemplateModel {
	return &models.FieldTemplateModel{
		ID:           t.ID(),
		Name:         t.Name(),
		LabelDefault: t.LabelDefault(),
		FieldType:    string(t.FieldType()),
		HelpDefault:  t.HelpDefault(),
		ChoicesJSON:  t.ChoicesJSON(),
		Active:       t.IsActive(),
		CreatedAt:    t.CreatedAt(),
		UpdatedAt:    t.UpdatedAt(),
	}
}

func (fm *FieldTemplateMapperImpl) ToEntity(m *models.FieldTemplateModel) (*catalog.FieldTemplate, error) {
	return catalog.ReconstructFieldTemplate(
		m.ID, m.Name, m.LabelDefault, catalog.FieldType(m.FieldType),
		m.HelpDefault, m.ChoicesJSON, m.Active, m.CreatedAt, m.UpdatedAt,
	)
}

func (fm *FieldTemplateMapperImpl) ToEntities(ms []*models.FieldTemplateModel) ([]*catalog.FieldTemplate, error) {
	entities := make([]*catalog.FieldTemplate, 0, len(ms))
	for _, m := range ms {
		entity, err := fm.ToEntity(m)
		if err != nil {
			return nil, fmt.Errorf("failed to map field template %d: %w", m.ID, err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

type FormFieldMapper interface {
	ToModel(f *catalog.FormField) *models.FormFieldModel
	ToEntity(m *models.FormFieldModel) (*catalog.FormField, error)
	ToEntities(ms []*models.FormFieldModel) ([]*catalog.FormField, error)
}

type FormFieldMapperImpl struct{}

func NewFormFieldMapper() FormFieldMapper {
	return &FormFieldMapperImpl{}
}

func (fm *FormFieldMapperImpl) ToModel(f *catalog.FormField) *models.FormFieldModel {
	return &models.FormFieldModel{
		ID:            f.ID(),
		CategoryID:    f.CategoryID(),
		TemplateID:    f.TemplateID(),
		LabelOverride: f.LabelOverride(),
		HelpOverride:  f.HelpOverride(),
		Required:      f.IsRequired(),
		DisplayOrder:  f.DisplayOrder(),
		Active:        f.IsActive(),
		CreatedAt:     f.CreatedAt(),
		UpdatedAt:     f.UpdatedAt(),
	}
}

func (fm *FormFieldMapperImpl) ToEntity(m *models.FormFieldModel) (*catalog.FormField, error) {
	return catalog.ReconstructFormField(
		m.ID, m.CategoryID, m.TemplateID, m.LabelOverride, m.HelpOverride,
		m.Required, m.DisplayOrder, m.Active, m.CreatedAt, m.UpdatedAt,
	)
}

func (fm *FormFieldMapperImpl) ToEntities(ms []*models.FormFieldModel) ([]*catalog.FormField, error) {
	entities := make([]*catalog.FormField, 0, len(ms))
	for _, m := range ms {
		entity, err := fm.ToEntity(m)
		if err != nil {
			return nil, fmt.Errorf("failed to map form field %d: %w", m.ID, err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
