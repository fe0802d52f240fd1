package catalog

import (
	"context"

	"deskhub/internal/domain/catalog"
)

type mockProjectRepository struct {
	SaveFunc      func(ctx context.Context, p *catalog.Project) error
	UpdateFunc    func(ctx context.Context, p *catalog.Project) error
	DeleteFunc    func(ctx context.Context, id uint) error
	GetByIDFunc   func(ctx context.Context, id uint) (*catalog.Project, error)
	GetByNameFunc func(ctx context.Context, name string) (*catalog.Project, error)
	ListFunc      func(ctx context.Context, activeOnly bool) ([]*catalog.Project, error)
}

func (m *mockProjectRepository) Save(ctx context.Context, p *catalog.Project) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockProjectRepository) Update(ctx context.Context, p *catalog.Project) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockProjectRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockProjectRepository) GetByID(ctx context.Context, id uint) (*catalog.Project, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockProjectRepository) GetByName(ctx context.Context, name string) (*catalog.Project, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockProjectRepository) List(ctx context.Context, activeOnly bool) ([]*catalog.Project, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, activeOnly)
	}
	return nil, nil
}

type mockCategoryRepository struct {
	SaveFunc          func(ctx context.Context, c *catalog.Category) error
	UpdateFunc        func(ctx context.Context, c *catalog.Category) error
	DeleteFunc        func(ctx context.Context, id uint) error
	GetByIDFunc       func(ctx context.Context, id uint) (*catalog.Category, error)
	ListFunc          func(ctx context.Context) ([]*catalog.Category, error)
	ListByProjectFunc func(ctx context.Context, projectID uint, activeOnly bool) ([]*catalog.Category, error)
	ListActiveFunc    func(ctx context.Context) ([]*catalog.Category, error)
}

func (m *mockCategoryRepository) Save(ctx context.Context, c *catalog.Category) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockCategoryRepository) Update(ctx context.Context, c *catalog.Category) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCategoryRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockCategoryRepository) GetByID(ctx context.Context, id uint) (*catalog.Category, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCategoryRepository) List(ctx context.Context) ([]*catalog.Category, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockCategoryRepository) ListByProject(ctx context.Context, projectID uint, activeOnly bool) ([]*catalog.Category, error) {
	if m.ListByProjectFunc != nil {
		return m.ListByProjectFunc(ctx, projectID, activeOnly)
	}
	return nil, nil
}

func (m *mockCategoryRepository) ListActive(ctx context.Context) ([]*catalog.Category, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

type mockStatusRepository struct {
	SaveFunc       func(ctx context.Context, s *catalog.Status) error
	UpdateFunc     func(ctx context.Context, s *catalog.Status) error
	DeleteFunc     func(ctx context.Context, id uint) error
	GetByIDFunc    func(ctx context.Context, id uint) (*catalog.Status, error)
	GetByCodeFunc  func(ctx context.Context, code string) (*catalog.Status, error)
	GetDefaultFunc func(ctx context.Context) (*catalog.Status, error)
	ListFunc       func(ctx context.Context) ([]*catalog.Status, error)
}

func (m *mockStatusRepository) Save(ctx context.Context, s *catalog.Status) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, s)
	}
	return nil
}

func (m *mockStatusRepository) Update(ctx context.Context, s *catalog.Status) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, s)
	}
	return nil
}

func (m *mockStatusRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockStatusRepository) GetByID(ctx context.Context, id uint) (*catalog.Status, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockStatusRepository) GetByCode(ctx context.Context, code string) (*catalog.Status, error) {
	if m.GetByCodeFunc != nil {
		return m.GetByCodeFunc(ctx, code)
	}
	return nil, nil
}

func (m *mockStatusRepository) GetDefault(ctx context.Context) (*catalog.Status, error) {
	if m.GetDefaultFunc != nil {
		return m.GetDefaultFunc(ctx)
	}
	return nil, nil
}

func (m *mockStatusRepository) List(ctx context.Context) ([]*catalog.Status, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockPriorityRepository struct {
	SaveFunc      func(ctx context.Context, p *catalog.Priority) error
	UpdateFunc    func(ctx context.Context, p *catalog.Priority) error
	DeleteFunc    func(ctx context.Context, id uint) error
	GetByIDFunc   func(ctx context.Context, id uint) (*catalog.Priority, error)
	GetByCodeFunc func(ctx context.Context, code string) (*catalog.Priority, error)
	ListFunc      func(ctx context.Context) ([]*catalog.Priority, error)
}

func (m *mockPriorityRepository) Save(ctx context.Context, p *catalog.Priority) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockPriorityRepository) Update(ctx context.Context, p *catalog.Priority) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockPriorityRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockPriorityRepository) GetByID(ctx context.Context, id uint) (*catalog.Priority, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPriorityRepository) GetByCode(ctx context.Context, code string) (*catalog.Priority, error) {
	if m.GetByCodeFunc != nil {
		return m.GetByCodeFunc(ctx, code)
	}
	return nil, nil
}

func (m *mockPriorityRepository) List(ctx context.Context) ([]*catalog.Priority, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockFieldTemplateRepository struct {
	SaveFunc      func(ctx context.Context, t *catalog.FieldTemplate) error
	UpdateFunc    func(ctx context.Context, t *catalog.FieldTemplate) error
	DeleteFunc    func(ctx context.Context, id uint) error
	GetByIDFunc   func(ctx context.Context, id uint) (*catalog.FieldTemplate, error)
	GetByNameFunc func(ctx context.Context, name string) (*catalog.FieldTemplate, error)
	ListFunc      func(ctx context.Context, activeOnly bool) ([]*catalog.FieldTemplate, error)
}

func (m *mockFieldTemplateRepository) Save(ctx context.Context, t *catalog.FieldTemplate) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockFieldTemplateRepository) Update(ctx context.Context, t *catalog.FieldTemplate) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockFieldTemplateRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockFieldTemplateRepository) GetByID(ctx context.Context, id uint) (*catalog.FieldTemplate, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockFieldTemplateRepository) GetByName(ctx context.Context, name string) (*catalog.FieldTemplate, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockFieldTemplateRepository) List(ctx context.Context, activeOnly bool) ([]*catalog.FieldTemplate, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, activeOnly)
	}
	return nil, nil
}

type mockFormFieldRepository struct {
	SaveFunc             func(ctx context.Context, f *catalog.FormField) error
	UpdateFunc           func(ctx context.Context, f *catalog.FormField) error
	DeleteFunc           func(ctx context.Context, id uint) error
	GetByIDFunc          func(ctx context.Context, id uint) (*catalog.FormField, error)
	ListByCategoryFunc   func(ctx context.Context, categoryID uint) ([]*catalog.FormField, error)
	DeleteByCategoryFunc func(ctx context.Context, categoryID uint) error
	CountByTemplateFunc  func(ctx context.Context, templateID uint) (int64, error)
}

func (m *mockFormFieldRepository) Save(ctx context.Context, f *catalog.FormField) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, f)
	}
	return nil
}

func (m *mockFormFieldRepository) Update(ctx context.Context, f *catalog.FormField) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, f)
	}
	return nil
}

func (m *mockFormFieldRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockFormFieldRepository) GetByID(ctx context.Context, id uint) (*catalog.FormField, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockFormFieldRepository) ListByCategory(ctx context.Context, categoryID uint) ([]*catalog.FormField, error) {
	if m.ListByCategoryFunc != nil {
		return m.ListByCategoryFunc(ctx, categoryID)
	}
	return nil, nil
}

func (m *mockFormFieldRepository) DeleteByCategory(ctx context.Context, categoryID uint) error {
	if m.DeleteByCategoryFunc != nil {
		return m.DeleteByCategoryFunc(ctx, categoryID)
	}
	return nil
}

func (m *mockFormFieldRepository) CountByTemplate(ctx context.Context, templateID uint) (int64, error) {
	if m.CountByTemplateFunc != nil {
		return m.CountByTemplateFunc(ctx, templateID)
	}
	return 0, nil
}

type mockTicketCounter struct {
	CountByProjectFunc  func(ctx context.Context, projectID uint) (int64, error)
	CountByCategoryFunc func(ctx context.Context, categoryID uint) (int64, error)
	CountByStatusFunc   func(ctx context.Context, statusID uint) (int64, error)
	CountByPriorityFunc func(ctx context.Context, priorityID uint) (int64, error)
}

func (m *mockTicketCounter) CountByProject(ctx context.Context, projectID uint) (int64, error) {
	if m.CountByProjectFunc != nil {
		return m.CountByProjectFunc(ctx, projectID)
	}
	return 0, nil
}

func (m *mockTicketCounter) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	if m.CountByCategoryFunc != nil {
		return m.CountByCategoryFunc(ctx, categoryID)
	}
	return 0, nil
}

func (m *mockTicketCounter) CountByStatus(ctx context.Context, statusID uint) (int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx, statusID)
	}
	return 0, nil
}

func (m *mockTicketCounter) CountByPriority(ctx context.Context, priorityID uint) (int64, error) {
	if m.CountByPriorityFunc != nil {
		return m.CountByPriorityFunc(ctx, priorityID)
	}
	return 0, nil
}

type mockTxRunner struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}
