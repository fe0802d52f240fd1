package catalog

import "context"

type ProjectRepository interface {
	Save(ctx context.Context, p *Project) error
	Update(ctx context.Context, p *Project) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Project, error)
	GetByName(ctx context.Context, name string) (*Project, error)
	List(ctx context.Context, activeOnly bool) ([]*Project, error)
}

type CategoryRepository interface {
	Save(ctx context.Context, c *Category) error
	Update(ctx context.Context, c *Category) error
	Delete(ctx context.Context, id uint) error
	// GetByID loads the category together with its field bindings and their
	// templates, ordered by display position.
	GetByID(ctx context.Context, id uint) (*Category, error)
	List(ctx context.Context) ([]*Category, error)
	ListByProject(ctx context.Context, projectID uint, activeOnly bool) ([]*Category, error)
	ListActive(ctx context.Context) ([]*Category, error)
}

type StatusRepository interface {
	Save(ctx context.Context, s *Status) error
	Update(ctx context.Context, s *Status) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Status, error)
	GetByCode(ctx context.Context, code string) (*Status, error)
	// GetDefault returns the single default status; zero or multiple defaults
	// yield a typed error.
	GetDefault(ctx context.Context) (*Status, error)
	List(ctx context.Context) ([]*Status, error)
}

type PriorityRepository interface {
	Save(ctx context.Context, p *Priority) error
	Update(ctx context.Context, p *Priority) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Priority, error)
	GetByCode(ctx context.Context, code string) (*Priority, error)
	List(ctx context.Context) ([]*Priority, error)
}

type FieldTemplateRepository interface {
	Save(ctx context.Context, t *FieldTemplate) error
	Update(ctx context.Context, t *FieldTemplate) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*FieldTemplate, error)
	GetByName(ctx context.Context, name string) (*FieldTemplate, error)
	List(ctx context.Context, activeOnly bool) ([]*FieldTemplate, error)
}

type FormFieldRepository interface {
	Save(ctx context.Context, f *FormField) error
	Update(ctx context.Context, f *FormField) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*FormField, error)
	// ListByCategory returns all bindings of a category with templates loaded,
	// ordered by display position.
	ListByCategory(ctx context.Context, categoryID uint) ([]*FormField, error)
	// DeleteByCategory removes all of a category's bindings.
	DeleteByCategory(ctx context.Context, categoryID uint) error
	CountByTemplate(ctx context.Context, templateID uint) (int64, error)
}
