package catalog

import (
	"context"

	"deskhub/internal/application/catalog/dto"
	"deskhub/internal/domain/catalog"
	"deskhub/internal/shared/errors"
	"deskhub/internal/shared/logger"
)

type CreateCategoryCommand struct {
	ProjectID   uint
	Name        string
	Description string
}

type UpdateCategoryCommand struct {
	ID          uint
	Name        string
	Description string
	Active      bool
}

type CategoryService struct {
	categoryRepo  catalog.CategoryRepository
	projectRepo   catalog.ProjectRepository
	formFieldRepo catalog.FormFieldRepository
	tickets       TicketReferenceChecker
	logger        logger.Interface
}

func NewCategoryService(
	categoryRepo catalog.CategoryRepository,
	projectRepo catalog.ProjectRepository,
	formFieldRepo catalog.FormFieldRepository,
	tickets TicketReferenceChecker,
	logger logger.Interface,
) *CategoryService {
	return &CategoryService{
		categoryRepo:  categoryRepo,
		projectRepo:   projectRepo,
		formFieldRepo: formFieldRepo,
		tickets:       tickets,
		logger:        logger,
	}
}

func (s *CategoryService) Create(ctx context.Context, cmd CreateCategoryCommand) (*dto.CategoryDTO, error) {
	project, err := s.projectRepo.GetByID(ctx, cmd.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, errors.NewNotFoundError("project not found")
	}

	category, err := catalog.NewCategory(cmd.ProjectID, cmd.Name, cmd.Description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		s.logger.Errorw("failed to save category", "project_id", cmd.ProjectID, "name", cmd.Name, "error", err)
		return nil, err
	}

	s.logger.Infow("category created", "category_id", category.ID(), "project_id", cmd.ProjectID)
	return dto.ToCategoryDTO(category), nil
}

func (s *CategoryService) Update(ctx context.Context, cmd UpdateCategoryCommand) (*dto.CategoryDTO, error) {
	category, err := s.categoryRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, errors.NewNotFoundError("category not found")
	}

	if err := category.Rename(cmd.Name); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	category.UpdateDescription(cmd.Description)
	if cmd.Active {
		category.Activate()
	} else {
		category.Deactivate()
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		s.logger.Errorw("failed to update category", "category_id", cmd.ID, "error", err)
		return nil, err
	}
	return dto.ToCategoryDTO(category), nil
}

// Delete refuses while tickets reference the category; its field bindings are
// removed along with it.
func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return errors.NewNotFoundError("category not found")
	}

	count, err := s.tickets.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.NewConflictError("category has tickets and cannot be deleted")
	}

	if err := s.formFieldRepo.DeleteByCategory(ctx, id); err != nil {
		s.logger.Errorw("failed to delete category field bindings", "category_id", id, "error", err)
		return err
	}
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		s.logger.Errorw("failed to delete category", "category_id", id, "error", err)
		return err
	}
	s.logger.Infow("category deleted", "category_id", id)
	return nil
}

func (s *CategoryService) Get(ctx context.Context, id uint) (*dto.CategoryDTO, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, errors.NewNotFoundError("category not found")
	}
	return dto.ToCategoryDTO(category), nil
}

func (s *CategoryService) List(ctx context.Context) ([]*dto.CategoryDTO, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toCategoryDTOs(categories), nil
}

func (s *CategoryService) ListByProject(ctx context.Context, projectID uint) ([]*dto.CategoryDTO, error) {
	categories, err := s.categoryRepo.ListByProject(ctx, projectID, false)
	if err != nil {
		return nil, err
	}
	return toCategoryDTOs(categories), nil
}

// ListPublic returns the active categories of active projects, the set the
// anonymous intake surface may submit against.
func (s *CategoryService) ListPublic(ctx context.Context) ([]*dto.CategoryDTO, error) {
	projects, err := s.projectRepo.List(ctx, true)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CategoryDTO, 0)
	for _, p := range projects {
		categories, err := s.categoryRepo.ListByProject(ctx, p.ID(), true)
		if err != nil {
			return nil, err
		}
		result = append(result, toCategoryDTOs(categories)...)
	}
	return result, nil
}

func toCategoryDTOs(categories []*catalog.Category) []*dto.CategoryDTO {
	result := make([]*dto.CategoryDTO, 0, len(categories))
	for _, c := range categories {
		result = append(result, dto.ToCategoryDTO(c))
	}
	return result
}
