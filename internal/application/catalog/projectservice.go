package catalog

import (
	"context"

	"deskhub/internal/application/catalog/dto"
	"deskhub/internal/domain/catalog"
	"deskhub/internal/shared/errors"
	"deskhub/internal/shared/logger"
)

type CreateProjectCommand struct {
	Name         string
	Description  string
	ContactEmail string
}

type UpdateProjectCommand struct {
	ID           uint
	Name         string
	Description  string
	ContactEmail string
	Active       bool
}

type ProjectService struct {
	projectRepo  catalog.ProjectRepository
	categoryRepo catalog.CategoryRepository
	tickets      TicketReferenceChecker
	logger       logger.Interface
}

func NewProjectService(
	projectRepo catalog.ProjectRepository,
	categoryRepo catalog.CategoryRepository,
	tickets TicketReferenceChecker,
	logger logger.Interface,
) *ProjectService {
	return &ProjectService{
		projectRepo:  projectRepo,
		categoryRepo: categoryRepo,
		tickets:      tickets,
		logger:       logger,
	}
}

func (s *ProjectService) Create(ctx context.Context, cmd CreateProjectCommand) (*dto.ProjectDTO, error) {
	existing, err := s.projectRepo.GetByName(ctx, cmd.Name)
	if err != nil && !errors.IsNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError("a project with this name already exists")
	}

	project, err := catalog.NewProject(cmd.Name, cmd.Description, cmd.ContactEmail)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.projectRepo.Save(ctx, project); err != nil {
		s.logger.Errorw("failed to save project", "name", cmd.Name, "error", err)
		return nil, err
	}

	s.logger.Infow("project created", "project_id", project.ID(), "name", project.Name())
	return dto.ToProjectDTO(project), nil
}

func (s *ProjectService) Update(ctx context.Context, cmd UpdateProjectCommand) (*dto.ProjectDTO, error) {
	project, err := s.projectRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, errors.NewNotFoundError("project not found")
	}

	if err := project.Rename(cmd.Name); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	project.UpdateDetails(cmd.Description, cmd.ContactEmail)
	if cmd.Active {
		project.Activate()
	} else {
		project.Deactivate()
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		s.logger.Errorw("failed to update project", "project_id", cmd.ID, "error", err)
		return nil, err
	}
	return dto.ToProjectDTO(project), nil
}

// Delete refuses while tickets or categories still reference the project.
func (s *ProjectService) Delete(ctx context.Context, id uint) error {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if project == nil {
		return errors.NewNotFoundError("project not found")
	}

	count, err := s.tickets.CountByProject(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.NewConflictError("project has tickets and cannot be deleted")
	}

	categories, err := s.categoryRepo.ListByProject(ctx, id, false)
	if err != nil {
		return err
	}
	if len(categories) > 0 {
		return errors.NewConflictError("project has categories; delete them first")
	}

	if err := s.projectRepo.Delete(ctx, id); err != nil {
		s.logger.Errorw("failed to delete project", "project_id", id, "error", err)
		return err
	}
	s.logger.Infow("project deleted", "project_id", id)
	return nil
}

func (s *ProjectService) Get(ctx context.Context, id uint) (*dto.ProjectDTO, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, errors.NewNotFoundError("project not found")
	}
	return dto.ToProjectDTO(project), nil
}

func (s *ProjectService) List(ctx context.Context, activeOnly bool) ([]*dto.ProjectDTO, error) {
	projects, err := s.projectRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.ProjectDTO, 0, len(projects))
	for _, p := range projects {
		result = append(result, dto.ToProjectDTO(p))
	}
	return result, nil
}
