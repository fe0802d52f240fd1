package catalog

import (
	"context"

	"deskhub/internal/application/catalog/dto"
	"deskhub/internal/domain/catalog"
	"deskhub/internal/shared/errors"
	"deskhub/internal/shared/logger"
)

type CreateFieldTemplateCommand struct {
	Name         string
	LabelDefault string
	FieldType    string
	HelpDefault  string
	ChoicesJSON  string
}

type UpdateFieldTemplateCommand struct {
	ID           uint
	LabelDefault string
	HelpDefault  string
	ChoicesJSON  string
	Active       bool
}

type FieldTemplateService struct {
	templateRepo  catalog.FieldTemplateRepository
	formFieldRepo catalog.FormFieldRepository
	logger        logger.Interface
}

func NewFieldTemplateService(
	templateRepo catalog.FieldTemplateRepository,
	formFieldRepo catalog.FormFieldRepository,
	logger logger.Interface,
) *FieldTemplateService {
	return &FieldTemplateService{
		templateRepo:  templateRepo,
		formFieldRepo: formFieldRepo,
		logger:        logger,
	}
}

func (s *FieldTemplateService) Create(ctx context.Context, cmd CreateFieldTemplateCommand) (*dto.FieldTemplateDTO, error) {
	fieldType, err := catalog.NewFieldType(cmd.FieldType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	existing, err := s.templateRepo.GetByName(ctx, cmd.Name)
	if err != nil && !errors.IsNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError("a field template with this name already exists")
	}

	template, err := catalog.NewFieldTemplate(cmd.Name, cmd.LabelDefault, fieldType, cmd.HelpDefault, cmd.ChoicesJSON)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.templateRepo.Save(ctx, template); err != nil {
		s.logger.Errorw("failed to save field template", "name", cmd.Name, "error", err)
		return nil, err
	}
	s.logger.Infow("field template created", "template_id", template.ID(), "name", template.Name())
	return dto.ToFieldTemplateDTO(template), nil
}

func (s *FieldTemplateService) Update(ctx context.Context, cmd UpdateFieldTemplateCommand) (*dto.FieldTemplateDTO, error) {
	template, err := s.templateRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, errors.NewNotFoundError("field template not found")
	}

	if err := template.Update(cmd.LabelDefault, cmd.HelpDefault, cmd.ChoicesJSON); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.Active {
		template.Activate()
	} else {
		template.Deactivate()
	}

	if err := s.templateRepo.Update(ctx, template); err != nil {
		s.logger.Errorw("failed to update field template", "template_id", cmd.ID, "error", err)
		return nil, err
	}
	return dto.ToFieldTemplateDTO(template), nil
}

// Delete refuses while category bindings still reference the template.
func (s *FieldTemplateService) Delete(ctx context.Context, id uint) error {
	template, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if template == nil {
		return errors.NewNotFoundError("field template not found")
	}

	count, err := s.formFieldRepo.CountByTemplate(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.NewConflictError("field template is bound to categories and cannot be deleted")
	}

	if err := s.templateRepo.Delete(ctx, id); err != nil {
		s.logger.Errorw("failed to delete field template", "template_id", id, "error", err)
		return err
	}
	s.logger.Infow("field template deleted", "template_id", id)
	return nil
}

func (s *FieldTemplateService) Get(ctx context.Context, id uint) (*dto.FieldTemplateDTO, error) {
	template, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, errors.NewNotFoundError("field template not found")
	}
	return dto.ToFieldTemplateDTO(template), nil
}

func (s *FieldTemplateService) List(ctx context.Context, activeOnly bool) ([]*dto.FieldTemplateDTO, error) {
	templates, err := s.templateRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.FieldTemplateDTO, 0, len(templates))
	for _, t := range templates {
		result = append(result, dto.ToFieldTemplateDTO(t))
	}
	return result, nil
}
