package catalog

import (
	"context"

	"deskhub/internal/application/catalog/dto"
	"deskhub/internal/domain/catalog"
	"deskhub/internal/shared/errors"
	"deskhub/internal/shared/logger"
)

type CreateFormFieldCommand struct {
	CategoryID    uint
	TemplateID    uint
	LabelOverride string
	HelpOverride  string
	Required      bool
	DisplayOrder  int
}

type UpdateFormFieldCommand struct {
	ID            uint
	LabelOverride string
	HelpOverride  string
	Required      bool
	DisplayOrder  int
	Active        bool
}

// FormFieldService manages the per-category field bindings that make up each
// intake form.
type FormFieldService struct {
	formFieldRepo catalog.FormFieldRepository
	categoryRepo  catalog.CategoryRepository
	templateRepo  catalog.FieldTemplateRepository
	txRunner      TransactionRunner
	logger        logger.Interface
}

func NewFormFieldService(
	formFieldRepo catalog.FormFieldRepository,
	categoryRepo catalog.CategoryRepository,
	templateRepo catalog.FieldTemplateRepository,
	txRunner TransactionRunner,
	logger logger.Interface,
) *FormFieldService {
	return &FormFieldService{
		formFieldRepo: formFieldRepo,
		categoryRepo:  categoryRepo,
		templateRepo:  templateRepo,
		txRunner:      txRunner,
		logger:        logger,
	}
}

func (s *FormFieldService) Create(ctx context.Context, cmd CreateFormFieldCommand) (*dto.FormFieldDTO, error) {
	category, err := s.categoryRepo.GetByID(ctx, cmd.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, errors.NewNotFoundError("category not found")
	}

	template, err := s.templateRepo.GetByID(ctx, cmd.TemplateID)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, errors.NewNotFoundError("field template not found")
	}
	if !template.IsActive() {
		return nil, errors.NewValidationError("field template is inactive")
	}

	for _, existing := range category.Fields() {
		if existing.TemplateID() == cmd.TemplateID {
			return nil, errors.NewConflictError("this field is already bound to the category")
		}
	}

	binding, err := catalog.NewFormField(cmd.CategoryID, cmd.TemplateID, cmd.LabelOverride, cmd.HelpOverride, cmd.Required, cmd.DisplayOrder)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.formFieldRepo.Save(ctx, binding); err != nil {
		s.logger.Errorw("failed to save form field binding", "category_id", cmd.CategoryID, "template_id", cmd.TemplateID, "error", err)
		return nil, err
	}

	binding.AttachTemplate(template)
	s.logger.Infow("form field bound", "binding_id", binding.ID(), "category_id", cmd.CategoryID, "field", binding.Name())
	return dto.ToFormFieldDTO(binding), nil
}

func (s *FormFieldService) Update(ctx context.Context, cmd UpdateFormFieldCommand) (*dto.FormFieldDTO, error) {
	binding, err := s.formFieldRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}
	if binding == nil {
		return nil, errors.NewNotFoundError("form field binding not found")
	}

	binding.Update(cmd.LabelOverride, cmd.HelpOverride, cmd.Required, cmd.DisplayOrder, cmd.Active)

	if err := s.formFieldRepo.Update(ctx, binding); err != nil {
		s.logger.Errorw("failed to update form field binding", "binding_id", cmd.ID, "error", err)
		return nil, err
	}
	return dto.ToFormFieldDTO(binding), nil
}

func (s *FormFieldService) Delete(ctx context.Context, id uint) error {
	binding, err := s.formFieldRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if binding == nil {
		return errors.NewNotFoundError("form field binding not found")
	}
	if err := s.formFieldRepo.Delete(ctx, id); err != nil {
		s.logger.Errorw("failed to delete form field binding", "binding_id", id, "error", err)
		return err
	}
	s.logger.Infow("form field binding deleted", "binding_id", id)
	return nil
}

// Reorder rewrites the display order of a category's bindings to match the
// given ID sequence. Every binding of the category must appear exactly once.
func (s *FormFieldService) Reorder(ctx context.Context, categoryID uint, orderedIDs []uint) ([]*dto.FormFieldDTO, error) {
	bindings, err := s.formFieldRepo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if len(bindings) == 0 {
		return nil, errors.NewNotFoundError("category has no form field bindings")
	}
	if len(orderedIDs) != len(bindings) {
		return nil, errors.NewValidationError("ordering must include every binding of the category exactly once")
	}

	byID := make(map[uint]*catalog.FormField, len(bindings))
	for _, b := range bindings {
		byID[b.ID()] = b
	}

	reordered := make([]*catalog.FormField, 0, len(orderedIDs))
	for position, id := range orderedIDs {
		b, ok := byID[id]
		if !ok {
			return nil, errors.NewValidationError("ordering references a binding outside the category")
		}
		delete(byID, id)
		b.Update(b.LabelOverride(), b.HelpOverride(), b.IsRequired(), position+1, b.IsActive())
		reordered = append(reordered, b)
	}

	// All rows move together or not at all; a partial write would leave the
	// form with duplicate positions.
	err = s.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		for _, b := range reordered {
			if err := s.formFieldRepo.Update(txCtx, b); err != nil {
				s.logger.Errorw("failed to persist form field order", "binding_id", b.ID(), "error", err)
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.FormFieldDTO, 0, len(reordered))
	for _, b := range reordered {
		result = append(result, dto.ToFormFieldDTO(b))
	}
	return result, nil
}

func (s *FormFieldService) ListByCategory(ctx context.Context, categoryID uint) ([]*dto.FormFieldDTO, error) {
	bindings, err := s.formFieldRepo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.FormFieldDTO, 0, len(bindings))
	for _, b := range bindings {
		result = append(result, dto.ToFormFieldDTO(b))
	}
	return result, nil
}
