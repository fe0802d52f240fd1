package catalog

import (
	"context"

	"deskhub/internal/application/catalog/dto"
	"deskhub/internal/domain/catalog"
	"deskhub/internal/shared/errors"
	"deskhub/internal/shared/logger"
)

type CreatePriorityCommand struct {
	Name      string
	Code      string
	Color     string
	SortOrder int
}

type UpdatePriorityCommand struct {
	ID        uint
	Name      string
	Color     string
	SortOrder int
}

type PriorityService struct {
	priorityRepo catalog.PriorityRepository
	tickets      TicketReferenceChecker
	logger       logger.Interface
}

func NewPriorityService(
	priorityRepo catalog.PriorityRepository,
	tickets TicketReferenceChecker,
	logger logger.Interface,
) *PriorityService {
	return &PriorityService{priorityRepo: priorityRepo, tickets: tickets, logger: logger}
}

func (s *PriorityService) Create(ctx context.Context, cmd CreatePriorityCommand) (*dto.PriorityDTO, error) {
	existing, err := s.priorityRepo.GetByCode(ctx, cmd.Code)
	if err != nil && !errors.IsNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError("a priority with this code already exists")
	}

	priority, err := catalog.NewPriority(cmd.Name, cmd.Code, cmd.Color, cmd.SortOrder)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.priorityRepo.Save(ctx, priority); err != nil {
		s.logger.Errorw("failed to save priority", "code", cmd.Code, "error", err)
		return nil, err
	}
	s.logger.Infow("priority created", "priority_id", priority.ID(), "code", priority.Code())
	return dto.ToPriorityDTO(priority), nil
}

func (s *PriorityService) Update(ctx context.Context, cmd UpdatePriorityCommand) (*dto.PriorityDTO, error) {
	priority, err := s.priorityRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}
	if priority == nil {
		return nil, errors.NewNotFoundError("priority not found")
	}

	if err := priority.Update(cmd.Name, cmd.Color, cmd.SortOrder); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.priorityRepo.Update(ctx, priority); err != nil {
		s.logger.Errorw("failed to update priority", "priority_id", cmd.ID, "error", err)
		return nil, err
	}
	return dto.ToPriorityDTO(priority), nil
}

// Delete refuses while tickets reference the priority. The normal priority is
// kept as the intake fallback.
func (s *PriorityService) Delete(ctx context.Context, id uint) error {
	priority, err := s.priorityRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if priority == nil {
		return errors.NewNotFoundError("priority not found")
	}
	if priority.Code() == catalog.PriorityCodeNormal {
		return errors.NewConflictError("the normal priority is required and cannot be deleted")
	}

	count, err := s.tickets.CountByPriority(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.NewConflictError("priority is used by tickets and cannot be deleted")
	}

	if err := s.priorityRepo.Delete(ctx, id); err != nil {
		s.logger.Errorw("failed to delete priority", "priority_id", id, "error", err)
		return err
	}
	s.logger.Infow("priority deleted", "priority_id", id)
	return nil
}

func (s *PriorityService) List(ctx context.Context) ([]*dto.PriorityDTO, error) {
	priorities, err := s.priorityRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.PriorityDTO, 0, len(priorities))
	for _, p := range priorities {
		result = append(result, dto.ToPriorityDTO(p))
	}
	return result, nil
}
