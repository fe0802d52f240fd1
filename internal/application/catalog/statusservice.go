package catalog

import (
	"context"
	"strings"

	"deskhub/internal/application/catalog/dto"
	"deskhub/internal/domain/catalog"
	"deskhub/internal/shared/errors"
	"deskhub/internal/shared/logger"
)

type CreateStatusCommand struct {
	Name      string
	Code      string
	Color     string
	IsDefault bool
	Resolved  bool
	Closed    bool
	SortOrder int
}

type UpdateStatusCommand struct {
	ID        uint
	Name      string
	Color     string
	IsDefault bool
	Resolved  bool
	Closed    bool
	SortOrder int
}

// StatusService guards every mutation with a registry validation pass so the
// status table never loses its required codes or its single default.
type StatusService struct {
	statusRepo catalog.StatusRepository
	tickets    TicketReferenceChecker
	logger     logger.Interface
}

func NewStatusService(
	statusRepo catalog.StatusRepository,
	tickets TicketReferenceChecker,
	logger logger.Interface,
) *StatusService {
	return &StatusService{statusRepo: statusRepo, tickets: tickets, logger: logger}
}

func (s *StatusService) Create(ctx context.Context, cmd CreateStatusCommand) (*dto.StatusDTO, error) {
	status, err := catalog.NewStatus(cmd.Name, cmd.Code, cmd.Color, cmd.IsDefault, cmd.Resolved, cmd.Closed, cmd.SortOrder)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	existing, err := s.statusRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, other := range existing {
		if other.Code() == cmd.Code {
			return nil, errors.NewConflictError("a status with this code already exists")
		}
	}

	demoted, err := s.applyDefaultFlip(existing, 0, cmd.IsDefault)
	if err != nil {
		return nil, err
	}
	if err := catalog.ValidateStatusRegistry(append(existing, status)); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	for _, other := range demoted {
		if err := s.statusRepo.Update(ctx, other); err != nil {
			return nil, err
		}
	}
	if err := s.statusRepo.Save(ctx, status); err != nil {
		s.logger.Errorw("failed to save status", "code", cmd.Code, "error", err)
		return nil, err
	}

	s.logger.Infow("status created", "status_id", status.ID(), "code", status.Code())
	return dto.ToStatusDTO(status), nil
}

func (s *StatusService) Update(ctx context.Context, cmd UpdateStatusCommand) (*dto.StatusDTO, error) {
	statuses, err := s.statusRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	var target *catalog.Status
	for _, st := range statuses {
		if st.ID() == cmd.ID {
			target = st
			break
		}
	}
	if target == nil {
		return nil, errors.NewNotFoundError("status not found")
	}

	if err := target.Update(cmd.Name, cmd.Color, cmd.IsDefault, cmd.Resolved, cmd.Closed, cmd.SortOrder); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	demoted, err := s.applyDefaultFlip(statuses, cmd.ID, cmd.IsDefault)
	if err != nil {
		return nil, err
	}
	if err := catalog.ValidateStatusRegistry(statuses); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	for _, other := range demoted {
		if err := s.statusRepo.Update(ctx, other); err != nil {
			return nil, err
		}
	}
	if err := s.statusRepo.Update(ctx, target); err != nil {
		s.logger.Errorw("failed to update status", "status_id", cmd.ID, "error", err)
		return nil, err
	}
	return dto.ToStatusDTO(target), nil
}

// Delete refuses for statuses still referenced by tickets and for deletions
// that would leave the registry without a required code or a default.
func (s *StatusService) Delete(ctx context.Context, id uint) error {
	statuses, err := s.statusRepo.List(ctx)
	if err != nil {
		return err
	}

	var target *catalog.Status
	remaining := make([]*catalog.Status, 0, len(statuses))
	for _, st := range statuses {
		if st.ID() == id {
			target = st
			continue
		}
		remaining = append(remaining, st)
	}
	if target == nil {
		return errors.NewNotFoundError("status not found")
	}

	count, err := s.tickets.CountByStatus(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.NewConflictError("status is used by tickets and cannot be deleted")
	}

	if err := catalog.ValidateStatusRegistry(remaining); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := s.statusRepo.Delete(ctx, id); err != nil {
		s.logger.Errorw("failed to delete status", "status_id", id, "error", err)
		return err
	}
	s.logger.Infow("status deleted", "status_id", id, "code", target.Code())
	return nil
}

func (s *StatusService) Get(ctx context.Context, id uint) (*dto.StatusDTO, error) {
	status, err := s.statusRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return nil, errors.NewNotFoundError("status not found")
	}
	return dto.ToStatusDTO(status), nil
}

func (s *StatusService) List(ctx context.Context) ([]*dto.StatusDTO, error) {
	statuses, err := s.statusRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.StatusDTO, 0, len(statuses))
	for _, st := range statuses {
		result = append(result, dto.ToStatusDTO(st))
	}
	return result, nil
}

// VerifyWellKnownCodes checks that every workflow code the application relies
// on exists in the status table. Meant to run once at startup, after
// migrations and seeds.
func (s *StatusService) VerifyWellKnownCodes(ctx context.Context) error {
	statuses, err := s.statusRepo.List(ctx)
	if err != nil {
		return err
	}

	present := make(map[catalog.StatusCode]bool, len(statuses))
	for _, st := range statuses {
		present[catalog.StatusCode(st.Code())] = true
	}

	var missing []string
	for _, code := range catalog.RequiredStatusCodes() {
		if !present[code] {
			missing = append(missing, string(code))
		}
	}
	if len(missing) > 0 {
		return errors.NewInternalError("status table is missing required workflow codes", strings.Join(missing, ", "))
	}
	return nil
}

// applyDefaultFlip demotes every other default when the changed status becomes
// the default, and returns the statuses that need persisting.
func (s *StatusService) applyDefaultFlip(statuses []*catalog.Status, changedID uint, becomesDefault bool) ([]*catalog.Status, error) {
	if !becomesDefault {
		return nil, nil
	}
	var demoted []*catalog.Status
	for _, other := range statuses {
		if other.ID() == changedID || !other.IsDefault() {
			continue
		}
		if err := other.Update(other.Name(), other.Color(), false, other.IsResolved(), other.IsClosed(), other.SortOrder()); err != nil {
			return nil, err
		}
		demoted = append(demoted, other)
	}
	return demoted, nil
}
