// Package agent wires agent account administration on top of the domain
// repository: account creation, role and membership management and password
// resets. Login lives in the usecases subpackage.
package agent

import (
	"context"

	"deskhub/internal/application/agent/dto"
	"deskhub/internal/application/agent/usecases"
	"deskhub/internal/domain/agent"
	"deskhub/internal/domain/catalog"
	"deskhub/internal/shared/errors"
	"deskhub/internal/shared/logger"
)

type CreateAgentCommand struct {
	Username   string
	Email      string
	FullName   string
	Password   string
	Role       string
	ProjectIDs []uint
}

type UpdateAgentCommand struct {
	ID       uint
	Email    string
	FullName string
	Role     string
	Active   bool
}

type AdminService struct {
	agentRepo   agent.Repository
	projectRepo catalog.ProjectRepository
	hasher      usecases.PasswordHasher
	logger      logger.Interface
}

func NewAdminService(
	agentRepo agent.Repository,
	projectRepo catalog.ProjectRepository,
	hasher usecases.PasswordHasher,
	logger logger.Interface,
) *AdminService {
	return &AdminService{
		agentRepo:   agentRepo,
		projectRepo: projectRepo,
		hasher:      hasher,
		logger:      logger,
	}
}

func (s *AdminService) Create(ctx context.Context, cmd CreateAgentCommand) (*dto.AgentDTO, error) {
	role, err := agent.ParseRole(cmd.Role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if len(cmd.Password) < 8 {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}

	existing, err := s.agentRepo.GetByUsername(ctx, cmd.Username)
	if err != nil && !errors.IsNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError("an agent with this username already exists")
	}

	hash, err := s.hasher.Hash(cmd.Password)
	if err != nil {
		s.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process password")
	}

	account, err := agent.NewAgent(cmd.Username, cmd.Email, cmd.FullName, hash, role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if len(cmd.ProjectIDs) > 0 {
		if err := s.validateProjects(ctx, cmd.ProjectIDs); err != nil {
			return nil, err
		}
		account.AssignProjects(cmd.ProjectIDs)
	}

	if err := s.agentRepo.Save(ctx, account); err != nil {
		s.logger.Errorw("failed to save agent", "username", cmd.Username, "error", err)
		return nil, err
	}

	s.logger.Infow("agent created", "agent_id", account.ID(), "username", account.Username(), "role", account.Role().String())
	return dto.ToAgentDTO(account), nil
}

func (s *AdminService) Update(ctx context.Context, cmd UpdateAgentCommand) (*dto.AgentDTO, error) {
	account, err := s.get(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	role, err := agent.ParseRole(cmd.Role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	account.UpdateProfile(cmd.Email, cmd.FullName)
	if err := account.ChangeRole(role); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.Active {
		account.Activate()
	} else {
		account.Deactivate()
	}

	if err := s.agentRepo.Update(ctx, account); err != nil {
		s.logger.Errorw("failed to update agent", "agent_id", cmd.ID, "error", err)
		return nil, err
	}
	return dto.ToAgentDTO(account), nil
}

// AssignProjects replaces the agent's project memberships.
func (s *AdminService) AssignProjects(ctx context.Context, agentID uint, projectIDs []uint) (*dto.AgentDTO, error) {
	account, err := s.get(ctx, agentID)
	if err != nil {
		return nil, err
	}

	if err := s.validateProjects(ctx, projectIDs); err != nil {
		return nil, err
	}
	account.AssignProjects(projectIDs)

	if err := s.agentRepo.Update(ctx, account); err != nil {
		s.logger.Errorw("failed to update agent memberships", "agent_id", agentID, "error", err)
		return nil, err
	}

	s.logger.Infow("agent memberships updated", "agent_id", agentID, "project_count", len(projectIDs))
	return dto.ToAgentDTO(account), nil
}

func (s *AdminService) ResetPassword(ctx context.Context, agentID uint, newPassword string) error {
	if len(newPassword) < 8 {
		return errors.NewValidationError("password must be at least 8 characters")
	}

	account, err := s.get(ctx, agentID)
	if err != nil {
		return err
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		s.logger.Errorw("failed to hash password", "agent_id", agentID, "error", err)
		return errors.NewInternalError("failed to process password")
	}
	if err := account.ChangePasswordHash(hash); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := s.agentRepo.Update(ctx, account); err != nil {
		s.logger.Errorw("failed to persist password reset", "agent_id", agentID, "error", err)
		return err
	}

	s.logger.Infow("agent password reset", "agent_id", agentID)
	return nil
}

func (s *AdminService) Get(ctx context.Context, id uint) (*dto.AgentDTO, error) {
	account, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToAgentDTO(account), nil
}

func (s *AdminService) List(ctx context.Context, activeOnly bool) ([]*dto.AgentDTO, error) {
	accounts, err := s.agentRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	return toAgentDTOs(accounts), nil
}

func (s *AdminService) ListByProject(ctx context.Context, projectID uint) ([]*dto.AgentDTO, error) {
	accounts, err := s.agentRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return toAgentDTOs(accounts), nil
}

func (s *AdminService) get(ctx context.Context, id uint) (*agent.Agent, error) {
	account, err := s.agentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, errors.NewNotFoundError("agent not found")
	}
	return account, nil
}

func (s *AdminService) validateProjects(ctx context.Context, projectIDs []uint) error {
	for _, id := range projectIDs {
		project, err := s.projectRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if project == nil {
			return errors.NewValidationError("unknown project in membership list")
		}
	}
	return nil
}

func toAgentDTOs(accounts []*agent.Agent) []*dto.AgentDTO {
	result := make([]*dto.AgentDTO, 0, len(accounts))
	for _, a := range accounts {
		result = append(result, dto.ToAgentDTO(a))
	}
	return result
}
