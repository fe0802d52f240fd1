package usecases

import (
	"context"

	"deskhub/internal/domain/agent"
	"deskhub/internal/domain/catalog"
	"deskhub/internal/domain/ticket"
)

type mockTicketRepository struct {
	SaveFunc                func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc              func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc             func(ctx context.Context, id uint) (*ticket.Ticket, error)
	GetByDisplayIDFunc      func(ctx context.Context, displayID string) (*ticket.Ticket, error)
	ListFunc                func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error)
	LastDisplayIDFunc       func(ctx context.Context, projectID uint, prefix string) (string, error)
	CountForProjectYearFunc func(ctx context.Context, projectID uint, year int) (int64, error)
	CountByPrefixFunc       func(ctx context.Context, prefix string) (int64, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetByDisplayID(ctx context.Context, displayID string) (*ticket.Ticket, error) {
	if m.GetByDisplayIDFunc != nil {
		return m.GetByDisplayIDFunc(ctx, displayID)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) LastDisplayID(ctx context.Context, projectID uint, prefix string) (string, error) {
	if m.LastDisplayIDFunc != nil {
		return m.LastDisplayIDFunc(ctx, projectID, prefix)
	}
	return "", nil
}

func (m *mockTicketRepository) CountForProjectYear(ctx context.Context, projectID uint, year int) (int64, error) {
	if m.CountForProjectYearFunc != nil {
		return m.CountForProjectYearFunc(ctx, projectID, year)
	}
	return 0, nil
}

func (m *mockTicketRepository) CountByPrefix(ctx context.Context, prefix string) (int64, error) {
	if m.CountByPrefixFunc != nil {
		return m.CountByPrefixFunc(ctx, prefix)
	}
	return 0, nil
}

type mockCommentRepository struct {
	SaveFunc         func(ctx context.Context, c *ticket.Comment) error
	ListByTicketFunc func(ctx context.Context, ticketID uint, publicOnly bool) ([]*ticket.Comment, error)
}

func (m *mockCommentRepository) Save(ctx context.Context, c *ticket.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockCommentRepository) ListByTicket(ctx context.Context, ticketID uint, publicOnly bool) ([]*ticket.Comment, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID, publicOnly)
	}
	return nil, nil
}

type mockAttachmentRepository struct {
	SaveFunc          func(ctx context.Context, a *ticket.Attachment) error
	ListByTicketFunc  func(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error)
	ListByCommentFunc func(ctx context.Context, commentID uint) ([]*ticket.Attachment, error)
}

func (m *mockAttachmentRepository) Save(ctx context.Context, a *ticket.Attachment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *mockAttachmentRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) ListByComment(ctx context.Context, commentID uint) ([]*ticket.Attachment, error) {
	if m.ListByCommentFunc != nil {
		return m.ListByCommentFunc(ctx, commentID)
	}
	return nil, nil
}

type mockAgentRepository struct {
	SaveFunc             func(ctx context.Context, a *agent.Agent) error
	UpdateFunc           func(ctx context.Context, a *agent.Agent) error
	GetByIDFunc          func(ctx context.Context, id uint) (*agent.Agent, error)
	GetByUsernameFunc    func(ctx context.Context, username string) (*agent.Agent, error)
	ListFunc             func(ctx context.Context, activeOnly bool) ([]*agent.Agent, error)
	ListByProjectFunc    func(ctx context.Context, projectID uint) ([]*agent.Agent, error)
	ActiveProjectIDsFunc func(ctx context.Context, agentID uint) ([]uint, error)
}

func (m *mockAgentRepository) Save(ctx context.Context, a *agent.Agent) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *mockAgentRepository) Update(ctx context.Context, a *agent.Agent) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockAgentRepository) GetByID(ctx context.Context, id uint) (*agent.Agent, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAgentRepository) GetByUsername(ctx context.Context, username string) (*agent.Agent, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockAgentRepository) List(ctx context.Context, activeOnly bool) ([]*agent.Agent, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, activeOnly)
	}
	return nil, nil
}

func (m *mockAgentRepository) ListByProject(ctx context.Context, projectID uint) ([]*agent.Agent, error) {
	if m.ListByProjectFunc != nil {
		return m.ListByProjectFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *mockAgentRepository) ActiveProjectIDs(ctx context.Context, agentID uint) ([]uint, error) {
	if m.ActiveProjectIDsFunc != nil {
		return m.ActiveProjectIDsFunc(ctx, agentID)
	}
	return nil, nil
}

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

type mockNotifier struct {
	TicketCreatedFunc  func(ctx context.Context, t *ticket.Ticket)
	StatusChangedFunc  func(ctx context.Context, t *ticket.Ticket, oldStatus, newStatus string)
	TicketResolvedFunc func(ctx context.Context, t *ticket.Ticket, comment string)
	TicketClosedFunc   func(ctx context.Context, t *ticket.Ticket)
	CommentAddedFunc   func(ctx context.Context, t *ticket.Ticket, c *ticket.Comment)
}

func (m *mockNotifier) TicketCreated(ctx context.Context, t *ticket.Ticket) {
	if m.TicketCreatedFunc != nil {
		m.TicketCreatedFunc(ctx, t)
	}
}

func (m *mockNotifier) StatusChanged(ctx context.Context, t *ticket.Ticket, oldStatus, newStatus string) {
	if m.StatusChangedFunc != nil {
		m.StatusChangedFunc(ctx, t, oldStatus, newStatus)
	}
}

func (m *mockNotifier) TicketResolved(ctx context.Context, t *ticket.Ticket, comment string) {
	if m.TicketResolvedFunc != nil {
		m.TicketResolvedFunc(ctx, t, comment)
	}
}

func (m *mockNotifier) TicketClosed(ctx context.Context, t *ticket.Ticket) {
	if m.TicketClosedFunc != nil {
		m.TicketClosedFunc(ctx, t)
	}
}

func (m *mockNotifier) CommentAdded(ctx context.Context, t *ticket.Ticket, c *ticket.Comment) {
	if m.CommentAddedFunc != nil {
		m.CommentAddedFunc(ctx, t, c)
	}
}
