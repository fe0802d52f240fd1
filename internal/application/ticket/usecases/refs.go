package usecases

import (
	"context"
	"fmt"

	"deskhub/internal/application/ticket/dto"
	"deskhub/internal/domain/agent"
	"deskhub/internal/domain/catalog"
	"deskhub/internal/domain/ticket"
)

// RefResolver resolves the catalog display names a ticket references. List
// endpoints resolve in bulk to avoid one lookup per row.
type RefResolver struct {
	projectRepo  catalog.ProjectRepository
	categoryRepo catalog.CategoryRepository
	statusRepo   catalog.StatusRepository
	priorityRepo catalog.PriorityRepository
	agentRepo    agent.Repository
}

func NewRefResolver(
	projectRepo catalog.ProjectRepository,
	categoryRepo catalog.CategoryRepository,
	statusRepo catalog.StatusRepository,
	priorityRepo catalog.PriorityRepository,
	agentRepo agent.Repository,
) *RefResolver {
	return &RefResolver{
		projectRepo:  projectRepo,
		categoryRepo: categoryRepo,
		statusRepo:   statusRepo,
		priorityRepo: priorityRepo,
		agentRepo:    agentRepo,
	}
}

// Resolve loads the display names for one ticket. Missing references resolve
// to empty names rather than failing the read.
func (r *RefResolver) Resolve(ctx context.Context, t *ticket.Ticket) (dto.Refs, error) {
	var refs dto.Refs

	project, err := r.projectRepo.GetByID(ctx, t.ProjectID())
	if err != nil {
		return refs, err
	}
	if project != nil {
		refs.ProjectName = project.Name()
	}

	if t.CategoryID() != nil {
		category, err := r.categoryRepo.GetByID(ctx, *t.CategoryID())
		if err == nil && category != nil {
			refs.CategoryName = category.Name()
		}
	}

	status, err := r.statusRepo.GetByID(ctx, t.StatusID())
	if err != nil {
		return refs, err
	}
	if status != nil {
		refs.StatusName = status.Name()
		refs.StatusCode = status.Code()
		refs.StatusColor = status.Color()
	}

	if t.PriorityID() != nil {
		priority, err := r.priorityRepo.GetByID(ctx, *t.PriorityID())
		if err == nil && priority != nil {
			refs.PriorityName = priority.Name()
		}
	}

	if t.AssigneeID() != nil {
		assignee, err := r.agentRepo.GetByID(ctx, *t.AssigneeID())
		if err == nil && assignee != nil {
			refs.AssigneeName = assignee.DisplayName()
		}
	}

	return refs, nil
}

// refTable caches catalog rows for bulk list mapping.
type refTable struct {
	projects   map[uint]*catalog.Project
	categories map[uint]*catalog.Category
	statuses   map[uint]*catalog.Status
	priorities map[uint]*catalog.Priority
	agents     map[uint]*agent.Agent
}

// ResolveBulk loads the catalog tables once and returns a lookup usable for
// every row of a listing.
func (r *RefResolver) ResolveBulk(ctx context.Context) (*refTable, error) {
	table := &refTable{
		projects:   make(map[uint]*catalog.Project),
		categories: make(map[uint]*catalog.Category),
		statuses:   make(map[uint]*catalog.Status),
		priorities: make(map[uint]*catalog.Priority),
		agents:     make(map[uint]*agent.Agent),
	}

	projects, err := r.projectRepo.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}
	for _, p := range projects {
		table.projects[p.ID()] = p
	}

	categories, err := r.categoryRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	for _, c := range categories {
		table.categories[c.ID()] = c
	}

	statuses, err := r.statusRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load statuses: %w", err)
	}
	for _, s := range statuses {
		table.statuses[s.ID()] = s
	}

	priorities, err := r.priorityRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load priorities: %w", err)
	}
	for _, p := range priorities {
		table.priorities[p.ID()] = p
	}

	agents, err := r.agentRepo.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to load agents: %w", err)
	}
	for _, a := range agents {
		table.agents[a.ID()] = a
	}

	return table, nil
}

func (t *refTable) refsFor(tk *ticket.Ticket) dto.Refs {
	var refs dto.Refs

	if p, ok := t.projects[tk.ProjectID()]; ok {
		refs.ProjectName = p.Name()
	}
	if tk.CategoryID() != nil {
		if c, ok := t.categories[*tk.CategoryID()]; ok {
			refs.CategoryName = c.Name()
		}
	}
	if s, ok := t.statuses[tk.StatusID()]; ok {
		refs.StatusName = s.Name()
		refs.StatusCode = s.Code()
		refs.StatusColor = s.Color()
	}
	if tk.PriorityID() != nil {
		if p, ok := t.priorities[*tk.PriorityID()]; ok {
			refs.PriorityName = p.Name()
		}
	}
	if tk.AssigneeID() != nil {
		if a, ok := t.agents[*tk.AssigneeID()]; ok {
			refs.AssigneeName = a.DisplayName()
		}
	}
	return refs
}

// labeledCustomFields pairs the ticket's stored dynamic values with the
// effective labels of the category's bindings. Values whose field was removed
// from the category keep the raw key as label.
func labeledCustomFields(t *ticket.Ticket, category *catalog.Category) []dto.CustomFieldValueDTO {
	data := t.CustomData()
	if len(data) == 0 {
		return []dto.CustomFieldValueDTO{}
	}

	labeled := make([]dto.CustomFieldValueDTO, 0, len(data))
	seen := make(map[string]bool, len(data))

	if category != nil {
		for _, f := range category.Fields() {
			name := f.Name()
			value, ok := data[name]
			if !ok {
				continue
			}
			labeled = append(labeled, dto.CustomFieldValueDTO{
				Name:  name,
				Label: f.EffectiveLabel(),
				Value: value,
			})
			seen[name] = true
		}
	}

	for name, value := range data {
		if seen[name] {
			continue
		}
		labeled = append(labeled, dto.CustomFieldValueDTO{Name: name, Label: name, Value: value})
	}

	return labeled
}
