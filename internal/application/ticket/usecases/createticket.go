package usecases

import (
	"context"
	"time"

	"deskhub/internal/application/forms"
	"deskhub/internal/domain/catalog"
	"deskhub/internal/domain/ticket"
	"deskhub/internal/shared/errors"
	"deskhub/internal/shared/logger"
)

type CreateTicketCommand struct {
	CategoryID    uint
	Title         string
	Description   string
	ReporterName  string
	ReporterEmail string
	ReporterPhone string
	Building      string
	Room          string
	Department    string
	ReporterIP    string
	// DynamicValues holds the raw submitted values of the category's custom
	// fields, keyed by field name.
	DynamicValues map[string]string
}

type CreateTicketResult struct {
	TicketID  uint
	DisplayID string
	CreatedAt time.Time
}

type CreateTicketUseCase struct {
	categoryRepo  catalog.CategoryRepository
	projectRepo   catalog.ProjectRepository
	statusRepo    catalog.StatusRepository
	priorityRepo  catalog.PriorityRepository
	ticketRepo    ticket.Repository
	schemaBuilder *forms.SchemaBuilder
	notifier      Notifier
	logger        logger.Interface
}

func NewCreateTicketUseCase(
	categoryRepo catalog.CategoryRepository,
	projectRepo catalog.ProjectRepository,
	statusRepo catalog.StatusRepository,
	priorityRepo catalog.PriorityRepository,
	ticketRepo ticket.Repository,
	schemaBuilder *forms.SchemaBuilder,
	notifier Notifier,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		categoryRepo:  categoryRepo,
		projectRepo:   projectRepo,
		statusRepo:    statusRepo,
		priorityRepo:  priorityRepo,
		ticketRepo:    ticketRepo,
		schemaBuilder: schemaBuilder,
		notifier:      notifier,
		logger:        logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "category_id", cmd.CategoryID)

	category, err := uc.categoryRepo.GetByID(ctx, cmd.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, errors.NewNotFoundError("category not found")
	}

	schema, err := uc.schemaBuilder.Build(ctx, category)
	if err != nil {
		return nil, err
	}

	customData, fieldErrors := forms.DecodeSubmission(schema, cmd.DynamicValues)
	if fieldErrors != nil {
		return nil, errors.NewValidationError("form validation failed").WithFields(fieldErrors)
	}

	project, err := uc.projectRepo.GetByID(ctx, category.ProjectID())
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, errors.NewNotFoundError("project not found")
	}

	reporter := ticket.Reporter{
		Name:       cmd.ReporterName,
		Email:      cmd.ReporterEmail,
		Phone:      cmd.ReporterPhone,
		Building:   cmd.Building,
		Room:       cmd.Room,
		Department: cmd.Department,
		IPAddress:  cmd.ReporterIP,
	}

	categoryID := category.ID()
	newTicket, err := ticket.NewTicket(cmd.Title, cmd.Description, reporter, project.ID(), &categoryID, customData)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	defaultStatus, err := uc.statusRepo.GetDefault(ctx)
	if err != nil {
		uc.logger.Errorw("no usable default status", "error", err)
		return nil, err
	}
	if err := newTicket.ApplyStatus(defaultStatus); err != nil {
		return nil, errors.NewInternalError("failed to apply default status", err.Error())
	}

	// Submitters cannot pick a priority; new tickets fall back to normal when
	// that code is configured.
	if priority, err := uc.priorityRepo.GetByCode(ctx, catalog.PriorityCodeNormal); err == nil && priority != nil {
		priorityID := priority.ID()
		newTicket.SetPriority(&priorityID)
	}

	generator := ticket.NewDisplayIDGenerator(uc.ticketRepo)
	displayID, err := generator.Generate(ctx, project, time.Now())
	if err != nil {
		return nil, err
	}
	if err := newTicket.SetDisplayID(displayID); err != nil {
		return nil, errors.NewInternalError("failed to set display ID", err.Error())
	}

	// Concurrent creations can generate the same display ID; the unique index
	// rejects the second insert and the conflict propagates to the caller.
	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "display_id", displayID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created", "ticket_id", newTicket.ID(), "display_id", displayID)

	if uc.notifier != nil {
		uc.notifier.TicketCreated(ctx, newTicket)
	}

	return &CreateTicketResult{
		TicketID:  newTicket.ID(),
		DisplayID: newTicket.DisplayID(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}
