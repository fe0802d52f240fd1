package usecases

import (
	"context"
	"io"
	"time"

	"deskhub/internal/domain/catalog"
	"deskhub/internal/domain/ticket"
	"deskhub/internal/shared/errors"
	"deskhub/internal/shared/logger"
)

// FileStore persists uploaded files and returns the stored relative path and
// the number of bytes written.
type FileStore interface {
	Save(r io.Reader, projectSlug, displayID string, commentID *uint, filename string, now time.Time) (string, int64, error)
}

type SaveAttachmentCommand struct {
	TicketID uint
	// CommentID scopes the file to a comment; nil attaches it to the ticket.
	CommentID    *uint
	UploaderID   *uint
	UploaderName string
	FileName     string
	Content      io.Reader
}

type SaveAttachmentResult struct {
	AttachmentID uint
	StoredPath   string
	Size         int64
}

// SaveAttachmentUseCase streams an upload to disk under the ticket's project
// directory and records the attachment row.
type SaveAttachmentUseCase struct {
	ticketRepo     ticket.Repository
	projectRepo    catalog.ProjectRepository
	attachmentRepo ticket.AttachmentRepository
	store          FileStore
	logger         logger.Interface
}

func NewSaveAttachmentUseCase(
	ticketRepo ticket.Repository,
	projectRepo catalog.ProjectRepository,
	attachmentRepo ticket.AttachmentRepository,
	store FileStore,
	logger logger.Interface,
) *SaveAttachmentUseCase {
	return &SaveAttachmentUseCase{
		ticketRepo:     ticketRepo,
		projectRepo:    projectRepo,
		attachmentRepo: attachmentRepo,
		store:          store,
		logger:         logger,
	}
}

func (uc *SaveAttachmentUseCase) Execute(ctx context.Context, cmd SaveAttachmentCommand) (*SaveAttachmentResult, error) {
	if cmd.FileName == "" {
		return nil, errors.NewValidationError("attachment filename is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	projectSlug := "unfiled"
	project, err := uc.projectRepo.GetByID(ctx, t.ProjectID())
	if err != nil {
		return nil, err
	}
	if project != nil {
		projectSlug = project.Slug()
	}

	storedPath, size, err := uc.store.Save(cmd.Content, projectSlug, t.DisplayID(), cmd.CommentID, cmd.FileName, time.Now().UTC())
	if err != nil {
		uc.logger.Errorw("failed to store attachment", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to store attachment")
	}

	ticketID := t.ID()
	attachment, err := ticket.NewAttachment(&ticketID, cmd.CommentID, storedPath, cmd.FileName, size, cmd.UploaderID, cmd.UploaderName)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.attachmentRepo.Save(ctx, attachment); err != nil {
		return nil, err
	}

	uc.logger.Infow("attachment stored", "ticket_id", ticketID, "path", storedPath, "size", size)

	return &SaveAttachmentResult{
		AttachmentID: attachment.ID(),
		StoredPath:   storedPath,
		Size:         size,
	}, nil
}
