package ticket

import (
	"fmt"
	"path"
	"time"
)

// Attachment is an uploaded file linked to a ticket, a comment, or both.
// At least one link is required.
type Attachment struct {
	id           uint
	ticketID     *uint
	commentID    *uint
	storedPath   string
	fileName     string
	size         int64
	uploaderID   *uint
	uploaderName string
	uploadedAt   time.Time
}

func NewAttachment(ticketID, commentID *uint, storedPath, fileName string, size int64, uploaderID *uint, uploaderName string) (*Attachment, error) {
	if ticketID == nil && commentID == nil {
		return nil, fmt.Errorf("attachment must reference a ticket or a comment")
	}
	if storedPath == "" {
		return nil, fmt.Errorf("stored path is required")
	}
	if fileName == "" {
		fileName = path.Base(storedPath)
	}

	return &Attachment{
		ticketID:     ticketID,
		commentID:    commentID,
		storedPath:   storedPath,
		fileName:     fileName,
		size:         size,
		uploaderID:   uploaderID,
		uploaderName: uploaderName,
		uploadedAt:   time.Now(),
	}, nil
}

func ReconstructAttachment(
	id uint,
	ticketID, commentID *uint,
	storedPath, fileName string,
	size int64,
	uploaderID *uint,
	uploaderName string,
	uploadedAt time.Time,
) (*Attachment, error) {
	if id == 0 {
		return nil, fmt.Errorf("attachment ID cannot be zero")
	}
	if ticketID == nil && commentID == nil {
		return nil, fmt.Errorf("attachment must reference a ticket or a comment")
	}

	return &Attachment{
		id:           id,
		ticketID:     ticketID,
		commentID:    commentID,
		storedPath:   storedPath,
		fileName:     fileName,
		size:         size,
		uploaderID:   uploaderID,
		uploaderName: uploaderName,
		uploadedAt:   uploadedAt,
	}, nil
}

func (a *Attachment) ID() uint              { return a.id }
func (a *Attachment) TicketID() *uint       { return a.ticketID }
func (a *Attachment) CommentID() *uint      { return a.commentID }
func (a *Attachment) StoredPath() string    { return a.storedPath }
func (a *Attachment) FileName() string      { return a.fileName }
func (a *Attachment) Size() int64           { return a.size }
func (a *Attachment) UploaderID() *uint     { return a.uploaderID }
func (a *Attachment) UploaderName() string  { return a.uploaderName }
func (a *Attachment) UploadedAt() time.Time { return a.uploadedAt }

func (a *Attachment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("attachment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("attachment ID cannot be zero")
	}
	a.id = id
	return nil
}
