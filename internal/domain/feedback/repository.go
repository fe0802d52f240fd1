package feedback

import "context"

type Repository interface {
	Save(ctx context.Context, f *Feedback) error
	Update(ctx context.Context, f *Feedback) error
	GetByID(ctx context.Context, id uint) (*Feedback, error)
	// List returns entries newest first. When unreviewedOnly is set, reviewed
	// entries are excluded.
	List(ctx context.Context, unreviewedOnly bool, page, pageSize int) ([]*Feedback, int64, error)
}
