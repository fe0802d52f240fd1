// Package catalog contains the administrative services for projects,
// categories, statuses, priorities, field templates and per-category field
// bindings.
package catalog

import "context"

// TicketReferenceChecker reports how many tickets reference a catalog entity.
// Deletion is refused while the count is non-zero.
type TicketReferenceChecker interface {
	CountByProject(ctx context.Context, projectID uint) (int64, error)
	CountByCategory(ctx context.Context, categoryID uint) (int64, error)
	CountByStatus(ctx context.Context, statusID uint) (int64, error)
	CountByPriority(ctx context.Context, priorityID uint) (int64, error)
}

// TransactionRunner executes a function within a database transaction.
// Repository calls made with the inner context join the same transaction.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
