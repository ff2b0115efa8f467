package contact

import (
	"context"

	"leadgate/pkg/domain"
)

// Store is interface-driven to keep the domain logic testable and to allow
// swapping the in-memory implementation for external persistence without
// rewiring business code.
//
// Lookups signal absence with sentinel.ErrNotFound; callers treat that as a
// valid empty result, not a failure.
type Store interface {
	// NextID allocates the next submission id. Ids are strictly increasing,
	// start at 1, and are never reused.
	NextID(ctx context.Context) (int64, error)
	// Insert stores a record under its pre-allocated id. The store is
	// append-only: inserting an existing id, or a protocol already held by
	// another record, fails with sentinel.ErrConflict.
	Insert(ctx context.Context, sub domain.Submission) error
	GetByID(ctx context.Context, id int64) (domain.Submission, error)
	GetByProtocol(ctx context.Context, protocol string) (domain.Submission, error)
	List(ctx context.Context) ([]domain.Submission, error)
	ListByUrgency(ctx context.Context, urgency domain.Urgency) ([]domain.Submission, error)
	ListByArea(ctx context.Context, area string) ([]domain.Submission, error)
	Count(ctx context.Context) (int, error)
}
