package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Store persists audit records. Implementations never update a record after
// Append; DeleteBefore is the only removal path.
type Store interface {
	Append(ctx context.Context, record *Record) error
	Get(ctx context.Context, id uuid.UUID) (*Record, error)
	Query(ctx context.Context, filter Filter, page Page) ([]Record, int, error)
	CountByAction(ctx context.Context, since time.Time) (map[Action]int, error)
	DailyCounts(ctx context.Context, since time.Time) ([]DayCount, error)
	TopActors(ctx context.Context, since time.Time, limit int) ([]ActorCount, error)
	TopResources(ctx context.Context, since time.Time, limit int) ([]ResourceCount, error)
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
