package access

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"hrms/pkg/domain"
)

const (
	reportsKeyPrefix = "org:reports:"
	// emptyMarker keeps "no direct reports" cacheable, since Redis drops empty sets.
	emptyMarker = "-"

	defaultReportsTTL = 5 * time.Minute
)

// RedisDirectory caches direct-report lookups in Redis in front of the
// authoritative Directory. A Redis failure falls through to the source; a
// source failure is returned so the resolver can fail closed.
type RedisDirectory struct {
	client *redis.Client
	source Directory
	ttl    time.Duration
	logger *slog.Logger
}

type RedisDirectoryOption func(*RedisDirectory)

func WithTTL(ttl time.Duration) RedisDirectoryOption {
	return func(d *RedisDirectory) {
		if ttl > 0 {
			d.ttl = ttl
		}
	}
}

func WithDirectoryLogger(logger *slog.Logger) RedisDirectoryOption {
	return func(d *RedisDirectory) {
		d.logger = logger
	}
}

func NewRedisDirectory(client *redis.Client, source Directory, opts ...RedisDirectoryOption) *RedisDirectory {
	d := &RedisDirectory{client: client, source: source, ttl: defaultReportsTTL}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	return d
}

func (d *RedisDirectory) DirectReports(ctx context.Context, managerID domain.EmployeeID) ([]domain.EmployeeID, error) {
	key := reportsKeyPrefix + managerID.String()

	members, err := d.client.SMembers(ctx, key).Result()
	switch {
	case err == nil && len(members) > 0:
		return decodeMembers(members)
	case err != nil && !errors.Is(err, redis.Nil):
		d.warn(ctx, "hierarchy cache read failed", managerID, err)
	}

	reports, err := d.source.DirectReports(ctx, managerID)
	if err != nil {
		return nil, err
	}
	d.store(ctx, key, reports, managerID)
	return reports, nil
}

// Invalidate drops the cached reports of a manager. Call it whenever an
// employee's manager changes or an employee is removed.
func (d *RedisDirectory) Invalidate(ctx context.Context, managerIDs ...domain.EmployeeID) error {
	if len(managerIDs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(managerIDs))
	for _, id := range managerIDs {
		if !id.IsNil() {
			keys = append(keys, reportsKeyPrefix+id.String())
		}
	}
	if len(keys) == 0 {
		return nil
	}
	return d.client.Del(ctx, keys...).Err()
}

func (d *RedisDirectory) store(ctx context.Context, key string, reports []domain.EmployeeID, managerID domain.EmployeeID) {
	members := make([]any, 0, len(reports))
	for _, r := range reports {
		members = append(members, r.String())
	}
	if len(members) == 0 {
		members = append(members, emptyMarker)
	}

	pipe := d.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.SAdd(ctx, key, members...)
	pipe.Expire(ctx, key, d.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		d.warn(ctx, "hierarchy cache write failed", managerID, err)
	}
}

func (d *RedisDirectory) warn(ctx context.Context, msg string, managerID domain.EmployeeID, err error) {
	if d.logger != nil {
		d.logger.WarnContext(ctx, msg, "manager_id", managerID, "error", err)
	}
}

func decodeMembers(members []string) ([]domain.EmployeeID, error) {
	out := make([]domain.EmployeeID, 0, len(members))
	for _, m := range members {
		if m == emptyMarker {
			continue
		}
		u, err := uuid.Parse(m)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.EmployeeID(u))
	}
	return out, nil
}
