package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"hrms/internal/audit"
	"hrms/pkg/domain"
	"hrms/pkg/platform/sentinel"
	txcontext "hrms/pkg/platform/tx"
)

// Store implements audit.Store on the audit_logs table.
type Store struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

type recordRow struct {
	ID           uuid.UUID      `db:"id"`
	ActorID      uuid.UUID      `db:"actor_id"`
	Action       string         `db:"action"`
	ResourceType string         `db:"resource_type"`
	ResourceID   uuid.NullUUID  `db:"resource_id"`
	Before       []byte         `db:"before_snapshot"`
	After        []byte         `db:"after_snapshot"`
	IPAddress    sql.NullString `db:"ip_address"`
	UserAgent    sql.NullString `db:"user_agent"`
	RequestID    sql.NullString `db:"request_id"`
	CreatedAt    time.Time      `db:"created_at"`
}

func (r recordRow) toRecord() audit.Record {
	rec := audit.Record{
		ID:           r.ID,
		ActorID:      domain.UserID(r.ActorID),
		Action:       audit.Action(r.Action),
		ResourceType: r.ResourceType,
		Before:       r.Before,
		After:        r.After,
		IPAddress:    r.IPAddress.String,
		UserAgent:    r.UserAgent.String,
		RequestID:    r.RequestID.String,
		Timestamp:    r.CreatedAt.UTC(),
	}
	if r.ResourceID.Valid {
		id := r.ResourceID.UUID
		rec.ResourceID = &id
	}
	return rec
}

const selectColumns = `id, actor_id, action, resource_type, resource_id, before_snapshot,
	after_snapshot, ip_address, user_agent, request_id, created_at`

func (s *Store) Append(ctx context.Context, record *audit.Record) error {
	query := `
		INSERT INTO audit_logs (
			id, actor_id, action, resource_type, resource_id, before_snapshot,
			after_snapshot, ip_address, user_agent, request_id, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := txcontext.Use(ctx, s.db).ExecContext(ctx, query,
		record.ID,
		uuid.UUID(record.ActorID),
		string(record.Action),
		record.ResourceType,
		nullUUID(record.ResourceID),
		jsonParam(record.Before),
		jsonParam(record.After),
		nullString(record.IPAddress),
		nullString(record.UserAgent),
		nullString(record.RequestID),
		record.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*audit.Record, error) {
	var row recordRow
	err := txcontext.Use(ctx, s.db).GetContext(ctx, &row,
		`SELECT `+selectColumns+` FROM audit_logs WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get audit log: %w", err)
	}
	rec := row.toRecord()
	return &rec, nil
}

func (s *Store) Query(ctx context.Context, filter audit.Filter, page audit.Page) ([]audit.Record, int, error) {
	where, args := buildWhere(filter)
	q := txcontext.Use(ctx, s.db)

	var total int
	if err := q.GetContext(ctx, &total, `SELECT COUNT(*) FROM audit_logs`+where, args...); err != nil {
		return nil, 0, fmt.Errorf("count audit logs: %w", err)
	}

	args = append(args, page.Size, page.Offset())
	query := fmt.Sprintf(`SELECT %s FROM audit_logs%s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`,
		selectColumns, where, len(args)-1, len(args))
	var rows []recordRow
	if err := q.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("query audit logs: %w", err)
	}

	records := make([]audit.Record, 0, len(rows))
	for _, r := range rows {
		records = append(records, r.toRecord())
	}
	return records, total, nil
}

// buildWhere renders filter as a WHERE clause with positional parameters.
func buildWhere(f audit.Filter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.ActorID != nil {
		add("actor_id = $%d", uuid.UUID(*f.ActorID))
	}
	if f.Action != "" {
		add("action = $%d", string(f.Action))
	}
	if f.ResourceType != "" {
		add("resource_type = $%d", f.ResourceType)
	}
	if f.ResourceID != nil {
		add("resource_id = $%d", *f.ResourceID)
	}
	if f.IPContains != "" {
		add(`ip_address ILIKE ('%%' || $%d || '%%') ESCAPE '\'`, escapeLike(f.IPContains))
	}
	if f.From != nil {
		add("created_at >= $%d", *f.From)
	}
	if f.To != nil {
		add("created_at <= $%d", *f.To)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func (s *Store) CountByAction(ctx context.Context, since time.Time) (map[audit.Action]int, error) {
	var rows []struct {
		Action string `db:"action"`
		Count  int    `db:"count"`
	}
	err := txcontext.Use(ctx, s.db).SelectContext(ctx, &rows, `
		SELECT action, COUNT(*) AS count
		FROM audit_logs
		WHERE created_at >= $1
		GROUP BY action
	`, since)
	if err != nil {
		return nil, fmt.Errorf("count audit logs by action: %w", err)
	}
	out := make(map[audit.Action]int, len(rows))
	for _, r := range rows {
		out[audit.Action(r.Action)] = r.Count
	}
	return out, nil
}

func (s *Store) DailyCounts(ctx context.Context, since time.Time) ([]audit.DayCount, error) {
	var rows []struct {
		Day   time.Time `db:"day"`
		Count int       `db:"count"`
	}
	err := txcontext.Use(ctx, s.db).SelectContext(ctx, &rows, `
		SELECT date_trunc('day', created_at AT TIME ZONE 'UTC') AS day, COUNT(*) AS count
		FROM audit_logs
		WHERE created_at >= $1
		GROUP BY day
		ORDER BY day
	`, since)
	if err != nil {
		return nil, fmt.Errorf("count audit logs per day: %w", err)
	}
	out := make([]audit.DayCount, 0, len(rows))
	for _, r := range rows {
		y, m, d := r.Day.Date()
		out = append(out, audit.DayCount{Day: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), Count: r.Count})
	}
	return out, nil
}

func (s *Store) TopActors(ctx context.Context, since time.Time, limit int) ([]audit.ActorCount, error) {
	var rows []struct {
		ActorID uuid.UUID `db:"actor_id"`
		Count   int       `db:"count"`
	}
	err := txcontext.Use(ctx, s.db).SelectContext(ctx, &rows, `
		SELECT actor_id, COUNT(*) AS count
		FROM audit_logs
		WHERE created_at >= $1
		GROUP BY actor_id
		ORDER BY count DESC, actor_id
		LIMIT $2
	`, since, limit)
	if err != nil {
		return nil, fmt.Errorf("rank audit actors: %w", err)
	}
	out := make([]audit.ActorCount, 0, len(rows))
	for _, r := range rows {
		out = append(out, audit.ActorCount{ActorID: domain.UserID(r.ActorID), Count: r.Count})
	}
	return out, nil
}

func (s *Store) TopResources(ctx context.Context, since time.Time, limit int) ([]audit.ResourceCount, error) {
	var rows []struct {
		ResourceType string        `db:"resource_type"`
		ResourceID   uuid.NullUUID `db:"resource_id"`
		Count        int           `db:"count"`
	}
	err := txcontext.Use(ctx, s.db).SelectContext(ctx, &rows, `
		SELECT resource_type, resource_id, COUNT(*) AS count
		FROM audit_logs
		WHERE created_at >= $1
		GROUP BY resource_type, resource_id
		ORDER BY count DESC, resource_type
		LIMIT $2
	`, since, limit)
	if err != nil {
		return nil, fmt.Errorf("rank audit resources: %w", err)
	}
	out := make([]audit.ResourceCount, 0, len(rows))
	for _, r := range rows {
		rc := audit.ResourceCount{ResourceType: r.ResourceType, Count: r.Count}
		if r.ResourceID.Valid {
			id := r.ResourceID.UUID
			rc.ResourceID = &id
		}
		out = append(out, rc)
	}
	return out, nil
}

func (s *Store) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := txcontext.Use(ctx, s.db).ExecContext(ctx,
		`DELETE FROM audit_logs WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge audit logs: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purge audit logs: %w", err)
	}
	return n, nil
}

func nullUUID(id *uuid.UUID) any {
	if id == nil {
		return nil
	}
	return *id
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// jsonParam passes snapshots as text; lib/pq would send []byte as bytea.
func jsonParam(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}
