// Package audit records governed operations as append-only entries with
// before/after snapshots and request context.
package audit

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/wI2L/jsondiff"

	"hrms/pkg/domain"
)

// Action is the kind of operation an audit record describes.
type Action string

const (
	ActionCreate     Action = "CREATE"
	ActionRead       Action = "READ"
	ActionUpdate     Action = "UPDATE"
	ActionDelete     Action = "DELETE"
	ActionDownload   Action = "DOWNLOAD"
	ActionView       Action = "VIEW"
	ActionBulkUpdate Action = "BULK_UPDATE"
)

func (a Action) IsValid() bool {
	switch a {
	case ActionCreate, ActionRead, ActionUpdate, ActionDelete,
		ActionDownload, ActionView, ActionBulkUpdate:
		return true
	default:
		return false
	}
}

// ResourceCleanup is the resource type of the record emitted by Purge.
const ResourceCleanup = "audit_logs_cleanup"

// Record is one immutable audit entry. Snapshots are the serialized entity
// state and are nil when the entity did not exist before or after.
type Record struct {
	ID           uuid.UUID       `json:"id"`
	ActorID      domain.UserID   `json:"actor_id"`
	Action       Action          `json:"action"`
	ResourceType string          `json:"resource_type"`
	ResourceID   *uuid.UUID      `json:"resource_id,omitempty"`
	Before       json.RawMessage `json:"before,omitempty"`
	After        json.RawMessage `json:"after,omitempty"`
	IPAddress    string          `json:"ip_address,omitempty"`
	UserAgent    string          `json:"user_agent,omitempty"`
	RequestID    string          `json:"request_id,omitempty"`
	Timestamp    time.Time       `json:"timestamp"`
}

// Changes returns the JSON patch turning the before snapshot into the after
// snapshot. A missing snapshot is treated as JSON null.
func (r Record) Changes() (jsondiff.Patch, error) {
	return jsondiff.CompareJSON(orNull(r.Before), orNull(r.After))
}

func orNull(raw json.RawMessage) []byte {
	if len(raw) == 0 {
		return []byte("null")
	}
	return raw
}

// Entry is what callers hand to Recorder.Record. Before and After are
// marshalled to JSON; nil means no snapshot.
type Entry struct {
	ActorID      domain.UserID
	Action       Action
	ResourceType string
	ResourceID   *uuid.UUID
	Before       any
	After        any
}

// Filter narrows a query. Zero fields are ignored. From and To are both
// inclusive.
type Filter struct {
	ActorID      *domain.UserID
	Action       Action
	ResourceType string
	ResourceID   *uuid.UUID
	IPContains   string
	From         *time.Time
	To           *time.Time
}

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// Page is a 1-based page request.
type Page struct {
	Number int
	Size   int
}

// Normalize clamps the page into a usable range.
func (p Page) Normalize() Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Size < 1 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// QueryResult is one page of records plus the total matching count.
type QueryResult struct {
	Records []Record `json:"records"`
	Total   int      `json:"total"`
	Page    int      `json:"page"`
	Limit   int      `json:"limit"`
}

// DayCount is the number of records on a UTC calendar day.
type DayCount struct {
	Day   time.Time `json:"day"`
	Count int       `json:"count"`
}

// ActorCount ranks actors by activity.
type ActorCount struct {
	ActorID domain.UserID `json:"actor_id"`
	Count   int           `json:"count"`
}

// ResourceCount ranks resources by activity.
type ResourceCount struct {
	ResourceType string     `json:"resource_type"`
	ResourceID   *uuid.UUID `json:"resource_id,omitempty"`
	Count        int        `json:"count"`
}

// Summary aggregates activity inside a trailing window.
type Summary struct {
	From         time.Time       `json:"from"`
	To           time.Time       `json:"to"`
	ByAction     map[Action]int  `json:"by_action"`
	Daily        []DayCount      `json:"daily"`
	TopActors    []ActorCount    `json:"top_actors"`
	TopResources []ResourceCount `json:"top_resources"`
}

const (
	MinRetentionDays = 30
	MaxRetentionDays = 3650
)

// ClampRetention bounds a retention period to [30, 3650] days.
func ClampRetention(days int) int {
	return min(max(days, MinRetentionDays), MaxRetentionDays)
}

// PurgeResult is also the after-snapshot of the cleanup record.
type PurgeResult struct {
	DeletedCount  int64     `json:"deletedCount"`
	CutoffDate    time.Time `json:"cutoffDate"`
	RetentionDays int       `json:"retentionDays"`
}
