package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"hrms/internal/audit"
	"hrms/pkg/domain"
	"hrms/pkg/platform/sentinel"
)

// InMemoryStore keeps audit records in insertion order.
type InMemoryStore struct {
	mu      sync.RWMutex
	records []audit.Record
}

func New() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
}

func (s *InMemoryStore) Append(_ context.Context, record *audit.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, *record)
	return nil
}

func (s *InMemoryStore) Get(_ context.Context, id uuid.UUID) (*audit.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if r.ID == id {
			rec := r
			return &rec, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

// All returns a copy of every record, oldest first.
func (s *InMemoryStore) All() []audit.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]audit.Record(nil), s.records...)
}

func (s *InMemoryStore) Query(_ context.Context, filter audit.Filter, page audit.Page) ([]audit.Record, int, error) {
	s.mu.RLock()
	matched := make([]audit.Record, 0)
	for _, r := range s.records {
		if matches(r, filter) {
			matched = append(matched, r)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Timestamp.After(matched[j].Timestamp)
	})

	total := len(matched)
	start := min(page.Offset(), total)
	end := min(start+page.Size, total)
	return matched[start:end], total, nil
}

func matches(r audit.Record, f audit.Filter) bool {
	if f.ActorID != nil && r.ActorID != *f.ActorID {
		return false
	}
	if f.Action != "" && r.Action != f.Action {
		return false
	}
	if f.ResourceType != "" && r.ResourceType != f.ResourceType {
		return false
	}
	if f.ResourceID != nil && (r.ResourceID == nil || *r.ResourceID != *f.ResourceID) {
		return false
	}
	if f.IPContains != "" && !strings.Contains(strings.ToLower(r.IPAddress), strings.ToLower(f.IPContains)) {
		return false
	}
	if f.From != nil && r.Timestamp.Before(*f.From) {
		return false
	}
	if f.To != nil && r.Timestamp.After(*f.To) {
		return false
	}
	return true
}

func (s *InMemoryStore) since(t time.Time) []audit.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]audit.Record, 0, len(s.records))
	for _, r := range s.records {
		if !r.Timestamp.Before(t) {
			out = append(out, r)
		}
	}
	return out
}

func (s *InMemoryStore) CountByAction(_ context.Context, since time.Time) (map[audit.Action]int, error) {
	counts := make(map[audit.Action]int)
	for _, r := range s.since(since) {
		counts[r.Action]++
	}
	return counts, nil
}

func (s *InMemoryStore) DailyCounts(_ context.Context, since time.Time) ([]audit.DayCount, error) {
	byDay := make(map[time.Time]int)
	for _, r := range s.since(since) {
		ts := r.Timestamp.UTC()
		byDay[time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)]++
	}
	out := make([]audit.DayCount, 0, len(byDay))
	for day, n := range byDay {
		out = append(out, audit.DayCount{Day: day, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day.Before(out[j].Day) })
	return out, nil
}

func (s *InMemoryStore) TopActors(_ context.Context, since time.Time, limit int) ([]audit.ActorCount, error) {
	counts := make(map[domain.UserID]int)
	for _, r := range s.since(since) {
		counts[r.ActorID]++
	}
	out := make([]audit.ActorCount, 0, len(counts))
	for actor, n := range counts {
		out = append(out, audit.ActorCount{ActorID: actor, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].ActorID.String() < out[j].ActorID.String()
	})
	return out[:min(limit, len(out))], nil
}

type resourceKey struct {
	typ string
	id  uuid.UUID
}

func (s *InMemoryStore) TopResources(_ context.Context, since time.Time, limit int) ([]audit.ResourceCount, error) {
	counts := make(map[resourceKey]int)
	for _, r := range s.since(since) {
		key := resourceKey{typ: r.ResourceType}
		if r.ResourceID != nil {
			key.id = *r.ResourceID
		}
		counts[key]++
	}
	out := make([]audit.ResourceCount, 0, len(counts))
	for key, n := range counts {
		rc := audit.ResourceCount{ResourceType: key.typ, Count: n}
		if key.id != uuid.Nil {
			id := key.id
			rc.ResourceID = &id
		}
		out = append(out, rc)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].ResourceType < out[j].ResourceType
	})
	return out[:min(limit, len(out))], nil
}

func (s *InMemoryStore) DeleteBefore(_ context.Context, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.records[:0]
	var deleted int64
	for _, r := range s.records {
		if r.Timestamp.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, r)
	}
	s.records = kept
	return deleted, nil
}
