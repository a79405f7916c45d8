package access

import (
	"bytes"
	"slices"

	"hrms/pkg/domain"
)

// ScopeKind enumerates the visibility shapes an actor can resolve to.
type ScopeKind int

const (
	// ScopeAll sees every owner (ADMIN, HR).
	ScopeAll ScopeKind = iota + 1
	// ScopeOwnedOnly sees only the actor's own employee record.
	ScopeOwnedOnly
	// ScopeOwnerSet sees an explicit set of owners (manager + direct reports).
	ScopeOwnerSet
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeAll:
		return "all"
	case ScopeOwnedOnly:
		return "owned_only"
	case ScopeOwnerSet:
		return "owner_set"
	default:
		return "unknown"
	}
}

// Scope is the set of entity owners an actor may observe or affect.
// The zero value allows nothing.
type Scope struct {
	kind   ScopeKind
	owners map[domain.EmployeeID]struct{}
}

// All returns the unrestricted scope.
func All() Scope {
	return Scope{kind: ScopeAll}
}

// OwnedOnly restricts visibility to a single owner.
func OwnedOnly(owner domain.EmployeeID) Scope {
	return Scope{kind: ScopeOwnedOnly, owners: map[domain.EmployeeID]struct{}{owner: {}}}
}

// OwnerSet restricts visibility to the given owners.
func OwnerSet(owners ...domain.EmployeeID) Scope {
	set := make(map[domain.EmployeeID]struct{}, len(owners))
	for _, o := range owners {
		set[o] = struct{}{}
	}
	return Scope{kind: ScopeOwnerSet, owners: set}
}

func (s Scope) Kind() ScopeKind { return s.kind }

// Allows reports whether candidate falls inside the scope. A nil owner is only
// visible to the unrestricted scope.
func (s Scope) Allows(candidate domain.EmployeeID) bool {
	switch s.kind {
	case ScopeAll:
		return true
	case ScopeOwnedOnly, ScopeOwnerSet:
		if candidate.IsNil() {
			return false
		}
		_, ok := s.owners[candidate]
		return ok
	default:
		return false
	}
}

// OwnerIDs translates the scope into a storage predicate. unrestricted is true
// for ScopeAll, in which case ids is nil and no owner filter applies. A
// restricted scope always returns a non-nil (possibly empty) slice.
func (s Scope) OwnerIDs() (ids []domain.EmployeeID, unrestricted bool) {
	if s.kind == ScopeAll {
		return nil, true
	}
	ids = make([]domain.EmployeeID, 0, len(s.owners))
	for id := range s.owners {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b domain.EmployeeID) int {
		return bytes.Compare(a[:], b[:])
	})
	return ids, false
}
