package workflow

import (
	"fmt"
	"slices"

	dErrors "hrms/pkg/domain-errors"
)

// Status is implemented by every status enum that carries a transition table.
type Status[S any] interface {
	~string
	Next() []S
	IsValid() bool
}

// ValidateTransition checks that to is reachable from from in one step.
// Staying in the same status is always allowed. A rejection carries the
// current status and the valid next states as details.
func ValidateTransition[S Status[S]](entity Entity, from, to S) error {
	if !to.IsValid() {
		return dErrors.Rejected(dErrors.ReasonInvalidStatusTransition,
			fmt.Sprintf("unknown %s status %q", entity, string(to))).
			WithDetail("current_status", string(from)).
			WithDetail("valid_transitions", names(from.Next()))
	}
	if from == to {
		return nil
	}
	next := from.Next()
	if slices.Contains(next, to) {
		return nil
	}
	return dErrors.Rejected(dErrors.ReasonInvalidStatusTransition,
		fmt.Sprintf("cannot transition %s from %s to %s", entity, string(from), string(to))).
		WithDetail("current_status", string(from)).
		WithDetail("requested_status", string(to)).
		WithDetail("valid_transitions", names(next))
}

func names[S ~string](statuses []S) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, string(s))
	}
	return out
}
