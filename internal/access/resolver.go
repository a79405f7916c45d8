package access

import (
	"context"
	"log/slog"

	"hrms/pkg/domain"
	dErrors "hrms/pkg/domain-errors"
	"hrms/pkg/requestcontext"
)

// Directory answers the one org question scope resolution needs: who reports
// directly to a manager. Only one level is resolved; the reporting subtree is
// intentionally not expanded.
type Directory interface {
	DirectReports(ctx context.Context, managerID domain.EmployeeID) ([]domain.EmployeeID, error)
}

// Resolver computes an actor's visibility scope.
type Resolver struct {
	directory Directory
	logger    *slog.Logger
}

type Option func(*Resolver)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

func NewResolver(directory Directory, opts ...Option) *Resolver {
	r := &Resolver{directory: directory}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ResolveScope maps an actor to its scope. It fails closed: unknown roles,
// missing employee links and directory failures all return AccessDenied and
// never widen to All.
func (r *Resolver) ResolveScope(ctx context.Context, actor domain.Actor) (Scope, error) {
	switch actor.Role {
	case domain.RoleAdmin, domain.RoleHR:
		return All(), nil
	case domain.RoleEmployee:
		if !actor.HasEmployee() {
			return Scope{}, dErrors.AccessDenied("actor has no employee profile")
		}
		return OwnedOnly(*actor.OwnedEntityID), nil
	case domain.RoleManager:
		if !actor.HasEmployee() {
			return Scope{}, dErrors.AccessDenied("manager has no employee profile")
		}
		self := *actor.OwnedEntityID
		if r.directory == nil {
			return Scope{}, dErrors.AccessDenied("org hierarchy unavailable")
		}
		reports, err := r.directory.DirectReports(ctx, self)
		if err != nil {
			if r.logger != nil {
				r.logger.WarnContext(ctx, "hierarchy lookup failed, denying access",
					"request_id", requestcontext.RequestID(ctx),
					"manager_id", self,
					"error", err,
				)
			}
			return Scope{}, dErrors.AccessDenied("org hierarchy unavailable")
		}
		return OwnerSet(append(reports, self)...), nil
	default:
		return Scope{}, dErrors.AccessDenied("unknown role")
	}
}

// Check returns AccessDenied when owner is outside scope.
func Check(scope Scope, owner domain.EmployeeID) error {
	if !scope.Allows(owner) {
		return dErrors.AccessDenied("record is outside the actor's scope")
	}
	return nil
}
