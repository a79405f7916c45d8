package testutil

import (
	"context"
	"net/http"

	"hrms/pkg/domain"
	"hrms/pkg/requestcontext"
)

// Admin returns an ADMIN actor with no employee profile.
func Admin() domain.Actor {
	return domain.Actor{ID: domain.NewUserID(), Role: domain.RoleAdmin}
}

// HR returns an HR actor with no employee profile.
func HR() domain.Actor {
	return domain.Actor{ID: domain.NewUserID(), Role: domain.RoleHR}
}

// Manager returns a MANAGER actor linked to the given employee record.
func Manager(employeeID domain.EmployeeID) domain.Actor {
	return domain.Actor{ID: domain.NewUserID(), Role: domain.RoleManager, OwnedEntityID: &employeeID}
}

// Employee returns an EMPLOYEE actor linked to the given employee record.
func Employee(employeeID domain.EmployeeID) domain.Actor {
	return domain.Actor{ID: domain.NewUserID(), Role: domain.RoleEmployee, OwnedEntityID: &employeeID}
}

// ActorContext builds a service-level context carrying the actor and
// fixed client metadata, the way the middleware chain would.
func ActorContext(actor domain.Actor) context.Context {
	ctx := requestcontext.WithActor(context.Background(), actor)
	ctx = requestcontext.WithClientMetadata(ctx, "203.0.113.7", "testutil/1.0")
	return requestcontext.WithRequestID(ctx, "req-test")
}

// WithActor attaches the actor to the request context.
// This simulates what the auth middleware would do for authenticated requests.
func WithActor(req *http.Request, actor domain.Actor) *http.Request {
	return req.WithContext(requestcontext.WithActor(req.Context(), actor))
}
