package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"hrms/internal/audit"
	"hrms/internal/events"
	"hrms/internal/hr/models"
	"hrms/pkg/domain"
	dErrors "hrms/pkg/domain-errors"
	"hrms/pkg/platform/sentinel"
)

// EmployeeQuery is the caller-supplied part of an employee list.
type EmployeeQuery struct {
	Status       string
	DepartmentID *uuid.UUID
	ManagerID    *domain.EmployeeID
	Limit        int
	Offset       int
}

func (s *Service) ListEmployees(ctx context.Context, q EmployeeQuery) (page *models.Page[*models.Employee], err error) {
	op, err := s.begin(ctx, models.ResourceEmployee, audit.ActionRead)
	if err != nil {
		return nil, err
	}
	defer func() { op.end(err) }()

	filter := models.EmployeeFilter{
		ListFilter:   models.ScopedFilter(op.scope, q.Status, q.Limit, q.Offset),
		DepartmentID: q.DepartmentID,
		ManagerID:    q.ManagerID,
	}
	items, total, err := s.store.ListEmployees(op.ctx, filter)
	if err != nil {
		return nil, storeErr(err, "employee not found")
	}
	op.record(nil, nil, nil)
	return models.NewPage(items, total, filter.ListFilter), nil
}

func (s *Service) GetEmployee(ctx context.Context, id domain.EmployeeID) (e *models.Employee, err error) {
	op, err := s.begin(ctx, models.ResourceEmployee, audit.ActionRead)
	if err != nil {
		return nil, err
	}
	defer func() { op.end(err) }()

	e, err = s.store.GetEmployee(op.ctx, id)
	if err != nil {
		return nil, employeeErr(err)
	}
	if err = op.check(e.OwnerID()); err != nil {
		return nil, err
	}
	op.record(employeeRef(e.ID), nil, nil)
	return e, nil
}

func (s *Service) CreateEmployee(ctx context.Context, req *models.CreateEmployeeRequest) (e *models.Employee, err error) {
	op, err := s.begin(ctx, models.ResourceEmployee, audit.ActionCreate)
	if err != nil {
		return nil, err
	}
	defer func() { op.end(err) }()

	if err = op.requireUnrestricted(); err != nil {
		return nil, err
	}
	req.Normalize()
	err = op.validate(func() error {
		if err := s.requireDepartment(op.ctx, req.DepartmentID); err != nil {
			return err
		}
		return s.requireManager(op.ctx, req.ManagerID, nil)
	})
	if err != nil {
		return nil, err
	}

	ts := now(op.ctx)
	e = &models.Employee{
		ID:           domain.NewEmployeeID(),
		UserID:       req.UserID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Position:     req.Position,
		DepartmentID: req.DepartmentID,
		ManagerID:    req.ManagerID,
		Status:       models.EmployeeActive,
		Salary:       req.Salary,
		HireDate:     req.HireDate,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}
	err = op.mutate(func(ctx context.Context) error {
		return s.store.CreateEmployee(ctx, e)
	})
	if err != nil {
		return nil, employeeErr(err)
	}
	s.invalidateHierarchy(op.ctx, e.ManagerID)
	op.record(employeeRef(e.ID), nil, e)
	return e, nil
}

func (s *Service) UpdateEmployee(ctx context.Context, id domain.EmployeeID, req *models.UpdateEmployeeRequest) (e *models.Employee, err error) {
	op, err := s.begin(ctx, models.ResourceEmployee, audit.ActionUpdate)
	if err != nil {
		return nil, err
	}
	defer func() { op.end(err) }()

	if err = op.requireUnrestricted(); err != nil {
		return nil, err
	}
	err = op.validate(func() error {
		if err := s.requireDepartment(op.ctx, req.DepartmentID); err != nil {
			return err
		}
		return s.requireManager(op.ctx, req.ManagerID, &id)
	})
	if err != nil {
		return nil, err
	}

	ts := now(op.ctx)
	var before *models.Employee
	err = op.mutate(func(ctx context.Context) error {
		var execErr error
		e, execErr = s.store.ExecuteEmployee(ctx, id,
			func(cur *models.Employee) error {
				if err := op.check(cur.OwnerID()); err != nil {
					return err
				}
				before = cur.Clone()
				return nil
			},
			func(cur *models.Employee) {
				applyEmployeeUpdate(cur, req, ts)
			},
		)
		return execErr
	})
	if err != nil {
		return nil, employeeErr(err)
	}

	if !sameEmployeeRef(before.ManagerID, e.ManagerID) {
		s.invalidateHierarchy(op.ctx, before.ManagerID, e.ManagerID)
	}
	op.record(employeeRef(e.ID), before, e)
	if before.Status != models.EmployeeTerminated && e.Status == models.EmployeeTerminated {
		op.publish(employeeTerminated(e))
	}
	return e, nil
}

// DeleteEmployee terminates an employee who is still referenced by reports,
// payroll, interviews, onboarding tasks, documents or a department, and
// removes one who is not. The count and the write share a transaction.
func (s *Service) DeleteEmployee(ctx context.Context, id domain.EmployeeID) (e *models.Employee, err error) {
	op, err := s.begin(ctx, models.ResourceEmployee, audit.ActionDelete)
	if err != nil {
		return nil, err
	}
	defer func() { op.end(err) }()

	if err = op.requireUnrestricted(); err != nil {
		return nil, err
	}
	current, err := s.store.GetEmployee(op.ctx, id)
	if err != nil {
		return nil, employeeErr(err)
	}
	ts := now(op.ctx)
	var dependents models.EmployeeDependents
	err = op.mutate(func(ctx context.Context) error {
		var execErr error
		if dependents, execErr = s.store.CountEmployeeDependents(ctx, id); execErr != nil {
			return execErr
		}
		if !dependents.Any() {
			return s.store.DeleteEmployee(ctx, id)
		}
		e, execErr = s.store.ExecuteEmployee(ctx, id,
			func(cur *models.Employee) error {
				current = cur.Clone()
				return nil
			},
			func(cur *models.Employee) {
				terminate(cur, ts)
			},
		)
		return execErr
	})
	if err != nil {
		return nil, employeeErr(err)
	}
	if !dependents.Any() {
		s.invalidateHierarchy(op.ctx, current.ManagerID)
		op.record(employeeRef(id), current, nil)
		return nil, nil
	}
	op.record(employeeRef(id), current, e)
	if current.Status != models.EmployeeTerminated {
		op.publish(employeeTerminated(e))
	}
	return e, nil
}

func applyEmployeeUpdate(e *models.Employee, req *models.UpdateEmployeeRequest, ts time.Time) {
	if req.FirstName != nil {
		e.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		e.LastName = *req.LastName
	}
	if req.Email != nil {
		e.Email = *req.Email
	}
	if req.Position != nil {
		e.Position = *req.Position
	}
	if req.DepartmentID != nil {
		e.DepartmentID = req.DepartmentID
	}
	if req.ManagerID != nil {
		e.ManagerID = req.ManagerID
	}
	if req.ClearManager {
		e.ManagerID = nil
	}
	if req.Salary != nil {
		e.Salary = *req.Salary
	}
	if req.Status != nil && *req.Status != e.Status {
		if *req.Status == models.EmployeeTerminated {
			terminate(e, ts)
		} else {
			e.Status = *req.Status
			e.TerminatedAt = nil
		}
	}
	e.UpdatedAt = ts
}

func terminate(e *models.Employee, ts time.Time) {
	if e.Status != models.EmployeeTerminated {
		e.Status = models.EmployeeTerminated
		e.TerminatedAt = &ts
	}
	e.UpdatedAt = ts
}

func employeeTerminated(e *models.Employee) events.Event {
	evt := events.New(events.EmployeeTerminated, models.ResourceEmployee, uuid.UUID(e.ID), map[string]any{
		"terminated_at": e.TerminatedAt,
	})
	owner := e.ID
	evt.OwnerID = &owner
	return evt
}

func (s *Service) requireDepartment(ctx context.Context, id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	if _, err := s.store.GetDepartment(ctx, *id); err != nil {
		return departmentErr(err)
	}
	return nil
}

// requireManager checks that the manager exists, is not terminated and is
// not the employee being updated.
func (s *Service) requireManager(ctx context.Context, managerID *domain.EmployeeID, self *domain.EmployeeID) error {
	if managerID == nil {
		return nil
	}
	if self != nil && *managerID == *self {
		return dErrors.New(dErrors.CodeValidation, "an employee cannot manage themselves")
	}
	m, err := s.store.GetEmployee(ctx, *managerID)
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.NotFound(dErrors.ReasonManagerNotFound, "manager not found")
	}
	if err != nil {
		return storeErr(err, "manager not found")
	}
	if m.Status == models.EmployeeTerminated {
		return dErrors.NotFound(dErrors.ReasonManagerNotFound, "manager is terminated")
	}
	return nil
}

func employeeErr(err error) error {
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.NotFound(dErrors.ReasonEmployeeNotFound, "employee not found")
	case errors.Is(err, sentinel.ErrInUse):
		return dErrors.InUse("employee is still referenced by other records")
	case errors.Is(err, sentinel.ErrConflict):
		return dErrors.New(dErrors.CodeConflict, "employee email is already in use")
	}
	return storeErr(err, "employee not found")
}

func sameEmployeeRef(a, b *domain.EmployeeID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// requireEmployee checks that a referenced employee exists.
func (s *Service) requireEmployee(ctx context.Context, id *domain.EmployeeID) error {
	if id == nil {
		return nil
	}
	if _, err := s.store.GetEmployee(ctx, *id); err != nil {
		return employeeErr(err)
	}
	return nil
}
