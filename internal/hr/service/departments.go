package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"hrms/internal/audit"
	"hrms/internal/hr/models"
	dErrors "hrms/pkg/domain-errors"
	"hrms/pkg/platform/sentinel"
)

// Departments are organisation-wide: any resolved actor may read them, only
// an unrestricted scope may change them.

func (s *Service) ListDepartments(ctx context.Context, limit, offset int) (page *models.Page[*models.Department], err error) {
	op, err := s.begin(ctx, models.ResourceDepartment, audit.ActionRead)
	if err != nil {
		return nil, err
	}
	defer func() { op.end(err) }()

	filter := models.ScopedFilter(op.scope, "", limit, offset)
	items, total, err := s.store.ListDepartments(op.ctx, filter.Limit, filter.Offset)
	if err != nil {
		return nil, storeErr(err, "department not found")
	}
	op.record(nil, nil, nil)
	return models.NewPage(items, total, filter), nil
}

func (s *Service) GetDepartment(ctx context.Context, id uuid.UUID) (d *models.Department, err error) {
	op, err := s.begin(ctx, models.ResourceDepartment, audit.ActionRead)
	if err != nil {
		return nil, err
	}
	defer func() { op.end(err) }()

	d, err = s.store.GetDepartment(op.ctx, id)
	if err != nil {
		return nil, departmentErr(err)
	}
	op.record(idPtr(d.ID), nil, nil)
	return d, nil
}

func (s *Service) CreateDepartment(ctx context.Context, req *models.CreateDepartmentRequest) (d *models.Department, err error) {
	op, err := s.begin(ctx, models.ResourceDepartment, audit.ActionCreate)
	if err != nil {
		return nil, err
	}
	defer func() { op.end(err) }()

	if err = op.requireUnrestricted(); err != nil {
		return nil, err
	}
	if err = op.validate(func() error { return s.requireEmployee(op.ctx, req.HeadID) }); err != nil {
		return nil, err
	}

	ts := now(op.ctx)
	d = &models.Department{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		HeadID:      req.HeadID,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
	err = op.mutate(func(ctx context.Context) error {
		return s.store.CreateDepartment(ctx, d)
	})
	if err != nil {
		return nil, departmentErr(err)
	}
	op.record(idPtr(d.ID), nil, d)
	return d, nil
}

func (s *Service) UpdateDepartment(ctx context.Context, id uuid.UUID, req *models.UpdateDepartmentRequest) (d *models.Department, err error) {
	op, err := s.begin(ctx, models.ResourceDepartment, audit.ActionUpdate)
	if err != nil {
		return nil, err
	}
	defer func() { op.end(err) }()

	if err = op.requireUnrestricted(); err != nil {
		return nil, err
	}
	if err = op.validate(func() error { return s.requireEmployee(op.ctx, req.HeadID) }); err != nil {
		return nil, err
	}

	ts := now(op.ctx)
	var before *models.Department
	err = op.mutate(func(ctx context.Context) error {
		var execErr error
		d, execErr = s.store.ExecuteDepartment(ctx, id,
			func(cur *models.Department) error {
				before = cur.Clone()
				return nil
			},
			func(cur *models.Department) {
				if req.Name != nil {
					cur.Name = strings.TrimSpace(*req.Name)
				}
				if req.Description != nil {
					cur.Description = *req.Description
				}
				if req.HeadID != nil {
					cur.HeadID = req.HeadID
				}
				cur.UpdatedAt = ts
			},
		)
		return execErr
	})
	if err != nil {
		return nil, departmentErr(err)
	}
	op.record(idPtr(d.ID), before, d)
	return d, nil
}

// DeleteDepartment refuses to remove a department that still has employees.
func (s *Service) DeleteDepartment(ctx context.Context, id uuid.UUID) (err error) {
	op, err := s.begin(ctx, models.ResourceDepartment, audit.ActionDelete)
	if err != nil {
		return err
	}
	defer func() { op.end(err) }()

	if err = op.requireUnrestricted(); err != nil {
		return err
	}
	current, err := s.store.GetDepartment(op.ctx, id)
	if err != nil {
		return departmentErr(err)
	}
	err = op.validate(func() error {
		n, err := s.store.CountDepartmentEmployees(op.ctx, id)
		if err != nil {
			return storeErr(err, "department not found")
		}
		if n > 0 {
			return dErrors.New(dErrors.CodeConflict, "department still has employees").
				WithDetail("employee_count", n)
		}
		return nil
	})
	if err != nil {
		return err
	}
	err = op.mutate(func(ctx context.Context) error {
		return s.store.DeleteDepartment(ctx, id)
	})
	if err != nil {
		return departmentErr(err)
	}
	op.record(idPtr(id), current, nil)
	return nil
}

func departmentErr(err error) error {
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.NotFound(dErrors.ReasonDepartmentNotFound, "department not found")
	case errors.Is(err, sentinel.ErrConflict):
		return dErrors.New(dErrors.CodeConflict, "department name is already in use")
	}
	return storeErr(err, "department not found")
}
