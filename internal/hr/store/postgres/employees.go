package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"hrms/internal/hr/models"
	pgplatform "hrms/internal/platform/postgres"
	"hrms/pkg/domain"
	txcontext "hrms/pkg/platform/tx"
)

var employeeColumns = []string{
	"id", "user_id", "first_name", "last_name", "email", "position", "department_id",
	"manager_id", "status", "salary", "hire_date", "terminated_at", "created_at", "updated_at",
}

var departmentColumns = []string{"id", "name", "description", "head_id", "created_at", "updated_at"}

func (s *Store) GetEmployee(ctx context.Context, id domain.EmployeeID) (*models.Employee, error) {
	var e models.Employee
	err := txcontext.Use(ctx, s.db).GetContext(ctx, &e, selectSQL("employees", employeeColumns)+` WHERE id = $1`, id)
	if err != nil {
		return nil, pgplatform.Classify(err, "employee "+id.String())
	}
	return &e, nil
}

func (s *Store) ListEmployees(ctx context.Context, f models.EmployeeFilter) ([]*models.Employee, int, error) {
	p := &predicate{}
	if !p.owners("id", f.ListFilter) {
		return []*models.Employee{}, 0, nil
	}
	p.status("status", f.Status)
	if f.DepartmentID != nil {
		p.add("department_id = $%d", *f.DepartmentID)
	}
	if f.ManagerID != nil {
		p.add("manager_id = $%d", *f.ManagerID)
	}
	return list[*models.Employee](ctx, txcontext.Use(ctx, s.db), "employees", employeeColumns, p,
		"created_at DESC, id", f.Limit, f.Offset)
}

func (s *Store) FindEmployees(ctx context.Context, ids []domain.EmployeeID) ([]*models.Employee, error) {
	if len(ids) == 0 {
		return []*models.Employee{}, nil
	}
	var out []*models.Employee
	err := txcontext.Use(ctx, s.db).SelectContext(ctx, &out,
		selectSQL("employees", employeeColumns)+` WHERE id = ANY($1)`, pq.Array(employeeIDStrings(ids)))
	if err != nil {
		return nil, pgplatform.Classify(err, "find employees")
	}
	return out, nil
}

func (s *Store) CreateEmployee(ctx context.Context, e *models.Employee) error {
	return namedExec(ctx, txcontext.Use(ctx, s.db), insertSQL("employees", employeeColumns), e, "insert employee")
}

func (s *Store) ExecuteEmployee(ctx context.Context, id domain.EmployeeID, validate func(*models.Employee) error, mutate func(*models.Employee)) (*models.Employee, error) {
	return execute(ctx, s,
		func(ctx context.Context, q txcontext.Querier) (*models.Employee, error) {
			var e models.Employee
			err := q.GetContext(ctx, &e, selectSQL("employees", employeeColumns)+` WHERE id = $1 FOR UPDATE`, id)
			if err != nil {
				return nil, pgplatform.Classify(err, "employee "+id.String())
			}
			return &e, nil
		},
		validate, mutate,
		func(ctx context.Context, q txcontext.Querier, e *models.Employee) error {
			return namedExec(ctx, q, updateSQL("employees", employeeColumns), e, "update employee")
		},
	)
}

func (s *Store) DeleteEmployee(ctx context.Context, id domain.EmployeeID) error {
	return deleteByID(ctx, txcontext.Use(ctx, s.db), "employees", id, "employee "+id.String())
}

func (s *Store) CountEmployeeDependents(ctx context.Context, id domain.EmployeeID) (models.EmployeeDependents, error) {
	var counts models.EmployeeDependents
	err := txcontext.Use(ctx, s.db).GetContext(ctx, &counts, `
		SELECT
			(SELECT COUNT(*) FROM employees WHERE manager_id = $1::uuid AND status <> 'TERMINATED') AS reports,
			(SELECT COUNT(*) FROM payroll_records WHERE employee_id = $1::uuid) AS payroll,
			(SELECT COUNT(*) FROM interviews
				WHERE lead_interviewer_id = $1::uuid OR $1::uuid = ANY(interviewer_ids)) AS interviews,
			(SELECT COUNT(*) FROM onboarding_tasks
				WHERE employee_id = $1::uuid OR assignee_id = $1::uuid) AS onboarding_tasks,
			(SELECT COUNT(*) FROM documents WHERE employee_id = $1::uuid) AS documents,
			(SELECT COUNT(*) FROM departments WHERE head_id = $1::uuid) AS departments_led
	`, id)
	if err != nil {
		return models.EmployeeDependents{}, pgplatform.Classify(err, "count employee dependents")
	}
	return counts, nil
}

// DirectReports implements access.Directory and is the source behind the
// Redis hierarchy cache.
func (s *Store) DirectReports(ctx context.Context, managerID domain.EmployeeID) ([]domain.EmployeeID, error) {
	var ids []domain.EmployeeID
	err := txcontext.Use(ctx, s.db).SelectContext(ctx, &ids,
		`SELECT id FROM employees WHERE manager_id = $1 ORDER BY id`, managerID)
	if err != nil {
		return nil, pgplatform.Classify(err, "direct reports")
	}
	return ids, nil
}

// ---------------------------------------------------------------------------
// Departments
// ---------------------------------------------------------------------------

func (s *Store) GetDepartment(ctx context.Context, id uuid.UUID) (*models.Department, error) {
	var d models.Department
	err := txcontext.Use(ctx, s.db).GetContext(ctx, &d, selectSQL("departments", departmentColumns)+` WHERE id = $1`, id)
	if err != nil {
		return nil, pgplatform.Classify(err, "department "+id.String())
	}
	return &d, nil
}

func (s *Store) ListDepartments(ctx context.Context, limit, offset int) ([]*models.Department, int, error) {
	return list[*models.Department](ctx, txcontext.Use(ctx, s.db), "departments", departmentColumns, &predicate{},
		"name", limit, offset)
}

func (s *Store) CreateDepartment(ctx context.Context, d *models.Department) error {
	return namedExec(ctx, txcontext.Use(ctx, s.db), insertSQL("departments", departmentColumns), d, "insert department")
}

func (s *Store) ExecuteDepartment(ctx context.Context, id uuid.UUID, validate func(*models.Department) error, mutate func(*models.Department)) (*models.Department, error) {
	return execute(ctx, s,
		func(ctx context.Context, q txcontext.Querier) (*models.Department, error) {
			var d models.Department
			err := q.GetContext(ctx, &d, selectSQL("departments", departmentColumns)+` WHERE id = $1 FOR UPDATE`, id)
			if err != nil {
				return nil, pgplatform.Classify(err, "department "+id.String())
			}
			return &d, nil
		},
		validate, mutate,
		func(ctx context.Context, q txcontext.Querier, d *models.Department) error {
			return namedExec(ctx, q, updateSQL("departments", departmentColumns), d, "update department")
		},
	)
}

func (s *Store) DeleteDepartment(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, txcontext.Use(ctx, s.db), "departments", id, "department "+id.String())
}

func (s *Store) CountDepartmentEmployees(ctx context.Context, id uuid.UUID) (int, error) {
	var n int
	err := txcontext.Use(ctx, s.db).GetContext(ctx, &n,
		`SELECT COUNT(*) FROM employees WHERE department_id = $1`, id)
	if err != nil {
		return 0, pgplatform.Classify(err, "count department employees")
	}
	return n, nil
}
