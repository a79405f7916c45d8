package handler

import (
	"net/http"

	"hrms/internal/hr/models"
	"hrms/internal/hr/service"
	"hrms/pkg/platform/httputil"
)

// HandleListEmployees handles GET /employees with optional status,
// department_id and manager_id filters.
func (h *Handler) HandleListEmployees(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	limit, offset, err := pagination(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	q := service.EmployeeQuery{Status: r.URL.Query().Get("status"), Limit: limit, Offset: offset}
	if q.DepartmentID, err = optionalID(r, "department_id"); err != nil {
		httputil.WriteError(w, err)
		return
	}
	if q.ManagerID, err = optionalEmployeeID(r, "manager_id"); err != nil {
		httputil.WriteError(w, err)
		return
	}
	page, err := h.service.ListEmployees(ctx, q)
	if err != nil {
		h.fail(ctx, w, "list employees failed", err)
		return
	}
	writePage(w, page)
}

func (h *Handler) HandleGetEmployee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := employeeIDParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	e, err := h.service.GetEmployee(ctx, id)
	if err != nil {
		h.fail(ctx, w, "get employee failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, e)
}

func (h *Handler) HandleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := decode[models.CreateEmployeeRequest](h, w, r)
	if !ok {
		return
	}
	e, err := h.service.CreateEmployee(ctx, req)
	if err != nil {
		h.fail(ctx, w, "create employee failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, e)
}

func (h *Handler) HandleUpdateEmployee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := employeeIDParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := decode[models.UpdateEmployeeRequest](h, w, r)
	if !ok {
		return
	}
	e, err := h.service.UpdateEmployee(ctx, id, req)
	if err != nil {
		h.fail(ctx, w, "update employee failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, e)
}

// HandleDeleteEmployee handles DELETE /employees/{id}. Employees with history
// are terminated rather than removed.
func (h *Handler) HandleDeleteEmployee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := employeeIDParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	e, err := h.service.DeleteEmployee(ctx, id)
	if err != nil {
		h.fail(ctx, w, "delete employee failed", err)
		return
	}
	writeRemoved(w, e)
}

func (h *Handler) HandleListDepartments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	limit, offset, err := pagination(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	page, err := h.service.ListDepartments(ctx, limit, offset)
	if err != nil {
		h.fail(ctx, w, "list departments failed", err)
		return
	}
	writePage(w, page)
}

func (h *Handler) HandleGetDepartment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := idParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	d, err := h.service.GetDepartment(ctx, id)
	if err != nil {
		h.fail(ctx, w, "get department failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, d)
}

func (h *Handler) HandleCreateDepartment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := decode[models.CreateDepartmentRequest](h, w, r)
	if !ok {
		return
	}
	d, err := h.service.CreateDepartment(ctx, req)
	if err != nil {
		h.fail(ctx, w, "create department failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, d)
}

func (h *Handler) HandleUpdateDepartment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := idParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := decode[models.UpdateDepartmentRequest](h, w, r)
	if !ok {
		return
	}
	d, err := h.service.UpdateDepartment(ctx, id, req)
	if err != nil {
		h.fail(ctx, w, "update department failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, d)
}

func (h *Handler) HandleDeleteDepartment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := idParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.service.DeleteDepartment(ctx, id); err != nil {
		h.fail(ctx, w, "delete department failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
