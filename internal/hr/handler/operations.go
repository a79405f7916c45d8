package handler

import (
	"net/http"

	"hrms/internal/hr/models"
	"hrms/internal/hr/service"
	"hrms/pkg/platform/httputil"
)

func (h *Handler) HandleListOnboardingTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	limit, offset, err := pagination(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	page, err := h.service.ListOnboardingTasks(ctx, r.URL.Query().Get("status"), limit, offset)
	if err != nil {
		h.fail(ctx, w, "list onboarding tasks failed", err)
		return
	}
	writePage(w, page)
}

func (h *Handler) HandleGetOnboardingTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := idParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	t, err := h.service.GetOnboardingTask(ctx, id)
	if err != nil {
		h.fail(ctx, w, "get onboarding task failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, t)
}

func (h *Handler) HandleCreateOnboardingTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := decode[models.CreateOnboardingTaskRequest](h, w, r)
	if !ok {
		return
	}
	t, err := h.service.CreateOnboardingTask(ctx, req)
	if err != nil {
		h.fail(ctx, w, "create onboarding task failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, t)
}

func (h *Handler) HandleUpdateOnboardingTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := idParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := decode[models.UpdateOnboardingTaskRequest](h, w, r)
	if !ok {
		return
	}
	t, err := h.service.UpdateOnboardingTask(ctx, id, req)
	if err != nil {
		h.fail(ctx, w, "update onboarding task failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, t)
}

type bulkUpdateResponse struct {
	Updated int                      `json:"updated"`
	Tasks   []*models.OnboardingTask `json:"tasks"`
}

// HandleBulkUpdateOnboardingTasks handles PUT /onboarding-tasks/bulk-update.
// Either every task moves or none does.
func (h *Handler) HandleBulkUpdateOnboardingTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := decode[models.BulkUpdateOnboardingRequest](h, w, r)
	if !ok {
		return
	}
	tasks, err := h.service.BulkUpdateOnboardingTasks(ctx, req)
	if err != nil {
		h.fail(ctx, w, "bulk update onboarding tasks failed", err)
		return
	}
	if tasks == nil {
		tasks = []*models.OnboardingTask{}
	}
	httputil.WriteJSON(w, http.StatusOK, bulkUpdateResponse{Updated: len(tasks), Tasks: tasks})
}

func (h *Handler) HandleCancelOnboardingTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := idParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	t, err := h.service.CancelOnboardingTask(ctx, id)
	if err != nil {
		h.fail(ctx, w, "cancel onboarding task failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, t)
}

func (h *Handler) HandleListPayroll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	limit, offset, err := pagination(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	q := service.PayrollQuery{Status: r.URL.Query().Get("status"), Limit: limit, Offset: offset}
	if q.EmployeeID, err = optionalEmployeeID(r, "employee_id"); err != nil {
		httputil.WriteError(w, err)
		return
	}
	page, err := h.service.ListPayroll(ctx, q)
	if err != nil {
		h.fail(ctx, w, "list payroll failed", err)
		return
	}
	writePage(w, page)
}

func (h *Handler) HandleGetPayroll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := idParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	p, err := h.service.GetPayroll(ctx, id)
	if err != nil {
		h.fail(ctx, w, "get payroll failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) HandleCreatePayroll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := decode[models.CreatePayrollRequest](h, w, r)
	if !ok {
		return
	}
	p, err := h.service.CreatePayroll(ctx, req)
	if err != nil {
		h.fail(ctx, w, "create payroll failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, p)
}

func (h *Handler) HandleUpdatePayroll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := idParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := decode[models.UpdatePayrollRequest](h, w, r)
	if !ok {
		return
	}
	p, err := h.service.UpdatePayroll(ctx, id, req)
	if err != nil {
		h.fail(ctx, w, "update payroll failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) HandleProcessPayroll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := idParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	p, err := h.service.ProcessPayroll(ctx, id)
	if err != nil {
		h.fail(ctx, w, "process payroll failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) HandlePayPayroll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := idParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	p, err := h.service.PayPayroll(ctx, id)
	if err != nil {
		h.fail(ctx, w, "pay payroll failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, p)
}

// HandleDeletePayroll removes a draft and cancels a processed record.
func (h *Handler) HandleDeletePayroll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := idParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	p, err := h.service.DeletePayroll(ctx, id)
	if err != nil {
		h.fail(ctx, w, "delete payroll failed", err)
		return
	}
	writeRemoved(w, p)
}

func (h *Handler) HandleListDocuments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	limit, offset, err := pagination(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	page, err := h.service.ListDocuments(ctx, r.URL.Query().Get("category"), limit, offset)
	if err != nil {
		h.fail(ctx, w, "list documents failed", err)
		return
	}
	writePage(w, page)
}

func (h *Handler) HandleGetDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := idParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	d, err := h.service.GetDocument(ctx, id)
	if err != nil {
		h.fail(ctx, w, "get document failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, d)
}

// HandleDownloadDocument returns the document metadata including its storage
// location; the access is audited as a download.
func (h *Handler) HandleDownloadDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := idParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	d, err := h.service.DownloadDocument(ctx, id)
	if err != nil {
		h.fail(ctx, w, "download document failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, d)
}

func (h *Handler) HandleCreateDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := decode[models.CreateDocumentRequest](h, w, r)
	if !ok {
		return
	}
	d, err := h.service.CreateDocument(ctx, req)
	if err != nil {
		h.fail(ctx, w, "create document failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, d)
}

func (h *Handler) HandleUpdateDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := idParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := decode[models.UpdateDocumentRequest](h, w, r)
	if !ok {
		return
	}
	d, err := h.service.UpdateDocument(ctx, id, req)
	if err != nil {
		h.fail(ctx, w, "update document failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, d)
}

func (h *Handler) HandleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := idParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.service.DeleteDocument(ctx, id); err != nil {
		h.fail(ctx, w, "delete document failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
