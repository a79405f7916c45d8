package handler

import (
	"net/http"

	"hrms/internal/hr/models"
	"hrms/pkg/platform/httputil"
)

func (h *Handler) HandleListJobPostings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	limit, offset, err := pagination(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	page, err := h.service.ListJobPostings(ctx, r.URL.Query().Get("status"), limit, offset)
	if err != nil {
		h.fail(ctx, w, "list job postings failed", err)
		return
	}
	writePage(w, page)
}

func (h *Handler) HandleGetJobPosting(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := idParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	j, err := h.service.GetJobPosting(ctx, id)
	if err != nil {
		h.fail(ctx, w, "get job posting failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, j)
}

func (h *Handler) HandleCreateJobPosting(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := decode[models.CreateJobPostingRequest](h, w, r)
	if !ok {
		return
	}
	j, err := h.service.CreateJobPosting(ctx, req)
	if err != nil {
		h.fail(ctx, w, "create job posting failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, j)
}

func (h *Handler) HandleUpdateJobPosting(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := idParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := decode[models.UpdateJobPostingRequest](h, w, r)
	if !ok {
		return
	}
	j, err := h.service.UpdateJobPosting(ctx, id, req)
	if err != nil {
		h.fail(ctx, w, "update job posting failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, j)
}

// HandleDeleteJobPosting closes a posting that has applications and removes
// one that has none.
func (h *Handler) HandleDeleteJobPosting(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := idParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	j, err := h.service.DeleteJobPosting(ctx, id)
	if err != nil {
		h.fail(ctx, w, "delete job posting failed", err)
		return
	}
	writeRemoved(w, j)
}

func (h *Handler) HandleListApplications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	limit, offset, err := pagination(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	postingID, err := optionalID(r, "job_posting_id")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	page, err := h.service.ListApplications(ctx, postingID, r.URL.Query().Get("status"), limit, offset)
	if err != nil {
		h.fail(ctx, w, "list applications failed", err)
		return
	}
	writePage(w, page)
}

func (h *Handler) HandleGetApplication(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := idParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	a, err := h.service.GetApplication(ctx, id)
	if err != nil {
		h.fail(ctx, w, "get application failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, a)
}

func (h *Handler) HandleCreateApplication(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := decode[models.CreateApplicationRequest](h, w, r)
	if !ok {
		return
	}
	a, err := h.service.CreateApplication(ctx, req)
	if err != nil {
		h.fail(ctx, w, "create application failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, a)
}

// HandleUpdateApplicationStatus handles PUT /applications/{id}/status.
func (h *Handler) HandleUpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := idParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := decode[models.UpdateApplicationStatusRequest](h, w, r)
	if !ok {
		return
	}
	a, err := h.service.UpdateApplicationStatus(ctx, id, req.Status)
	if err != nil {
		h.fail(ctx, w, "update application status failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, a)
}

func (h *Handler) HandleListInterviews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	limit, offset, err := pagination(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	applicationID, err := optionalID(r, "application_id")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	page, err := h.service.ListInterviews(ctx, applicationID, r.URL.Query().Get("status"), limit, offset)
	if err != nil {
		h.fail(ctx, w, "list interviews failed", err)
		return
	}
	writePage(w, page)
}

func (h *Handler) HandleGetInterview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := idParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	i, err := h.service.GetInterview(ctx, id)
	if err != nil {
		h.fail(ctx, w, "get interview failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, i)
}

func (h *Handler) HandleScheduleInterview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := decode[models.ScheduleInterviewRequest](h, w, r)
	if !ok {
		return
	}
	i, err := h.service.ScheduleInterview(ctx, req)
	if err != nil {
		h.fail(ctx, w, "schedule interview failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, i)
}

func (h *Handler) HandleUpdateInterview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := idParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := decode[models.UpdateInterviewRequest](h, w, r)
	if !ok {
		return
	}
	i, err := h.service.UpdateInterview(ctx, id, req)
	if err != nil {
		h.fail(ctx, w, "update interview failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, i)
}

// HandleCancelInterview handles DELETE /interviews/{id} as a cancellation.
func (h *Handler) HandleCancelInterview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := idParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	i, err := h.service.CancelInterview(ctx, id)
	if err != nil {
		h.fail(ctx, w, "cancel interview failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, i)
}
