package httpapi

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/Menwuyelet/jobboard/internal/domain"
	"github.com/Menwuyelet/jobboard/internal/service"
)

type JobHandler struct {
	jobs service.JobService
}

func NewJobHandler(jobs service.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustUser(w, r)
	if !ok {
		return
	}
	var req service.JobInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	job, err := h.jobs.Create(r.Context(), actor, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, job)
}

func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		writeError(w, err)
		return
	}
	job, err := h.jobs.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

// List serves the public feed. Filters arrive as query parameters and
// unknown values simply match nothing.
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := domain.JobFilter{}
	q := r.URL.Query()
	if raw := q.Get("category"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, domain.Wrap(domain.CodeValidation, "invalid category filter", err))
			return
		}
		filter.CategoryID = &id
	}
	if raw := q.Get("is_active"); raw != "" {
		active := raw == "true"
		filter.IsActive = &active
	}
	if raw := q.Get("working_area"); raw != "" {
		filter.WorkingArea = domain.WorkingArea(raw)
	}
	if raw := q.Get("type"); raw != "" {
		filter.Type = domain.JobType(raw)
	}
	items, err := h.jobs.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *JobHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustUser(w, r)
	if !ok {
		return
	}
	items, err := h.jobs.ListMine(r.Context(), actor)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustUser(w, r)
	if !ok {
		return
	}
	id, err := idFromPath(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req service.UpdateJobInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	job, err := h.jobs.Update(r.Context(), actor, id, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustUser(w, r)
	if !ok {
		return
	}
	id, err := idFromPath(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.jobs.Delete(r.Context(), actor, id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *JobHandler) AdminDelete(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustUser(w, r)
	if !ok {
		return
	}
	id, err := idFromPath(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.jobs.AdminDelete(r.Context(), actor, id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
