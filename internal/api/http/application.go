package httpapi

import (
	"net/http"

	"github.com/Menwuyelet/jobboard/internal/service"
)

type ApplicationHandler struct {
	applications service.ApplicationService
}

func NewApplicationHandler(applications service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

type applyRequest struct {
	Resume      string `json:"resume"`
	CoverLetter string `json:"cover_letter"`
}

type applicationStatusRequest struct {
	Status string `json:"status"`
}

// Apply handles POST on a job's apply subresource; {id} is the job id.
func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustUser(w, r)
	if !ok {
		return
	}
	jobID, err := idFromPath(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req applyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	app, err := h.applications.Apply(r.Context(), actor, jobID, req.Resume, req.CoverLetter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, app)
}

func (h *ApplicationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustUser(w, r)
	if !ok {
		return
	}
	id, err := idFromPath(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req applicationStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	app, err := h.applications.UpdateStatus(r.Context(), actor, id, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}

func (h *ApplicationHandler) Edit(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustUser(w, r)
	if !ok {
		return
	}
	id, err := idFromPath(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req service.ApplicationEdit
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	app, err := h.applications.Edit(r.Context(), actor, id, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}

func (h *ApplicationHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustUser(w, r)
	if !ok {
		return
	}
	id, err := idFromPath(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.applications.Withdraw(r.Context(), actor, id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *ApplicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustUser(w, r)
	if !ok {
		return
	}
	id, err := idFromPath(r)
	if err != nil {
		writeError(w, err)
		return
	}
	app, err := h.applications.Get(r.Context(), actor, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}

// ListForJob lists applications on a job; {id} is the job id.
func (h *ApplicationHandler) ListForJob(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustUser(w, r)
	if !ok {
		return
	}
	jobID, err := idFromPath(r)
	if err != nil {
		writeError(w, err)
		return
	}
	items, err := h.applications.ListForJob(r.Context(), actor, jobID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *ApplicationHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustUser(w, r)
	if !ok {
		return
	}
	items, err := h.applications.ListMine(r.Context(), actor)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}
