package httpapi

import (
	"net/http"

	"github.com/Menwuyelet/jobboard/internal/service"
)

type VerificationHandler struct {
	verifications service.VerificationService
}

func NewVerificationHandler(verifications service.VerificationService) *VerificationHandler {
	return &VerificationHandler{verifications: verifications}
}

type verificationSubmitRequest struct {
	Reason string `json:"reason"`
}

type verificationDecideRequest struct {
	Status string `json:"status"`
}

func (h *VerificationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustUser(w, r)
	if !ok {
		return
	}
	var req verificationSubmitRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	created, err := h.verifications.Submit(r.Context(), actor, req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *VerificationHandler) Decide(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustUser(w, r)
	if !ok {
		return
	}
	id, err := idFromPath(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req verificationDecideRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	decided, err := h.verifications.Decide(r.Context(), actor, id, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, decided)
}

func (h *VerificationHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustUser(w, r)
	if !ok {
		return
	}
	id, err := idFromPath(r)
	if err != nil {
		writeError(w, err)
		return
	}
	req, err := h.verifications.Get(r.Context(), actor, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *VerificationHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustUser(w, r)
	if !ok {
		return
	}
	items, err := h.verifications.List(r.Context(), actor)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}
