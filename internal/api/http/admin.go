package httpapi

import (
	"net/http"

	"github.com/Menwuyelet/jobboard/internal/service"
)

type AdminHandler struct {
	admins service.AdminService
}

func NewAdminHandler(admins service.AdminService) *AdminHandler {
	return &AdminHandler{admins: admins}
}

func (h *AdminHandler) ToggleCanPost(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustUser(w, r)
	if !ok {
		return
	}
	id, err := idFromPath(r)
	if err != nil {
		writeError(w, err)
		return
	}
	user, err := h.admins.ToggleCanPost(r.Context(), actor, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *AdminHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustUser(w, r)
	if !ok {
		return
	}
	var req service.RegisterInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	admin, err := h.admins.CreateAdmin(r.Context(), actor, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, admin)
}

func (h *AdminHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustUser(w, r)
	if !ok {
		return
	}
	id, err := idFromPath(r)
	if err != nil {
		writeError(w, err)
		return
	}
	admin, err := h.admins.GetAdmin(r.Context(), actor, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, admin)
}

func (h *AdminHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustUser(w, r)
	if !ok {
		return
	}
	id, err := idFromPath(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req service.UpdateUserInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	admin, err := h.admins.UpdateAdmin(r.Context(), actor, id, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, admin)
}

func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustUser(w, r)
	if !ok {
		return
	}
	id, err := idFromPath(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.admins.DeleteAdmin(r.Context(), actor, id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustUser(w, r)
	if !ok {
		return
	}
	admins, err := h.admins.ListAdmins(r.Context(), actor)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, admins)
}
