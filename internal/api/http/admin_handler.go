package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/service"
)

// AdminHandler serves the authenticated admin surface: application review,
// registration listings, and the member roster.
type AdminHandler struct {
	admin service.AdminService
}

func NewAdminHandler(admin service.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// ListApplications handles GET /api/v1/admin/applications.
func (h *AdminHandler) ListApplications(w http.ResponseWriter, r *http.Request) {
	apps, err := h.admin.ListApplications(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if apps == nil {
		apps = []domain.Application{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"applications": apps})
}

// UpdateApplication handles PATCH /api/v1/admin/applications/{id}.
func (h *AdminHandler) UpdateApplication(w http.ResponseWriter, r *http.Request) {
	obj, err := decodeObject(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var upd service.ApplicationUpdate
	for _, f := range []struct {
		dst   **string
		key   string
		label string
	}{
		{&upd.Name, "name", "Name"},
		{&upd.Branch, "branch", "Branch"},
		{&upd.Year, "year", "Year"},
		{&upd.College, "college", "College"},
		{&upd.Domain, "domain", "Domain"},
		{&upd.Reason, "reason", "Reason"},
		{&upd.LinkedIn, "linkedin", "LinkedIn profile"},
		{&upd.GitHub, "github", "GitHub profile"},
	} {
		value, err := obj.optionalStringField(f.key, f.label)
		if err != nil {
			writeError(w, err)
			return
		}
		*f.dst = value
	}

	if err := h.admin.UpdateApplication(r.Context(), mux.Vars(r)["id"], upd); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Application updated"})
}

// UpdateApplicationStatus handles PATCH /api/v1/admin/applications/{id}/status.
func (h *AdminHandler) UpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	obj, err := decodeObject(r)
	if err != nil {
		writeError(w, err)
		return
	}

	status, err := obj.stringField("status", "Status")
	if err != nil {
		writeError(w, err)
		return
	}
	if status == "" {
		writeError(w, domain.NewValidationError("Status is required"))
		return
	}

	app, err := h.admin.UpdateApplicationStatus(r.Context(), mux.Vars(r)["id"], domain.ApplicationStatus(status))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":     "Application status updated",
		"application": app,
	})
}

// DeleteApplication handles DELETE /api/v1/admin/applications/{id}.
func (h *AdminHandler) DeleteApplication(w http.ResponseWriter, r *http.Request) {
	if err := h.admin.DeleteApplication(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Application deleted"})
}

// ListRegistrations handles GET /api/v1/admin/events/{eventId}/registrations.
func (h *AdminHandler) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	regs, err := h.admin.ListRegistrations(r.Context(), mux.Vars(r)["eventId"])
	if err != nil {
		writeError(w, err)
		return
	}
	if regs == nil {
		regs = []domain.Registration{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"registrations": regs})
}

// ListMembers handles GET /api/v1/admin/members.
func (h *AdminHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.admin.ListMembers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if members == nil {
		members = []domain.Member{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"members": members})
}
