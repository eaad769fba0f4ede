package http

import (
	"net/http"

	"clubhub-backend/internal/service"
)

// ApplicationHandler handles public membership-application intake.
type ApplicationHandler struct {
	applications service.ApplicationService
}

func NewApplicationHandler(applications service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

// Submit handles POST /api/v1/applications.
func (h *ApplicationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	obj, err := decodeObject(r)
	if err != nil {
		writeError(w, err)
		return
	}

	sub, err := applicationSubmission(obj)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := h.applications.Submit(r.Context(), sub)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func applicationSubmission(obj rawObject) (service.ApplicationSubmission, error) {
	var sub service.ApplicationSubmission
	for _, f := range []struct {
		dst   *string
		key   string
		label string
	}{
		{&sub.Name, "name", "Name"},
		{&sub.Email, "email", "Email"},
		{&sub.Branch, "branch", "Branch"},
		{&sub.Year, "year", "Year"},
		{&sub.College, "college", "College"},
		{&sub.Domain, "domain", "Domain"},
		{&sub.Reason, "reason", "Reason"},
		{&sub.LinkedIn, "linkedin", "LinkedIn profile"},
		{&sub.GitHub, "github", "GitHub profile"},
		{&sub.Honeypot, "website", "Website"},
	} {
		value, err := obj.stringField(f.key, f.label)
		if err != nil {
			return sub, err
		}
		*f.dst = value
	}

	startedAt, err := obj.int64Field("formStartedAt", "Form start time")
	if err != nil {
		return sub, err
	}
	sub.FormStartedAt = startedAt
	return sub, nil
}
