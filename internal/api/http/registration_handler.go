package http

import (
	"net/http"

	"clubhub-backend/internal/service"
)

// RegistrationHandler handles public event-registration intake.
type RegistrationHandler struct {
	registrations service.RegistrationService
}

func NewRegistrationHandler(registrations service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{registrations: registrations}
}

// Submit handles POST /api/v1/registrations.
func (h *RegistrationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	obj, err := decodeObject(r)
	if err != nil {
		writeError(w, err)
		return
	}

	sub, err := registrationSubmission(obj)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := h.registrations.Register(r.Context(), sub)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func registrationSubmission(obj rawObject) (service.RegistrationSubmission, error) {
	var sub service.RegistrationSubmission
	for _, f := range []struct {
		dst   *string
		key   string
		label string
	}{
		{&sub.EventID, "eventId", "Event ID"},
		{&sub.Name, "name", "Name"},
		{&sub.Email, "email", "Email"},
		{&sub.Team, "team", "Team"},
		{&sub.Department, "department", "Department"},
		{&sub.EnrollmentNo, "enrollmentNo", "Enrollment number"},
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

	// Shape violations inside responses are reported by the response
	// validator with its own messages, so the raw bytes pass through.
	sub.Responses = obj.rawField("responses")
	return sub, nil
}
