package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/service"
)

// EventHandler serves the public event listing and the admin event CRUD.
type EventHandler struct {
	events service.EventService
}

func NewEventHandler(events service.EventService) *EventHandler {
	return &EventHandler{events: events}
}

// List handles GET /api/v1/events.
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if events == nil {
		events = []domain.Event{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"events": events})
}

// Get handles GET /api/v1/events/{id}.
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	event, err := h.events.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

// Create handles POST /api/v1/admin/events.
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	obj, err := decodeObject(r)
	if err != nil {
		writeError(w, err)
		return
	}

	event, err := eventFromBody(obj, &domain.Event{})
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.events.Create(r.Context(), event); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Event created",
		"id":      event.ID,
	})
}

// Update handles PATCH /api/v1/admin/events/{id}.
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	existing, err := h.events.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	obj, err := decodeObject(r)
	if err != nil {
		writeError(w, err)
		return
	}

	event, err := eventFromBody(obj, existing)
	if err != nil {
		writeError(w, err)
		return
	}
	event.ID = id

	if err := h.events.Update(r.Context(), event); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Event updated"})
}

// Delete handles DELETE /api/v1/admin/events/{id}.
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.events.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Event deleted"})
}

// eventFromBody overlays body fields onto base, leaving absent fields as
// they were. Create passes an empty base so absent means zero.
func eventFromBody(obj rawObject, base *domain.Event) (*domain.Event, error) {
	for _, f := range []struct {
		dst   *string
		key   string
		label string
	}{
		{&base.Title, "title", "Title"},
		{&base.Description, "description", "Description"},
		{&base.Venue, "venue", "Venue"},
	} {
		value, err := obj.optionalStringField(f.key, f.label)
		if err != nil {
			return nil, err
		}
		if value != nil {
			*f.dst = *value
		}
	}

	if _, ok := obj["capacity"]; ok {
		capacity, err := obj.intField("capacity", "Capacity")
		if err != nil {
			return nil, err
		}
		base.Capacity = capacity
	}

	if _, ok := obj["questions"]; ok {
		questions, err := obj.stringSliceField("questions", "Questions")
		if err != nil {
			return nil, err
		}
		base.Questions = questions
	}

	for _, f := range []struct {
		dst   *time.Time
		key   string
		label string
	}{
		{&base.StartsAt, "starts_at", "Start time"},
		{&base.EndsAt, "ends_at", "End time"},
	} {
		raw, err := obj.stringField(f.key, f.label)
		if err != nil {
			return nil, err
		}
		if raw == "" {
			continue
		}
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, domain.NewValidationError(f.label + " must be an RFC 3339 timestamp")
		}
		*f.dst = ts
	}

	return base, nil
}
