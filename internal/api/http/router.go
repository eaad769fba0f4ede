package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"clubhub-backend/internal/security"
	"clubhub-backend/internal/service"
)

// RouterConfig bundles everything the HTTP surface depends on.
type RouterConfig struct {
	Applications      service.ApplicationService
	Registrations     service.RegistrationService
	Events            service.EventService
	Admin             service.AdminService
	Verifier          security.Verifier
	RequireAdminClaim bool
}

// NewRouter wires the public intake endpoints and the authenticated admin
// surface onto a single mux router.
func NewRouter(cfg RouterConfig) *mux.Router {
	router := mux.NewRouter()
	router.Use(LoggingMiddleware)
	router.NotFoundHandler = notFoundHandler()
	router.MethodNotAllowedHandler = methodNotAllowedHandler(router)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	applicationHandler := NewApplicationHandler(cfg.Applications)
	registrationHandler := NewRegistrationHandler(cfg.Registrations)
	eventHandler := NewEventHandler(cfg.Events)
	adminHandler := NewAdminHandler(cfg.Admin)

	api := router.PathPrefix("/api/v1").Subrouter()
	// Subrouters do not inherit the custom handlers from the parent.
	api.NotFoundHandler = router.NotFoundHandler
	api.MethodNotAllowedHandler = router.MethodNotAllowedHandler
	api.HandleFunc("/applications", applicationHandler.Submit).Methods(http.MethodPost)
	api.HandleFunc("/registrations", registrationHandler.Submit).Methods(http.MethodPost)
	api.HandleFunc("/events", eventHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/events/{id}", eventHandler.Get).Methods(http.MethodGet)

	auth := NewAuthMiddleware(cfg.Verifier, cfg.RequireAdminClaim)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.NotFoundHandler = router.NotFoundHandler
	admin.MethodNotAllowedHandler = router.MethodNotAllowedHandler
	admin.Use(auth.Middleware)
	admin.HandleFunc("/applications", adminHandler.ListApplications).Methods(http.MethodGet)
	admin.HandleFunc("/applications/{id}", adminHandler.UpdateApplication).Methods(http.MethodPatch)
	admin.HandleFunc("/applications/{id}/status", adminHandler.UpdateApplicationStatus).Methods(http.MethodPatch)
	admin.HandleFunc("/applications/{id}", adminHandler.DeleteApplication).Methods(http.MethodDelete)
	admin.HandleFunc("/events", eventHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/events/{id}", eventHandler.Update).Methods(http.MethodPatch)
	admin.HandleFunc("/events/{id}", eventHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/events/{eventId}/registrations", adminHandler.ListRegistrations).Methods(http.MethodGet)
	admin.HandleFunc("/members", adminHandler.ListMembers).Methods(http.MethodGet)

	return router
}
