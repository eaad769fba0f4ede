package http

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"

	"github.com/gorilla/mux"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/logger"
)

// errorBody is the only failure shape the API emits. Message text is
// curated by the error taxonomy; internal diagnostics stay in the logs.
type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	apiErr := domain.AsError(err)
	if apiErr.Code == domain.CodeInternal {
		logger.Error("Request failed", "error", err)
	}
	writeJSON(w, apiErr.Status, errorBody{Error: apiErr.Message, Code: apiErr.Code})
}

func notFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody{
			Error: "Resource not found",
			Code:  domain.CodeValidation,
		})
	})
}

// methodNotAllowedHandler answers method mismatches with an Allow header
// listing the verbs the matched path accepts.
func methodNotAllowedHandler(router *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed := allowedMethods(router, r)
		if len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}
		message := "Method not allowed"
		if len(allowed) > 0 {
			message += "; allowed: " + strings.Join(allowed, ", ")
		}
		writeJSON(w, http.StatusMethodNotAllowed, errorBody{
			Error: message,
			Code:  domain.CodeValidation,
		})
	})
}

// allowedMethods probes every registered route against the request path
// and collects the verbs that would have matched.
func allowedMethods(router *mux.Router, r *http.Request) []string {
	seen := make(map[string]bool)
	router.Walk(func(route *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		methods, err := route.GetMethods()
		if err != nil {
			return nil
		}
		for _, method := range methods {
			if seen[method] {
				continue
			}
			probe := r.Clone(r.Context())
			probe.Method = method
			var match mux.RouteMatch
			if route.Match(probe, &match) {
				seen[method] = true
			}
		}
		return nil
	})

	allowed := make([]string, 0, len(seen))
	for method := range seen {
		allowed = append(allowed, method)
	}
	sort.Strings(allowed)
	return allowed
}
