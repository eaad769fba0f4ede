package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/logger"
	"clubhub-backend/internal/security"
)

type contextKey string

const claimsContextKey contextKey = "auth_claims"

// ClaimsFromContext returns the verified claims the auth middleware stored
// on the request, or nil for unauthenticated requests.
func ClaimsFromContext(ctx context.Context) *security.Claims {
	claims, _ := ctx.Value(claimsContextKey).(*security.Claims)
	return claims
}

// AuthMiddleware gates admin routes behind bearer-token verification.
// Missing or unverifiable tokens are 401; a verified token without the
// admin claim is 403 unless the deployment disabled the claim check.
type AuthMiddleware struct {
	verifier          security.Verifier
	requireAdminClaim bool
}

func NewAuthMiddleware(verifier security.Verifier, requireAdminClaim bool) *AuthMiddleware {
	return &AuthMiddleware{
		verifier:          verifier,
		requireAdminClaim: requireAdminClaim,
	}
}

func (m *AuthMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			writeError(w, domain.NewUnauthorizedError("Missing or malformed Authorization header"))
			return
		}

		claims, err := m.verifier.Verify(r.Context(), token)
		if err != nil {
			logger.Warn("Token verification failed", "path", r.URL.Path, "error", err)
			writeError(w, domain.NewUnauthorizedError("Invalid or expired token"))
			return
		}

		if m.requireAdminClaim && !claims.Admin {
			logger.Warn("Admin access denied", "uid", claims.UID, "path", r.URL.Path)
			writeError(w, domain.NewForbiddenError("Admin privileges required"))
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// LoggingMiddleware records one line per request with status and latency.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)
		logger.Info("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", recorder.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
