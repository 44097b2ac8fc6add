package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pandax-i/healthhub/internal/common"
	"github.com/pandax-i/healthhub/internal/server/auth"
)

type ctxKey int

const identityKey ctxKey = 0

// identityFromContext returns the verified identity placed there by
// requireAuth, or nil outside the protected group.
func identityFromContext(ctx context.Context) *auth.Identity {
	id, _ := ctx.Value(identityKey).(*auth.Identity)
	return id
}

// requireAuth guards a route group with bearer-token authentication.
// A missing or blank header is 401; a malformed, forged, or expired token
// is 403. The verified identity travels in the request context.
func (a *API) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		const prefix = "Bearer "

		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, prefix) {
			respondError(w, http.StatusUnauthorized, "authorization required")
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
		if token == "" {
			respondError(w, http.StatusUnauthorized, "authorization required")
			return
		}

		id, err := auth.VerifyToken(token, a.secretKey)
		if err != nil {
			if errors.Is(err, common.ErrTokenExpired) {
				respondError(w, http.StatusForbidden, "token expired")
				return
			}
			respondError(w, http.StatusForbidden, "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// statusRecorder captures the response status for the request log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// requestLogger tags each request with an id and logs method, path, status,
// and duration on completion.
func (a *API) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-Id", requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rec, r)

		a.logger.Info(r.Context(), "request",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
