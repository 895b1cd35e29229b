package server

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/kcsbuilding/guttergauge/internal/access"
)

// RequestIDHeader carries the request ID back to the client
const RequestIDHeader = "X-Request-ID"

type contextKey int

const (
	requestIDKey contextKey = iota
	roleKey
)

// statusRecorder captures the response status for logging
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withRequestID tags every request with an ID and logs its outcome. A
// client-supplied X-Request-ID is reused.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))

		s.logger.Info("request",
			"id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

// requireRole authenticates the request with Basic auth. Any user name is
// accepted; the password decides the role.
func (s *Server) requireRole(c access.Capability, next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		client := clientAddr(r)
		if s.limiter.Blocked(client) {
			writeError(w, http.StatusTooManyRequests, "too many failed login attempts")
			return
		}

		_, password, ok := r.BasicAuth()
		if !ok {
			w.Header().Set("WWW-Authenticate", `Basic realm="guttergauge"`)
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		role, err := s.gate.Authenticate(password)
		if err != nil {
			s.limiter.Fail(client)
			s.logger.Warn("failed login", "id", requestID(r.Context()), "client", client)
			w.Header().Set("WWW-Authenticate", `Basic realm="guttergauge"`)
			writeError(w, http.StatusUnauthorized, err.Error())
			return
		}
		if !role.Can(c) {
			writeError(w, http.StatusForbidden, "forbidden")
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), roleKey, role)))
	})
}

func requestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func roleFrom(ctx context.Context) access.Role {
	role, _ := ctx.Value(roleKey).(access.Role)
	return role
}
