package rest

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/common"
)

// ContextKey is a custom type for context keys
type ContextKey string

const (
	// ContextKeyTeamID is the context key for team ID
	ContextKeyTeamID ContextKey = "team_id"
	// ContextKeyMemberID is the context key for member ID
	ContextKeyMemberID ContextKey = "member_id"
)

// Logger is a middleware that logs HTTP requests
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		duration := time.Since(start)
		log.Printf(
			"%s %s %d %s",
			r.Method,
			r.URL.Path,
			wrapped.statusCode,
			duration,
		)
	})
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (w *responseWriter) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

// CORSWithOrigins creates a CORS middleware with specified allowed origins.
// If allowedOrigins is empty, it falls back to allowing all origins (development mode).
func CORSWithOrigins(allowedOrigins string) func(http.Handler) http.Handler {
	origins := make(map[string]bool)
	if allowedOrigins != "" {
		for _, origin := range strings.Split(allowedOrigins, ",") {
			origins[strings.TrimSpace(origin)] = true
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if len(origins) > 0 {
				if origins[origin] {
					w.Header().Set("Access-Control-Allow-Origin", origin)
					w.Header().Set("Vary", "Origin")
				}
			} else {
				w.Header().Set("Access-Control-Allow-Origin", "*")
			}

			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Team-ID, X-Member-ID, Authorization")
			w.Header().Set("Access-Control-Max-Age", "86400")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// CORS is a middleware that handles CORS headers (allows all origins).
// Deprecated: Use CORSWithOrigins with ALLOWED_ORIGINS environment variable instead.
func CORS(next http.Handler) http.Handler {
	return CORSWithOrigins("")(next)
}

// Auth extracts the requesting team and member from headers. Credential
// verification itself is delegated to an external collaborator; this
// middleware only trusts and parses the identifiers it is handed.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		teamIDStr := r.Header.Get("X-Team-ID")
		if teamIDStr == "" {
			RespondError(w, http.StatusBadRequest, "ERR_INVALID_REQUEST", "X-Team-ID header is required", nil)
			return
		}

		teamID := common.TeamID(teamIDStr)
		if err := teamID.Validate(); err != nil {
			RespondError(w, http.StatusBadRequest, "ERR_INVALID_REQUEST", "invalid X-Team-ID format", nil)
			return
		}

		ctx := r.Context()
		ctx = context.WithValue(ctx, ContextKeyTeamID, teamID)

		memberIDStr := r.Header.Get("X-Member-ID")
		if memberIDStr != "" {
			memberID := common.MemberID(memberIDStr)
			if err := memberID.Validate(); err != nil {
				RespondError(w, http.StatusBadRequest, "ERR_INVALID_REQUEST", "invalid X-Member-ID format", nil)
				return
			}
			ctx = context.WithValue(ctx, ContextKeyMemberID, memberID)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Recover is a middleware that recovers from panics
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("PANIC: %v", err)
				RespondInternalError(w)
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// GetTeamID extracts team ID from context
func GetTeamID(ctx context.Context) (common.TeamID, bool) {
	teamID, ok := ctx.Value(ContextKeyTeamID).(common.TeamID)
	return teamID, ok
}

// GetMemberID extracts member ID from context
func GetMemberID(ctx context.Context) (common.MemberID, bool) {
	memberID, ok := ctx.Value(ContextKeyMemberID).(common.MemberID)
	return memberID, ok
}
