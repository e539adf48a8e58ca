package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/Menwuyelet/jobboard/internal/domain"
	"github.com/Menwuyelet/jobboard/internal/logger"
	"github.com/Menwuyelet/jobboard/internal/service"
)

type contextKey string

const contextUserKey contextKey = "current_user"

// AuthMiddleware resolves the bearer token to a user and stores it in the
// request context. Routes mounted behind it can assume UserFromContext
// succeeds.
type AuthMiddleware struct {
	auth service.AuthService
}

func NewAuthMiddleware(auth service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			writeError(w, domain.E(domain.CodeUnauthorized, "missing authorization header"))
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			writeError(w, domain.E(domain.CodeUnauthorized, "invalid authorization header"))
			return
		}
		user, err := m.auth.Authenticate(r.Context(), parts[1])
		if err != nil {
			writeError(w, err)
			return
		}
		ctx := context.WithValue(r.Context(), contextUserKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func UserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(contextUserKey).(*domain.User)
	return user, ok
}

// mustUser is the handler-side companion of AuthMiddleware; it only fails
// if a route was mounted outside the authenticated subrouter by mistake.
func mustUser(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeError(w, domain.E(domain.CodeUnauthorized, "authentication required"))
		return nil, false
	}
	return user, true
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds())
	})
}

func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("panic recovered", "panic", rec, "path", r.URL.Path)
				writeJSON(w, http.StatusInternalServerError, errorBody{Error: errorDetail{
					Code:    string(domain.CodeInternal),
					Message: "internal server error",
				}})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
