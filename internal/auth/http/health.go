package http

import (
	"net/http"
	"time"

	"github.com/codezen-labs/codezen/internal/auth/store"
	"github.com/codezen-labs/codezen/pkg/authsdk"
	"github.com/codezen-labs/codezen/pkg/httpx"
	"github.com/codezen-labs/codezen/pkg/slogx"
)

// RootHandler answers the bare root path with a plain-text banner.
func RootHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("API is running"))
	})
}

// HealthHandler reports readiness: healthy only when the store answers a ping.
func HealthHandler(st store.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if err := st.Ping(ctx); err != nil {
			slogx.FromContext(ctx).Error("health check failed", "err", err)
			httpx.WriteJSON(w, http.StatusServiceUnavailable, authsdk.HealthResponse{
				Status:  "degraded",
				Message: "Database is unreachable",
			})
			return
		}

		httpx.WriteJSON(w, http.StatusOK, authsdk.HealthResponse{
			Status:  "healthy",
			Message: "Server is running properly",
		})
	})
}

// LivezHandler reports liveness: the process is up and serving.
func LivezHandler(startTime time.Time, version string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, authsdk.LivezResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).Round(time.Second).String(),
			Version: version,
		})
	})
}
