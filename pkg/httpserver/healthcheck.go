package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/lrukit/pkg/logger"
)

// HealthCheckHandler serves liveness and readiness probes.
//
//   - With no checks it always answers 200 "ALIVE".
//   - With checks it runs each of them against the request context and answers
//     200 "READY" if all pass, 503 "NOT_READY" otherwise.
func HealthCheckHandler(log *slog.Logger, checks ...func(context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if len(checks) == 0 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ALIVE"))
			return
		}

		for _, check := range checks {
			if err := check(r.Context()); err != nil {
				log.ErrorContext(r.Context(), "readiness check failed", logger.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("NOT_READY"))
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	}
}
