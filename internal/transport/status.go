package transport

import (
	"encoding/json"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// NewHTTPHandler serves /status with the indexer progress and /metrics.
func NewHTTPHandler(progress ProgressReporter, logger *zap.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/status", statusHandler(progress, logger))
	mux.Handle("/metrics", promhttp.Handler())
	return cors.Default().Handler(mux)
}

func statusHandler(progress ProgressReporter, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(progress.Snapshot()); err != nil {
			logger.Warn("failed to write status", zap.Error(err))
		}
	}
}
