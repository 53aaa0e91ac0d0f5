// Package transport exposes the supervision surface of the indexer: a gRPC
// health service and the HTTP status and metrics endpoints.
package transport

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// IndexerService is the service name reported by the health server next to
// the overall "" entry.
const IndexerService = "blockinsight7000.deso.Indexer"

// HealthHandler reports NOT_SERVING until the indexer reaches the tail phase.
type HealthHandler struct {
	server *health.Server
}

// NewHealthHandler returns a HealthHandler in the NOT_SERVING state.
func NewHealthHandler() *HealthHandler {
	h := &HealthHandler{server: health.NewServer()}
	h.SetServing(false)
	return h
}

// SetServing flips both the overall and the indexer status.
func (h *HealthHandler) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	h.server.SetServingStatus("", status)
	h.server.SetServingStatus(IndexerService, status)
}

// Register adds the health service to s.
func (h *HealthHandler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.server)
}

// Shutdown marks every service NOT_SERVING and ignores later updates.
func (h *HealthHandler) Shutdown() {
	h.server.Shutdown()
}
