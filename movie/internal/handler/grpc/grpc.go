package grpc

import (
	"github.com/grpc-ecosystem/go-grpc-middleware/ratelimit"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// Handler defines a gRPC health endpoint for the movie service.
type Handler struct {
	serviceName string
	srv         *grpc.Server
	health      *health.Server
}

// New creates a gRPC server exposing grpc.health.v1.Health for serviceName.
func New(serviceName string, limiter ratelimit.Limiter) *Handler {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		otelgrpc.UnaryServerInterceptor(),
		ratelimit.UnaryServerInterceptor(limiter),
	))
	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)
	reflection.Register(srv)
	hs.SetServingStatus(serviceName, healthpb.HealthCheckResponse_SERVING)
	return &Handler{serviceName: serviceName, srv: srv, health: hs}
}

// Server returns the underlying gRPC server.
func (h *Handler) Server() *grpc.Server {
	return h.srv
}

// SetServing updates the reported status of the service.
func (h *Handler) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	h.health.SetServingStatus(h.serviceName, status)
}

// GracefulStop marks every service as not serving and stops the server.
func (h *Handler) GracefulStop() {
	h.health.Shutdown()
	h.srv.GracefulStop()
}
