// Package grpc provides shared gRPC plumbing for seance commands.
package grpc

import (
	"context"
	"fmt"
	"net"

	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

// ServeHealth exposes a gRPC health endpoint for liveness probes until the
// context ends. The named service reports SERVING while the bot runs and
// NOT_SERVING once shutdown begins.
func ServeHealth(ctx context.Context, addr, service string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen health endpoint on %s: %w", addr, err)
	}

	server := gogrpc.NewServer()
	healthServer := health.NewServer()
	healthServer.SetServingStatus(service, grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	grpc_health_v1.RegisterHealthServer(server, healthServer)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		healthServer.SetServingStatus(service, grpc_health_v1.HealthCheckResponse_NOT_SERVING)
		server.GracefulStop()
		<-errCh
		return nil
	case err := <-errCh:
		return fmt.Errorf("serve health endpoint: %w", err)
	}
}
