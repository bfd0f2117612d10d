package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

// pickAddr reserves a free loopback port for the test server.
func pickAddr(t *testing.T) string {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("reserve port: %v", err)
	}
	addr := listener.Addr().String()
	listener.Close()
	return addr
}

func TestServeHealthReportsServing(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr := pickAddr(t)
	done := make(chan error, 1)
	go func() {
		done <- ServeHealth(ctx, addr, "seance")
	}()

	conn, err := gogrpc.NewClient(addr, gogrpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("dial health endpoint: %v", err)
	}
	defer conn.Close()

	client := grpc_health_v1.NewHealthClient(conn)
	deadline := time.Now().Add(2 * time.Second)
	for {
		checkCtx, checkCancel := context.WithTimeout(ctx, 200*time.Millisecond)
		response, err := client.Check(checkCtx, &grpc_health_v1.HealthCheckRequest{Service: "seance"})
		checkCancel()
		if err == nil && response.GetStatus() == grpc_health_v1.HealthCheckResponse_SERVING {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("health endpoint never reported SERVING: %v", err)
		}
		time.Sleep(20 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serve health: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for health server shutdown")
	}
}

func TestServeHealthRejectsBadAddr(t *testing.T) {
	err := ServeHealth(context.Background(), "256.256.256.256:0", "seance")
	if err == nil {
		t.Fatal("expected listen error for invalid address")
	}
}
