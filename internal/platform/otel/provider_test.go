package otel

import (
	"context"
	"testing"
)

func TestSetupIsNoopWithoutEndpoint(t *testing.T) {
	t.Setenv("SEANCE_OTEL_ENDPOINT", "")
	shutdown, err := Setup(context.Background(), "seance")
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if shutdown == nil {
		t.Fatal("expected a shutdown function")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("noop shutdown: %v", err)
	}
}

func TestSetupIsNoopWhenDisabled(t *testing.T) {
	t.Setenv("SEANCE_OTEL_ENDPOINT", "http://localhost:4318")
	t.Setenv("SEANCE_OTEL_ENABLED", "FALSE")
	shutdown, err := Setup(context.Background(), "seance")
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("noop shutdown: %v", err)
	}
}
