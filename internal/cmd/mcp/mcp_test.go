package mcp

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HealthAddr != "" {
		t.Fatalf("expected health endpoint disabled by default, got %q", cfg.HealthAddr)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("SEANCE_MCP_HEALTH_ADDR", "env-health")

	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-health-addr", "flag-health"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HealthAddr != "flag-health" {
		t.Fatalf("expected flag to win over env, got %q", cfg.HealthAddr)
	}
}
