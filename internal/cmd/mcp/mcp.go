// Package mcp parses MCP command flags and starts the stdio server.
package mcp

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/hollowedhq/seance/internal/mcp/service"
	entrypoint "github.com/hollowedhq/seance/internal/platform/cmd"
	"github.com/hollowedhq/seance/internal/platform/grpc"
)

// Config holds MCP command configuration.
type Config struct {
	HealthAddr string `env:"SEANCE_MCP_HEALTH_ADDR"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HealthAddr, "health-addr", cfg.HealthAddr, "gRPC health listen address (empty disables the endpoint)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the MCP protocol adapter on stdio.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceMCP, func(ctx context.Context) error {
		if cfg.HealthAddr != "" {
			go func() {
				if err := grpc.ServeHealth(ctx, cfg.HealthAddr, entrypoint.ServiceMCP); err != nil {
					// Health is auxiliary; stdio serving continues without it.
					log.Printf("serve health: %v", err)
				}
			}()
		}
		if err := service.Run(ctx); err != nil {
			return fmt.Errorf("serve MCP: %w", err)
		}
		return nil
	})
}
