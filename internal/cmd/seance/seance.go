// Package seance parses bot command flags and composes the Discord
// gateway and health entrypoints.
package seance

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/hollowedhq/seance/internal/discord"
	entrypoint "github.com/hollowedhq/seance/internal/platform/cmd"
	"github.com/hollowedhq/seance/internal/platform/grpc"
	"golang.org/x/sync/errgroup"
)

// Config holds bot command configuration.
type Config struct {
	DiscordToken string        `env:"SEANCE_DISCORD_TOKEN"`
	GuildID      string        `env:"SEANCE_DISCORD_GUILD_ID"`
	HealthAddr   string        `env:"SEANCE_HEALTH_ADDR"  envDefault:":8090"`
	IdleTimeout  time.Duration `env:"SEANCE_IDLE_TIMEOUT" envDefault:"5m"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.DiscordToken, "discord-token", cfg.DiscordToken, "Discord bot token")
	fs.StringVar(&cfg.GuildID, "guild-id", cfg.GuildID, "guild to register the command in (empty for global)")
	fs.StringVar(&cfg.HealthAddr, "health-addr", cfg.HealthAddr, "gRPC health listen address")
	fs.DurationVar(&cfg.IdleTimeout, "idle-timeout", cfg.IdleTimeout, "session idle timeout")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run connects the bot to Discord and serves the health endpoint until
// the context ends.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceBot, func(ctx context.Context) error {
		bot, err := discord.New(discord.Options{
			Token:       cfg.DiscordToken,
			GuildID:     cfg.GuildID,
			IdleTimeout: cfg.IdleTimeout,
		})
		if err != nil {
			return fmt.Errorf("create bot: %w", err)
		}

		group, ctx := errgroup.WithContext(ctx)
		group.Go(func() error {
			if err := bot.Run(ctx); err != nil {
				return fmt.Errorf("serve discord gateway: %w", err)
			}
			return nil
		})
		group.Go(func() error {
			if err := grpc.ServeHealth(ctx, cfg.HealthAddr, entrypoint.ServiceBot); err != nil {
				return fmt.Errorf("serve health: %w", err)
			}
			return nil
		})
		return group.Wait()
	})
}
