// Package discord adapts seance sessions to Discord slash commands and
// message components.
package discord

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/hollowedhq/seance/internal/platform/timeouts"
)

// Options configures the Discord gateway adapter.
type Options struct {
	Token string
	// GuildID scopes command registration to one guild; empty registers
	// the command globally.
	GuildID string
	// IdleTimeout is passed to every session the bot starts.
	IdleTimeout time.Duration
}

// Bot owns the gateway connection and routes interactions to sessions.
type Bot struct {
	session  *discordgo.Session
	registry *registry
	guildID  string
	idle     time.Duration
}

// New creates a Bot for the given options. The gateway is not opened
// until Run.
func New(opts Options) (*Bot, error) {
	if opts.Token == "" {
		return nil, fmt.Errorf("discord token is required")
	}
	gateway, err := discordgo.New("Bot " + opts.Token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	idle := opts.IdleTimeout
	if idle <= 0 {
		idle = timeouts.SessionIdle
	}
	return &Bot{
		session:  gateway,
		registry: newRegistry(),
		guildID:  opts.GuildID,
		idle:     idle,
	}, nil
}

// Run opens the gateway, registers the slash command and serves
// interactions until the context ends.
func (b *Bot) Run(ctx context.Context) error {
	b.session.AddHandler(b.handleInteraction)
	b.session.Identify.Intents = discordgo.IntentsGuilds

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open discord gateway: %w", err)
	}
	defer b.session.Close()

	if err := b.registerCommand(); err != nil {
		return err
	}
	log.Printf("discord gateway connected user=%s guild_scope=%q", b.session.State.User.Username, b.guildID)

	<-ctx.Done()
	b.registry.terminateAll(timeouts.Shutdown)
	return nil
}

// registerCommand upserts the /seance application command.
func (b *Bot) registerCommand() error {
	appID := b.session.State.User.ID
	if _, err := b.session.ApplicationCommandCreate(appID, b.guildID, investigateCommand()); err != nil {
		return fmt.Errorf("register /%s command: %w", commandName, err)
	}
	return nil
}
