package discord

import (
	"context"
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/hollowedhq/seance/internal/session"
)

// messageSurface renders one session's board as a Discord message. The
// first render answers the originating slash command; later renders edit
// the same message in place.
type messageSurface struct {
	gateway   *discordgo.Session
	sessionID string
	channelID string

	mu        sync.Mutex
	origin    *discordgo.Interaction
	responded bool
	messageID string
	// pending holds the latest acknowledged component interaction per
	// actor so denial notices can reach them as ephemeral follow-ups.
	pending map[string]*discordgo.Interaction
}

func newMessageSurface(gateway *discordgo.Session, sessionID string, origin *discordgo.Interaction) *messageSurface {
	return &messageSurface{
		gateway:   gateway,
		sessionID: sessionID,
		channelID: origin.ChannelID,
		origin:    origin,
		pending:   make(map[string]*discordgo.Interaction),
	}
}

// trackActor records the interaction a later notice for this actor should
// answer.
func (m *messageSurface) trackActor(actorID string, interaction *discordgo.Interaction) {
	m.mu.Lock()
	m.pending[actorID] = interaction
	m.mu.Unlock()
}

// Render implements session.Surface.
func (m *messageSurface) Render(ctx context.Context, view session.View) error {
	embed := boardEmbed(view)
	components := boardComponents(m.sessionID, view)

	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.responded {
		err := m.gateway.InteractionRespond(m.origin, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Embeds:     []*discordgo.MessageEmbed{embed},
				Components: components,
			},
		}, discordgo.WithContext(ctx))
		if err != nil {
			return fmt.Errorf("respond with board: %w", err)
		}
		m.responded = true
		message, err := m.gateway.InteractionResponse(m.origin, discordgo.WithContext(ctx))
		if err != nil {
			return fmt.Errorf("fetch board message: %w", err)
		}
		m.messageID = message.ID
		return nil
	}

	_, err := m.gateway.ChannelMessageEditComplex(&discordgo.MessageEdit{
		ID:         m.messageID,
		Channel:    m.channelID,
		Embeds:     &[]*discordgo.MessageEmbed{embed},
		Components: &components,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("edit board message: %w", err)
	}
	return nil
}

// Notify implements session.Surface with ephemeral messages.
func (m *messageSurface) Notify(ctx context.Context, actorID, message string) error {
	m.mu.Lock()
	interaction := m.pending[actorID]
	origin := m.origin
	responded := m.responded
	if interaction == nil && !responded {
		// The slash command itself was denied; answer it directly.
		m.responded = true
	}
	m.mu.Unlock()

	if interaction == nil && !responded {
		err := m.gateway.InteractionRespond(origin, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: message,
				Flags:   discordgo.MessageFlagsEphemeral,
			},
		}, discordgo.WithContext(ctx))
		if err != nil {
			return fmt.Errorf("respond with notice: %w", err)
		}
		return nil
	}

	if interaction == nil {
		return fmt.Errorf("no interaction on record for actor %s", actorID)
	}
	_, err := m.gateway.FollowupMessageCreate(interaction, true, &discordgo.WebhookParams{
		Content: message,
		Flags:   discordgo.MessageFlagsEphemeral,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("send notice follow-up: %w", err)
	}
	return nil
}

// Delete implements session.Surface. A missing board message is not an
// error: there is nothing left to clean up.
func (m *messageSurface) Delete(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.messageID == "" {
		return nil
	}
	if err := m.gateway.ChannelMessageDelete(m.channelID, m.messageID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("delete board message: %w", err)
	}
	m.messageID = ""
	return nil
}
