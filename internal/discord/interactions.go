package discord

import (
	"context"
	"log"
	"strconv"

	"github.com/bwmarrin/discordgo"
	apperrors "github.com/hollowedhq/seance/internal/platform/errors"
	"github.com/hollowedhq/seance/internal/platform/id"
	"github.com/hollowedhq/seance/internal/session"
)

const (
	commandName        = "seance"
	commandDescription = "Start a ghost evidence investigation"
	maxInvitees        = 4
)

// investigateCommand defines the /seance slash command.
func investigateCommand() *discordgo.ApplicationCommand {
	options := make([]*discordgo.ApplicationCommandOption, 0, maxInvitees)
	for n := 1; n <= maxInvitees; n++ {
		options = append(options, &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "teammate" + strconv.Itoa(n),
			Description: "Teammate allowed to edit the journal",
			Required:    false,
		})
	}
	return &discordgo.ApplicationCommand{
		Name:        commandName,
		Description: commandDescription,
		Options:     options,
	}
}

// handleInteraction routes gateway interactions to command or component
// handling.
func (b *Bot) handleInteraction(_ *discordgo.Session, interaction *discordgo.InteractionCreate) {
	switch interaction.Type {
	case discordgo.InteractionApplicationCommand:
		if interaction.ApplicationCommandData().Name == commandName {
			b.handleCommand(interaction)
		}
	case discordgo.InteractionMessageComponent:
		b.handleComponent(interaction)
	}
}

// handleCommand starts a fresh session for a /seance invocation.
func (b *Bot) handleCommand(interaction *discordgo.InteractionCreate) {
	ctx := context.Background()
	invoker := interactionUser(interaction)
	if invoker == "" {
		log.Printf("discord command without a user channel_id=%s", interaction.ChannelID)
		return
	}

	sessionID, err := id.NewID()
	if err != nil {
		log.Printf("discord session id generation failed err=%v", err)
		return
	}

	invitees := make([]string, 0, maxInvitees)
	for _, option := range interaction.ApplicationCommandData().Options {
		if option.Type != discordgo.ApplicationCommandOptionUser {
			continue
		}
		if user := option.UserValue(b.session); user != nil && user.ID != "" {
			invitees = append(invitees, user.ID)
		}
	}

	surface := newMessageSurface(b.session, sessionID, interaction.Interaction)
	controller, err := session.Start(ctx, session.Options{
		ID:          sessionID,
		Invoker:     invoker,
		Invitees:    invitees,
		IdleTimeout: b.idle,
		Surface:     surface,
		CanRender:   b.canRender(interaction.ChannelID),
	})
	if err != nil {
		// Denials have already been surfaced to the invoker.
		log.Printf("discord session start failed session_id=%s err=%v", sessionID, err)
		return
	}

	b.registry.add(sessionID, controller, surface)
	go func() {
		<-controller.Done()
		b.registry.remove(sessionID)
	}()
}

// handleComponent routes a component click to its session.
func (b *Bot) handleComponent(interaction *discordgo.InteractionCreate) {
	data := interaction.MessageComponentData()
	ref, ok := parseCustomID(data.CustomID)
	if !ok {
		return
	}

	actor := interactionUser(interaction)
	live, ok := b.registry.get(ref.sessionID)
	if !ok {
		b.respondEphemeral(interaction, apperrors.CodeSessionNotActive.UserMessage())
		return
	}

	// Acknowledge within Discord's response window; the session edits the
	// board asynchronously.
	err := b.session.InteractionRespond(interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})
	if err != nil {
		log.Printf("discord component ack failed session_id=%s err=%v", ref.sessionID, err)
		return
	}

	event := session.Event{Actor: actor}
	switch ref.control {
	case "evidence":
		event.Kind = session.EventToggleEvidence
		event.Evidence = ref.evidence
	case "limit":
		if len(data.Values) != 1 {
			return
		}
		limit, err := strconv.Atoi(data.Values[0])
		if err != nil {
			return
		}
		event.Kind = session.EventSetLimit
		event.Limit = limit
	}

	live.surface.trackActor(actor, interaction.Interaction)

	if err := live.controller.Submit(event); err != nil {
		b.followupEphemeral(interaction, apperrors.GetCode(err).UserMessage())
	}
}

// respondEphemeral answers an interaction with a private message.
func (b *Bot) respondEphemeral(interaction *discordgo.InteractionCreate, message string) {
	err := b.session.InteractionRespond(interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("discord ephemeral response failed err=%v", err)
	}
}

// followupEphemeral sends a private follow-up on an acknowledged
// interaction.
func (b *Bot) followupEphemeral(interaction *discordgo.InteractionCreate, message string) {
	_, err := b.session.FollowupMessageCreate(interaction.Interaction, true, &discordgo.WebhookParams{
		Content: message,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
	if err != nil {
		log.Printf("discord ephemeral follow-up failed err=%v", err)
	}
}

// canRender checks whether the bot may post an embed in the channel.
func (b *Bot) canRender(channelID string) func(context.Context) bool {
	return func(context.Context) bool {
		permissions, err := b.session.UserChannelPermissions(b.session.State.User.ID, channelID)
		if err != nil {
			log.Printf("discord permission lookup failed channel_id=%s err=%v", channelID, err)
			return false
		}
		required := int64(discordgo.PermissionSendMessages | discordgo.PermissionEmbedLinks)
		return permissions&required == required
	}
}

// interactionUser resolves the acting user for guild and DM interactions.
func interactionUser(interaction *discordgo.InteractionCreate) string {
	if interaction.Member != nil && interaction.Member.User != nil {
		return interaction.Member.User.ID
	}
	if interaction.User != nil {
		return interaction.User.ID
	}
	return ""
}
