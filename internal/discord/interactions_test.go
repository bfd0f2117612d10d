package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

func TestInvestigateCommandShape(t *testing.T) {
	command := investigateCommand()
	if command.Name != commandName {
		t.Fatalf("expected command %q, got %q", commandName, command.Name)
	}
	if len(command.Options) != maxInvitees {
		t.Fatalf("expected %d invitee options, got %d", maxInvitees, len(command.Options))
	}
	for _, option := range command.Options {
		if option.Type != discordgo.ApplicationCommandOptionUser {
			t.Fatalf("expected user option, got %v", option.Type)
		}
		if option.Required {
			t.Fatalf("expected option %q to be optional", option.Name)
		}
	}
}

func TestInteractionUser(t *testing.T) {
	guild := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Member: &discordgo.Member{User: &discordgo.User{ID: "member1"}},
	}}
	if got := interactionUser(guild); got != "member1" {
		t.Fatalf("expected member1, got %q", got)
	}

	dm := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		User: &discordgo.User{ID: "user1"},
	}}
	if got := interactionUser(dm); got != "user1" {
		t.Fatalf("expected user1, got %q", got)
	}

	empty := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{}}
	if got := interactionUser(empty); got != "" {
		t.Fatalf("expected empty actor, got %q", got)
	}
}
