package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/hollowedhq/seance/internal/ghost"
	"github.com/hollowedhq/seance/internal/journal"
	"github.com/hollowedhq/seance/internal/session"
)

const (
	boardTitle = "Ghost Investigation"
	// noneRemainingText is shown when no catalog ghost matches the journal.
	noneRemainingText = "No ghost matches the journal. Re-check your evidence."
	boardColor        = 0x5b3a8c
)

// boardEmbed renders the candidate list and journal state as an embed.
func boardEmbed(view session.View) *discordgo.MessageEmbed {
	description := noneRemainingText
	if !view.NoneRemaining() {
		description = strings.Join(view.Candidates, "\n")
	}

	lines := make([]string, 0, len(ghost.AllEvidence()))
	for _, evidence := range ghost.AllEvidence() {
		lines = append(lines, fmt.Sprintf("%s %s", markEmoji(view.Marks[evidence]), evidence.Label()))
	}

	return &discordgo.MessageEmbed{
		Title:       boardTitle,
		Color:       boardColor,
		Description: description,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   fmt.Sprintf("Journal (%d candidates)", len(view.Candidates)),
				Value:  strings.Join(lines, "\n"),
				Inline: false,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Evidence limit: %d", view.Limit),
		},
	}
}

// markEmoji maps a journal mark to its board marker.
func markEmoji(mark journal.Mark) string {
	switch mark {
	case journal.MarkPresent:
		return "✅"
	case journal.MarkAbsent:
		return "❌"
	default:
		return "⬜"
	}
}

// buttonStyle maps a journal mark to a button style.
func buttonStyle(mark journal.Mark) discordgo.ButtonStyle {
	switch mark {
	case journal.MarkPresent:
		return discordgo.SuccessButton
	case journal.MarkAbsent:
		return discordgo.DangerButton
	default:
		return discordgo.SecondaryButton
	}
}

// boardComponents renders the evidence toggles and the limit select.
// Discord caps a row at five components, so the seven evidence buttons
// split across two rows.
func boardComponents(sessionID string, view session.View) []discordgo.MessageComponent {
	evidence := ghost.AllEvidence()
	buttons := make([]discordgo.MessageComponent, 0, len(evidence))
	for _, e := range evidence {
		buttons = append(buttons, discordgo.Button{
			Label:    e.Label(),
			Style:    buttonStyle(view.Marks[e]),
			CustomID: evidenceCustomID(sessionID, e),
		})
	}

	limitOptions := make([]discordgo.SelectMenuOption, 0, journal.MaxEvidence)
	for limit := 1; limit <= journal.MaxEvidence; limit++ {
		limitOptions = append(limitOptions, discordgo.SelectMenuOption{
			Label:   limitLabel(limit),
			Value:   fmt.Sprintf("%d", limit),
			Default: view.Limit == limit,
		})
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: buttons[:4]},
		discordgo.ActionsRow{Components: buttons[4:]},
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				CustomID: limitCustomID(sessionID),
				Options:  limitOptions,
			},
		}},
	}
}

// limitLabel names the contract tier for an evidence limit.
func limitLabel(limit int) string {
	switch limit {
	case 1:
		return "1 evidence (Insanity)"
	case 2:
		return "2 evidence (Nightmare)"
	default:
		return "3 evidence (Standard)"
	}
}
