package discord

import (
	"bytes"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/influenxers/coachbot/internal/model/card"
)

// discordgo caps embeds per message at ten.
const maxEmbeds = 10

// parseColor converts a "#RRGGBB" string to the integer Discord expects.
func parseColor(hex string) int {
	v, err := strconv.ParseUint(strings.TrimPrefix(hex, "#"), 16, 32)
	if err != nil {
		return 0
	}
	return int(v)
}

func buttonStyle(s card.ButtonStyle) discordgo.ButtonStyle {
	switch s {
	case card.StylePrimary:
		return discordgo.PrimaryButton
	case card.StyleSuccess:
		return discordgo.SuccessButton
	case card.StyleDanger:
		return discordgo.DangerButton
	default:
		return discordgo.SecondaryButton
	}
}

// toEmbeds converts card sections to Discord embeds. Sections whose image
// file can be read contribute an attachment referenced by the embed. Image
// bytes are loaded up front so no file handle outlives the send.
func toEmbeds(c *card.Card) ([]*discordgo.MessageEmbed, []*discordgo.File) {
	sections := c.Sections
	if len(sections) > maxEmbeds {
		sections = sections[:maxEmbeds]
	}

	embeds := make([]*discordgo.MessageEmbed, 0, len(sections))
	var files []*discordgo.File
	for _, s := range sections {
		embed := &discordgo.MessageEmbed{
			Title:       s.Title,
			Description: s.Body,
			Color:       parseColor(s.Color),
		}
		if s.Footer != "" {
			embed.Footer = &discordgo.MessageEmbedFooter{
				Text:    s.Footer,
				IconURL: footerIconURL,
			}
			embed.Timestamp = time.Now().UTC().Format(time.RFC3339)
		}
		for _, f := range s.Fields {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:   f.Name,
				Value:  f.Value,
				Inline: f.Inline,
			})
		}
		if s.Image != nil {
			if data, err := os.ReadFile(s.Image.Path); err == nil {
				embed.Image = &discordgo.MessageEmbedImage{URL: "attachment://" + s.Image.Name}
				files = append(files, &discordgo.File{
					Name:        s.Image.Name,
					ContentType: "image/png",
					Reader:      bytes.NewReader(data),
				})
			}
		}
		embeds = append(embeds, embed)
	}
	return embeds, files
}

func toComponents(rows []card.ActionRow) []discordgo.MessageComponent {
	components := make([]discordgo.MessageComponent, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		buttons := make([]discordgo.MessageComponent, 0, len(row))
		for _, a := range row {
			buttons = append(buttons, discordgo.Button{
				Label:    a.Label,
				Style:    buttonStyle(a.Style),
				CustomID: a.ID,
			})
		}
		components = append(components, discordgo.ActionsRow{Components: buttons})
	}
	return components
}
