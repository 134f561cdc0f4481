// Package discord adapts the coach service to the Discord gateway:
// messages in, embeds and button interactions out.
package discord

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/influenxers/coachbot/internal/bot"
)

const footerIconURL = "https://cdn-icons-png.flaticon.com/512/6828/6828736.png"

// Gateway owns the Discord session and routes events to the service.
type Gateway struct {
	session  *discordgo.Session
	svc      *bot.Service
	channels map[string]bool // empty = respond everywhere
}

// New creates a gateway for the given bot token. channelIDs, when
// non-empty, restricts which channels the bot answers in.
func New(token string, channelIDs []string, svc *bot.Service) (*Gateway, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	channels := map[string]bool{}
	for _, id := range channelIDs {
		if id = strings.TrimSpace(id); id != "" {
			channels[id] = true
		}
	}

	g := &Gateway{session: session, svc: svc, channels: channels}
	session.AddHandler(g.onMessage)
	session.AddHandler(g.onInteraction)
	svc.SetPoster(g.post)
	return g, nil
}

// Open connects to the gateway. Close it with Close.
func (g *Gateway) Open() error {
	if err := g.session.Open(); err != nil {
		return fmt.Errorf("failed to open discord connection: %w", err)
	}
	log.Printf("[discord] connected as %s", g.session.State.User.Username)
	return nil
}

func (g *Gateway) Close() error {
	return g.session.Close()
}

// allowed reports whether the bot should answer this message: always in
// DMs, always when mentioned directly, otherwise only in allow-listed
// channels (or everywhere when no list is configured).
func (g *Gateway) allowed(m *discordgo.MessageCreate) bool {
	if m.GuildID == "" {
		return true
	}
	if g.session.State.User != nil {
		for _, u := range m.Mentions {
			if u.ID == g.session.State.User.ID {
				return true
			}
		}
	}
	return len(g.channels) == 0 || g.channels[m.ChannelID]
}

// stripMention removes a leading mention of the bot itself so "@Coach give
// me a hook" classifies like "give me a hook".
func (g *Gateway) stripMention(content string) string {
	if g.session.State.User == nil {
		return strings.TrimSpace(content)
	}
	id := g.session.State.User.ID
	content = strings.ReplaceAll(content, "<@"+id+">", "")
	content = strings.ReplaceAll(content, "<@!"+id+">", "")
	return strings.TrimSpace(content)
}

func (g *Gateway) onMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if !g.allowed(m) {
		return
	}
	text := g.stripMention(m.Content)
	if text == "" {
		return
	}

	if err := s.ChannelTyping(m.ChannelID); err != nil {
		log.Printf("[discord] typing indicator failed: %v", err)
	}

	reply := g.svc.HandleMessage(context.Background(), m.Author.ID, m.Author.Username, text)
	g.send(m.ChannelID, reply)
}

func (g *Gateway) onInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionMessageComponent {
		return
	}

	user := i.User
	if user == nil && i.Member != nil {
		user = i.Member.User
	}
	if user == nil {
		return
	}

	customID := i.MessageComponentData().CustomID
	reply := g.svc.HandleButton(context.Background(), user.ID, user.Username, i.ChannelID, customID)

	data := &discordgo.InteractionResponseData{Content: reply.Text}
	if reply.Card != nil {
		embeds, files := toEmbeds(reply.Card)
		data.Embeds = embeds
		data.Files = files
		data.Components = toComponents(reply.Card.Rows)
	}
	if reply.Ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		log.Printf("[discord] interaction response failed: %v", err)
	}
}

// post delivers scheduled follow-ups from the service.
func (g *Gateway) post(channelID string, reply bot.Reply) {
	g.send(channelID, reply)
}

func (g *Gateway) send(channelID string, reply bot.Reply) {
	msg := &discordgo.MessageSend{Content: reply.Text}
	if reply.Card != nil {
		embeds, files := toEmbeds(reply.Card)
		msg.Embeds = embeds
		msg.Files = files
		msg.Components = toComponents(reply.Card.Rows)
		if msg.Content == "" && len(embeds) == 0 {
			msg.Content = reply.Card.Fallback
		}
	}

	if _, err := g.session.ChannelMessageSendComplex(channelID, msg); err != nil {
		log.Printf("[discord] send to %s failed: %v", channelID, err)
	}
}
