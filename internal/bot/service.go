// Package bot is the transport-agnostic coach: it classifies a message,
// loads the matching content template, renders the card and records the
// interaction on the creator's profile.
package bot

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/influenxers/coachbot/internal/augment"
	"github.com/influenxers/coachbot/internal/intent"
	"github.com/influenxers/coachbot/internal/model/card"
	"github.com/influenxers/coachbot/internal/model/profile"
	"github.com/influenxers/coachbot/internal/render"
	"github.com/influenxers/coachbot/internal/schedule"
	"github.com/influenxers/coachbot/internal/session"
	"github.com/influenxers/coachbot/internal/template"
)

var urlPattern = regexp.MustCompile(`https?://\S+`)

// Reply is one outgoing response, card or plain text.
type Reply struct {
	Text      string
	Card      *card.Card
	Ephemeral bool
}

// Poster delivers a follow-up reply to a channel outside the
// request/response cycle.
type Poster func(channelID string, reply Reply)

// Scheduler runs a named callback after a delay.
type Scheduler interface {
	After(delay time.Duration, name string, fn func()) *schedule.Job
}

// Service wires classification, templates, rendering, image augmentation
// and session state into one message pipeline.
type Service struct {
	templates *template.Store
	sessions  *session.Store
	augmenter *augment.Augmenter
	scheduler Scheduler
	poster    Poster
}

func NewService(templates *template.Store, sessions *session.Store, aug *augment.Augmenter, sched Scheduler) *Service {
	return &Service{
		templates: templates,
		sessions:  sessions,
		augmenter: aug,
		scheduler: sched,
	}
}

// SetPoster installs the transport callback used for scheduled follow-ups.
func (s *Service) SetPoster(p Poster) { s.poster = p }

// HandleMessage processes one free-text request from a creator.
func (s *Service) HandleMessage(ctx context.Context, userID, username, text string) Reply {
	prof := s.sessions.GetOrCreate(userID, username)
	s.sessions.Touch(userID)
	tag := intent.Classify(text)
	log.Printf("[bot] user=%s intent=%s", userID, tag)

	switch tag {
	case intent.None:
		return cardReply(render.HelpCard())

	case intent.Profile:
		return cardReply(render.ProfileCard(prof))

	case intent.Update:
		return s.handleUpdate(userID, text)

	case intent.Analyze:
		if !urlPattern.MatchString(text) {
			return Reply{
				Text:      "📊 Happy to analyze your video! Please share the link, e.g. `analyze this video: https://...`",
				Ephemeral: true,
			}
		}
	}

	reply := s.generate(ctx, tag, prof, text)
	s.sessions.SetLastIntent(userID, tag)
	return reply
}

func (s *Service) handleUpdate(userID, text string) Reply {
	field, value, ok := intent.ExtractUpdate(text)
	if !ok {
		return cardReply(render.UpdateInstructionsCard())
	}
	if err := s.sessions.Update(userID, field, value); err != nil {
		log.Printf("[bot] update failed for user %s: %v", userID, err)
		return Reply{Text: "⚠️ I couldn't save that. Please try again.", Ephemeral: true}
	}
	return cardReply(render.UpdateConfirmationCard(field, value))
}

// generate builds the content card for one of the seven content intents.
// Renderer panics on malformed templates become an apology card.
func (s *Service) generate(ctx context.Context, tag intent.Tag, prof profile.Profile, text string) (reply Reply) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[bot] render failed for intent %s: %v", tag, r)
			reply = cardReply(render.ApologyCard(string(tag), fmt.Errorf("%v", r)))
		}
	}()

	doc := s.templates.Load(tag)
	personalize(doc, prof.Handle())

	product := render.ProductName(prof.Brief)
	if product == render.DefaultProduct {
		if fromMsg, ok := render.ProductFromMessage(text); ok {
			product = fromMsg
		}
	}

	c, slots := render.Card(tag, doc, prof, product)
	s.augmenter.Apply(ctx, &c, slots, product)
	return cardReply(c)
}

// personalize substitutes the creator's handle into template placeholder
// strings before rendering.
func personalize(doc template.Document, handle string) {
	raw, ok := doc["creator_personalization"].(map[string]any)
	if !ok {
		return
	}
	for k, v := range raw {
		if s, ok := v.(string); ok {
			raw[k] = strings.ReplaceAll(s, "{handle}", handle)
		}
	}
}

func cardReply(c card.Card) Reply {
	return Reply{Card: &c}
}
