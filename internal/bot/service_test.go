package bot_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/influenxers/coachbot/internal/augment"
	"github.com/influenxers/coachbot/internal/bot"
	"github.com/influenxers/coachbot/internal/schedule"
	"github.com/influenxers/coachbot/internal/session"
	"github.com/influenxers/coachbot/internal/template"
)

// immediateScheduler runs callbacks synchronously so follow-ups can be
// asserted without sleeping.
type immediateScheduler struct{ names []string }

func (s *immediateScheduler) After(_ time.Duration, name string, fn func()) *schedule.Job {
	s.names = append(s.names, name)
	fn()
	return &schedule.Job{}
}

func newService(t *testing.T) (*bot.Service, *session.Store, *immediateScheduler) {
	t.Helper()
	dir := t.TempDir()

	hookDoc := map[string]any{
		"creator_personalization": map[string]any{
			"content_style": "{handle}, your demos convert because they feel unscripted",
		},
		"hook_options": []any{
			map[string]any{"text": "You've been applying serum wrong this whole time", "style": "bold claim"},
			map[string]any{"text": "POV: your skincare finally works", "style": "pov"},
		},
		"success_factors": []any{"creates urgency"},
	}
	data, err := json.Marshal(hookDoc)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "hookResponse.json"), data, 0o644); err != nil {
		t.Fatal(err)
	}

	sessions := session.NewStore(filepath.Join(t.TempDir(), "sessionData.json"))
	sched := &immediateScheduler{}
	svc := bot.NewService(template.NewStore(dir), sessions, augment.New(nil, nil, false), sched)
	return svc, sessions, sched
}

func TestHandleMessageHookEndToEnd(t *testing.T) {
	svc, sessions, _ := newService(t)

	reply := svc.HandleMessage(context.Background(), "u1", "creatorkay",
		"give me a hook for my new SkinGlow serum")

	if reply.Card == nil {
		t.Fatal("expected a card reply")
	}
	header := reply.Card.Sections[0]
	if !strings.Contains(header.Title, "SkinGlow serum") {
		t.Errorf("header title %q should name the product from the message", header.Title)
	}
	if !strings.Contains(header.Fields[0].Value, "creatorkay") {
		t.Errorf("personalization should substitute the handle, got %q", header.Fields[0].Value)
	}
	if len(reply.Card.Rows) != 2 {
		t.Errorf("expected action row plus feedback row, got %d rows", len(reply.Card.Rows))
	}

	prof, ok := sessions.Snapshot("u1")
	if !ok || prof.LastIntent != "hook" {
		t.Errorf("last intent not recorded: %+v", prof)
	}
}

func TestHandleMessageHelp(t *testing.T) {
	svc, _, _ := newService(t)

	reply := svc.HandleMessage(context.Background(), "u1", "kay", "good morning")

	if reply.Card == nil || !strings.Contains(reply.Card.Sections[0].Title, "Creator Success Coach") {
		t.Fatalf("unrecognized message should return the help card, got %+v", reply)
	}
}

func TestHandleMessageProfile(t *testing.T) {
	svc, sessions, _ := newService(t)
	sessions.GetOrCreate("u1", "kay")

	reply := svc.HandleMessage(context.Background(), "u1", "kay", "what do you know about me")

	if reply.Card == nil || !strings.Contains(reply.Card.Sections[0].Title, "Your Creator Profile") {
		t.Fatalf("expected profile card, got %+v", reply)
	}
}

func TestHandleMessageUpdate(t *testing.T) {
	svc, sessions, _ := newService(t)

	reply := svc.HandleMessage(context.Background(), "u1", "kay", "update my tiktok @newhandle")

	if reply.Card == nil || !strings.Contains(reply.Card.Sections[0].Body, "@newhandle") {
		t.Fatalf("confirmation should echo the new value, got %+v", reply)
	}
	prof, _ := sessions.Snapshot("u1")
	if prof.TikTokHandle != "@newhandle" {
		t.Errorf("handle not saved: %+v", prof)
	}
}

func TestHandleMessageUpdateWithoutValue(t *testing.T) {
	svc, _, _ := newService(t)

	reply := svc.HandleMessage(context.Background(), "u1", "kay", "update my brief")

	if reply.Card == nil || !strings.Contains(reply.Card.Sections[0].Title, "Updating Your Info") {
		t.Fatalf("expected update instructions, got %+v", reply)
	}
}

func TestHandleMessageAnalyzeNeedsURL(t *testing.T) {
	svc, _, _ := newService(t)

	reply := svc.HandleMessage(context.Background(), "u1", "kay", "analyze my last video")
	if reply.Card != nil || !reply.Ephemeral || !strings.Contains(reply.Text, "link") {
		t.Fatalf("expected ephemeral link request, got %+v", reply)
	}

	reply = svc.HandleMessage(context.Background(), "u1", "kay",
		"analyze this video: https://tiktok.com/@kay/video/123")
	if reply.Card == nil {
		t.Fatalf("expected analysis card, got %+v", reply)
	}
}

func TestHandleMessageRenderFailureApologizes(t *testing.T) {
	svc, _, _ := newService(t)

	// No fixResponse.json exists, and the fallback document lacks the
	// improvement plan the fix card requires.
	reply := svc.HandleMessage(context.Background(), "u1", "kay", "my video flopped")

	if reply.Card == nil || !strings.Contains(reply.Card.Sections[0].Title, "Error Generating Content") {
		t.Fatalf("expected apology card, got %+v", reply)
	}
	if !strings.Contains(reply.Card.Sections[0].Body, "fix content") {
		t.Errorf("apology should name the intent, got %q", reply.Card.Sections[0].Body)
	}
}

func TestHandleButtonRegen(t *testing.T) {
	svc, sessions, sched := newService(t)

	var posted []bot.Reply
	var channels []string
	svc.SetPoster(func(channelID string, reply bot.Reply) {
		channels = append(channels, channelID)
		posted = append(posted, reply)
	})

	reply := svc.HandleButton(context.Background(), "u1", "kay", "chan1", "more_hooks")

	if !reply.Ephemeral || !strings.Contains(reply.Text, "more hook options") {
		t.Fatalf("expected ephemeral ack, got %+v", reply)
	}
	if len(sched.names) != 1 || sched.names[0] != "more_hooks" {
		t.Fatalf("regeneration not scheduled: %v", sched.names)
	}
	if len(posted) != 1 || posted[0].Card == nil {
		t.Fatalf("scheduled follow-up should post a card, got %v", posted)
	}
	if !strings.Contains(posted[0].Card.Sections[0].Title, "Hook") {
		t.Errorf("posted card is not a hook card: %q", posted[0].Card.Sections[0].Title)
	}
	if channels[0] != "chan1" {
		t.Errorf("card posted to wrong channel %q", channels[0])
	}
	prof, _ := sessions.Snapshot("u1")
	if prof.LastIntent != "hook" {
		t.Errorf("last intent not recorded: %+v", prof)
	}
}

func TestHandleButtonDeepInsightsPostsCard(t *testing.T) {
	svc, _, sched := newService(t)

	var posted []bot.Reply
	svc.SetPoster(func(_ string, reply bot.Reply) {
		posted = append(posted, reply)
	})

	reply := svc.HandleButton(context.Background(), "u1", "kay", "chan1", "deep_insights")

	if !reply.Ephemeral || !strings.Contains(reply.Text, "deeper insights") {
		t.Fatalf("expected ephemeral ack, got %+v", reply)
	}
	if len(sched.names) != 1 || sched.names[0] != "deep_insights" {
		t.Fatalf("regeneration not scheduled: %v", sched.names)
	}
	if len(posted) != 1 || posted[0].Card == nil {
		t.Fatalf("follow-up should carry the regenerated analysis card, got %v", posted)
	}
}

func TestHandleButtonExampleRepliesImmediately(t *testing.T) {
	svc, _, sched := newService(t)
	svc.SetPoster(func(string, bot.Reply) {})

	reply := svc.HandleButton(context.Background(), "u1", "kay", "chan1", "example_hook")

	if reply.Card == nil || !strings.Contains(reply.Card.Sections[0].Title, "Hook") {
		t.Fatalf("expected an immediate hook card, got %+v", reply)
	}
	if len(sched.names) != 0 {
		t.Errorf("example buttons should not schedule anything: %v", sched.names)
	}
}

func TestHandleButtonFollowUp(t *testing.T) {
	svc, _, sched := newService(t)

	var posted []string
	svc.SetPoster(func(channelID string, reply bot.Reply) {
		posted = append(posted, channelID+": "+reply.Text)
	})

	reply := svc.HandleButton(context.Background(), "u1", "kay", "chan1", "apply_fixes")

	if !reply.Ephemeral || !strings.Contains(reply.Text, "Applying all suggested fixes") {
		t.Fatalf("expected ephemeral ack, got %+v", reply)
	}
	if len(sched.names) != 1 || sched.names[0] != "apply_fixes" {
		t.Fatalf("follow-up not scheduled: %v", sched.names)
	}
	if len(posted) != 1 || !strings.Contains(posted[0], "chan1: ✅ All fixes have been applied") {
		t.Fatalf("follow-up not posted to the channel: %v", posted)
	}
}

func TestHandleButtonFeedback(t *testing.T) {
	svc, _, sched := newService(t)
	svc.SetPoster(func(string, bot.Reply) {})

	reply := svc.HandleButton(context.Background(), "u1", "kay", "chan1", "feedback_love")

	if !reply.Ephemeral || !strings.Contains(reply.Text, "Love") {
		t.Fatalf("unexpected feedback ack %+v", reply)
	}
	if len(sched.names) != 0 {
		t.Errorf("feedback_love should not schedule a follow-up: %v", sched.names)
	}
}

func TestHandleButtonUnknown(t *testing.T) {
	svc, _, _ := newService(t)

	reply := svc.HandleButton(context.Background(), "u1", "kay", "chan1", "bogus_button")
	if !reply.Ephemeral || reply.Text == "" {
		t.Fatalf("unknown button should get an ephemeral notice, got %+v", reply)
	}
}
