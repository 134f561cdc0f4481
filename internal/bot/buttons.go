package bot

import (
	"context"
	"time"

	"github.com/influenxers/coachbot/internal/intent"
	"github.com/influenxers/coachbot/internal/render"
)

// buttonAction describes one button: an immediate ephemeral ack, then
// after Delay either a freshly regenerated content card (Regen) or a
// fixed follow-up message (Follow) posted to the channel. A Regen with
// zero Delay replies with the card directly and skips the ack.
type buttonAction struct {
	Ack    string
	Regen  intent.Tag
	Follow string
	Delay  time.Duration
}

var buttonActions = map[string]buttonAction{
	// ack, then a regenerated card
	"more_hooks":     {Ack: "🔄 Generating more hook options for you...", Regen: intent.Hook, Delay: 2 * time.Second},
	"creator_focus":  {Ack: "✏️ Adjusting the content to focus more on your unique creator style...", Regen: intent.Hook, Delay: 2 * time.Second},
	"refine_script":  {Ack: "✏️ Refining your script with more audience-focused messaging...", Regen: intent.Script, Delay: 2 * time.Second},
	"add_visuals":    {Ack: "🎨 Adding more detailed visual notes to your script...", Regen: intent.Script, Delay: 2 * time.Second},
	"more_emotional": {Ack: "❤️ Making your story more emotional and impactful...", Regen: intent.Story, Delay: 2 * time.Second},
	"more_authentic": {Ack: "✅ Enhancing your story's authenticity...", Regen: intent.Story, Delay: 2 * time.Second},
	"more_ideas":     {Ack: "🔄 Generating more creative video ideas...", Regen: intent.Ideas, Delay: 2 * time.Second},
	"trending_ideas": {Ack: "📈 Finding trending content ideas for your niche...", Regen: intent.Ideas, Delay: 2 * time.Second},
	"explain_more":   {Ack: "❓ Providing more detailed explanations of the suggested fixes...", Regen: intent.Fix, Delay: 2 * time.Second},
	"fix_issues":     {Ack: "🔧 Creating a fix plan for the identified issues...", Regen: intent.Fix, Delay: 2500 * time.Millisecond},
	"refine_shots":   {Ack: "🎯 Refining your shot list for optimal performance...", Regen: intent.Ready, Delay: 2 * time.Second},
	"deep_insights":  {Ack: "🔍 Generating deeper insights from your video analysis...", Regen: intent.Analyze, Delay: 3 * time.Second},

	// help-card examples answer with the card right away
	"example_hook":   {Regen: intent.Hook},
	"example_script": {Regen: intent.Script},

	// ack, then a fixed follow-up message
	"apply_fixes": {
		Ack:    "🛠️ Applying all suggested fixes to your video...",
		Follow: "✅ All fixes have been applied to your video! You can now download the improved version from your dashboard.",
		Delay:  3 * time.Second,
	},
	"download_package": {
		Ack:    "📥 Preparing your ready-to-shoot package for download...",
		Follow: "✅ Your ready-to-shoot package has been prepared! You can download it from your dashboard.",
		Delay:  2 * time.Second,
	},
	"calendar_add": {
		Ack:    "📅 Adding this shoot to your content calendar...",
		Follow: "✅ Added to your content calendar for next week! You'll receive reminders 2 days before the shoot.",
		Delay:  1500 * time.Millisecond,
	},

	// saves
	"save_hook":     {Ack: "💾 I've saved this to your favorites! You can access it anytime from your dashboard."},
	"save_script":   {Ack: "💾 I've saved this to your favorites! You can access it anytime from your dashboard."},
	"save_story":    {Ack: "💾 I've saved this to your favorites! You can access it anytime from your dashboard."},
	"save_idea":     {Ack: "💾 I've saved this to your favorites! You can access it anytime from your dashboard."},
	"save_fixes":    {Ack: "💾 I've saved this to your favorites! You can access it anytime from your dashboard."},
	"save_analysis": {Ack: "💾 I've saved this to your favorites! You can access it anytime from your dashboard."},

	// feedback
	"feedback_love": {Ack: "❤️ Love to hear it! Tell me when you're ready for the next one."},
	"feedback_meh":  {Ack: "😐 Thanks for the honesty. Tell me what felt off and I'll adjust."},
	"feedback_help": {
		Ack:    "🆘 On it!",
		Follow: "Here's what I can help with: hooks, scripts, stories, video ideas, fixing flopped videos, filming packages and video analysis. Just ask in plain words.",
		Delay:  time.Second,
	},
}

// HandleButton processes one button press and returns the immediate reply.
func (s *Service) HandleButton(ctx context.Context, userID, username, channelID, customID string) Reply {
	if customID == "update_info" {
		s.sessions.Touch(userID)
		c := render.UpdateInstructionsCard()
		return Reply{Card: &c, Ephemeral: true}
	}

	action, ok := buttonActions[customID]
	if !ok {
		return Reply{Text: "🤔 That button isn't wired up yet.", Ephemeral: true}
	}

	prof := s.sessions.GetOrCreate(userID, username)
	s.sessions.Touch(userID)

	if action.Regen != "" {
		s.sessions.SetLastIntent(userID, action.Regen)

		// Without a transport to post the card to, answer with it directly.
		if action.Delay == 0 || s.poster == nil || s.scheduler == nil {
			return s.generate(ctx, action.Regen, prof, "")
		}

		tag := action.Regen
		s.scheduler.After(action.Delay, customID, func() {
			s.poster(channelID, s.generate(context.Background(), tag, prof, ""))
		})
		return Reply{Text: action.Ack, Ephemeral: true}
	}

	if action.Follow != "" && s.poster != nil && s.scheduler != nil {
		follow := action.Follow
		s.scheduler.After(action.Delay, customID, func() {
			s.poster(channelID, Reply{Text: follow})
		})
	}
	return Reply{Text: action.Ack, Ephemeral: true}
}
