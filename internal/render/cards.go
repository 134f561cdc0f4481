package render

import (
	"fmt"

	"github.com/influenxers/coachbot/internal/model/card"
	"github.com/influenxers/coachbot/internal/model/profile"
)

// HelpCard introduces the coach and lists every request it understands.
func HelpCard() card.Card {
	return card.Card{
		Fallback: "Creator Success Coach help",
		Sections: []card.Section{{
			Color: "#147EFB",
			Title: "👋 Hi there! I'm your Creator Success Coach",
			Body:  "Tell me what you need in plain words and I'll put together a personalized content package. Here's what I can help with:",
			Fields: []card.Field{
				{Name: "🪝 Hooks", Value: "\"Give me a hook for my product\"", Inline: true},
				{Name: "📝 Scripts", Value: "\"Write me a script\"", Inline: true},
				{Name: "📖 Stories", Value: "\"Help me tell my story\"", Inline: true},
				{Name: "💡 Ideas", Value: "\"I need video ideas\"", Inline: true},
				{Name: "🔧 Fixes", Value: "\"Fix my flopped video\"", Inline: true},
				{Name: "🎬 Ready to Film", Value: "\"I'm ready to film\"", Inline: true},
				{Name: "📊 Analysis", Value: "\"Analyze this video: <link>\"", Inline: true},
			},
			Footer: footerText,
		}},
		Rows: []card.ActionRow{{
			{ID: "example_hook", Label: "🪝 Try a Hook", Style: card.StylePrimary},
			{ID: "example_script", Label: "📝 Try a Script", Style: card.StyleSecondary},
		}},
	}
}

// ProfileCard shows everything the coach currently knows about a creator.
func ProfileCard(prof profile.Profile) card.Card {
	orEmpty := func(v, placeholder string) string {
		if v == "" {
			return placeholder
		}
		return v
	}

	briefStatus := "Not saved"
	if prof.Brief != "" {
		briefStatus = "Saved ✅"
	}
	lastIntent := orEmpty(prof.LastIntent, "None yet")

	return card.Card{
		Fallback: "Your creator profile",
		Sections: []card.Section{{
			Color: colorBlue,
			Title: "👤 Your Creator Profile",
			Body:  "Here's the information I'm using to personalize your content. Use the update command to change any of it.",
			Fields: []card.Field{
				{Name: "🎵 TikTok", Value: orEmpty(prof.TikTokHandle, "Not set"), Inline: true},
				{Name: "📸 Instagram", Value: orEmpty(prof.InstagramHandle, "Not set"), Inline: true},
				{Name: "📋 Product Brief", Value: briefStatus, Inline: true},
				{Name: "🕐 Last Request", Value: lastIntent, Inline: true},
			},
			Footer: footerText,
		}},
		Rows: []card.ActionRow{{
			{ID: "update_info", Label: "✏️ Update My Info", Style: card.StylePrimary},
		}},
	}
}

// UpdateInstructionsCard explains the update syntax when a message matched
// the update shape but carried no value.
func UpdateInstructionsCard() card.Card {
	return card.Card{
		Fallback: "How to update your info",
		Sections: []card.Section{{
			Color: colorOrange,
			Title: "✏️ Updating Your Info",
			Body: "Tell me which field to change and the new value, for example:\n" +
				"• `update my tiktok @myhandle`\n" +
				"• `update my instagram @myhandle`\n" +
				"• `update my product brief to <description>`",
			Footer: footerText,
		}},
	}
}

// UpdateConfirmationCard acknowledges a saved field, echoing the value.
func UpdateConfirmationCard(field profile.Field, value string) card.Card {
	labels := map[profile.Field]string{
		profile.FieldTikTok:    "TikTok handle",
		profile.FieldInstagram: "Instagram handle",
		profile.FieldBrief:     "product brief",
	}
	return card.Card{
		Fallback: "Profile updated",
		Sections: []card.Section{{
			Color:  colorGreen,
			Title:  "✅ Info Updated",
			Body:   fmt.Sprintf("Your %s is now: **%s**", labels[field], value),
			Footer: footerText,
		}},
	}
}

// ApologyCard is returned when content generation fails outright.
func ApologyCard(tag string, err error) card.Card {
	return card.Card{
		Fallback: "Error generating content",
		Sections: []card.Section{{
			Color:  colorRed,
			Title:  "❌ Error Generating Content",
			Body:   fmt.Sprintf("Failed to generate %s content. Please try again later.\n\nError details: %v", tag, err),
			Footer: footerText,
		}},
	}
}
